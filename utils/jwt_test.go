package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("secret")

	signed, err := tokens.Generate("64f1c2e9a1b2c3d4e5f60718")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "64f1c2e9a1b2c3d4e5f60718", userID)
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	signed, err := NewTokenService("secret-a").Generate("some-user")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").Validate(signed)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	tokens := NewTokenService("secret")
	for _, bad := range []string{"", "garbage", "a.b.c"} {
		_, err := tokens.Validate(bad)
		assert.Error(t, err, "token %q", bad)
	}
}
