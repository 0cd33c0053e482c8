package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// UserClaim is the identity payload carried inside a token. The nested
// {user:{id}} shape matches what existing clients already decode.
type UserClaim struct {
	ID string `json:"id"`
}

// TokenClaims represents the signed JWT claims.
type TokenClaims struct {
	User UserClaim `json:"user"`
	jwt.StandardClaims
}

// TokenService signs and verifies identity tokens with a configured secret.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Generate signs a token for the given user id, valid for 24 hours.
func (t *TokenService) Generate(userID string) (string, error) {
	claims := &TokenClaims{
		User: UserClaim{ID: userID},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate verifies the token signature and returns the embedded user id.
func (t *TokenService) Validate(signedToken string) (string, error) {
	token, err := jwt.ParseWithClaims(signedToken, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid || claims.User.ID == "" {
		return "", errors.New("invalid token")
	}
	return claims.User.ID, nil
}
