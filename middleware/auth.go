// auth.go - request authentication gate for protected routes

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"karigar-backend/utils"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userId"

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Authenticate checks a raw auth-token header value and returns the caller's
// identity. It is the framework-independent core of the gate; FetchUser wraps
// it for gin.
func Authenticate(tokens *utils.TokenService, token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}
	userID, err := tokens.Validate(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// FetchUser rejects requests without a valid auth-token header and stores the
// decoded identity in the request context for downstream handlers.
func FetchUser(tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := Authenticate(tokens, c.GetHeader("auth-token"))
		switch {
		case errors.Is(err, ErrMissingToken):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "Please authenticate using valid login"})
		case err != nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "Please authenticate using valid token"})
		default:
			c.Set(ContextUserID, userID)
			c.Next()
		}
	}
}
