// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/store-admin/internal/utils"
)

// IdentityResolver turns a bearer token into the caller's user id.
type IdentityResolver interface {
	Resolve(token string) (string, error)
}

type JWTResolver struct {
	tokens *utils.TokenManager
}

func NewJWTResolver(tokens *utils.TokenManager) *JWTResolver {
	return &JWTResolver{tokens: tokens}
}

func (r *JWTResolver) Resolve(token string) (string, error) {
	claims, err := r.tokens.ValidateJWT(token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// Identity sets "user_id" when the request carries a valid bearer token. It
// never aborts; handlers decide whether an identity is required.
func Identity(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		userID, err := resolver.Resolve(parts[1])
		if err != nil {
			logrus.WithError(err).Debug("Rejected bearer token")
			c.Next()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// AuthRequired rejects requests without an identity. Identity must run first.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetUserIDFromContext(c); !ok {
			utils.UnauthorizedResponse(c, "")
			return
		}
		c.Next()
	}
}
