package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recicla-contigo/backend/internal/auth/security"
)

// TokenAuth verifies a bearer session token when one is supplied and stores
// the bound user id under "user_id". When required is true, requests without
// a valid token are rejected; otherwise they pass through, which matches the
// trusted-client deployments this backend originally served.
func TokenAuth(tokens *security.TokenManager, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")

		if raw == "" || raw == header {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token requerido"})
				return
			}
			c.Next()
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token inválido o expirado"})
				return
			}
			c.Next()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
