package middleware

import (
	"net/http"
	"strings"

	"github.com/fastline/analytics-engine/internal/core/services"
	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	authorizationType   = "Bearer"
	devUserIDHeader     = "X-User-ID"
	ContextUserIDKey    = "userID"
)

// AuthMiddleware resolves the calling user. With a verifier it requires a
// Bearer token signed by the upstream auth service; without one (local
// development, no AUTH_SECRET configured) it trusts the X-User-ID header.
func AuthMiddleware(verifier *services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			userID := c.GetHeader(devUserIDHeader)
			if userID == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header required"})
				c.Abort()
				return
			}
			c.Set(ContextUserIDKey, userID)
			c.Next()
			return
		}

		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || fields[0] != authorizationType {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		userID, err := verifier.VerifyToken(fields[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)

		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}
