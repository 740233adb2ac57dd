package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"safepath/internal/redis"
)

const userIDKey = "userID"

// Auth resolves the Bearer token to a user ID and stores it on the context.
// Requests without a valid session are rejected.
func Auth(sessions redis.SessionStoreInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token := strings.TrimPrefix(auth, prefix)
		userID, err := sessions.GetUserID(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
			return
		}
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID set by Auth, or "" when the
// request is unauthenticated.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
