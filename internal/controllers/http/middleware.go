package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"shoplink/internal/auth"
)

const userIDKey = "userID"

// AuthRequired validates the bearer token and stores the caller's user id
// on the request context.
func AuthRequired(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
		Status:    "error",
		Message:   msg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func currentUserID(c *gin.Context) uint64 {
	return c.GetUint64(userIDKey)
}
