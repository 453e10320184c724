package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader     = "X-Request-ID"
	ContextRequestIDKey = "requestID"
)

// RequestIDMiddleware tags every request with an id, reusing the caller's
// X-Request-ID header when one is present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Set(ContextRequestIDKey, reqID)
		c.Writer.Header().Set(requestIDHeader, reqID)

		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	id, exists := c.Get(ContextRequestIDKey)
	if !exists {
		return ""
	}
	idStr, _ := id.(string)
	return idStr
}
