package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestIDMiddleware attaches a unique ID to every request, reusing an
// incoming X-Request-ID when the caller supplies one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)

		// the string key matches what pkg/logger.WithContext looks up
		ctx := context.WithValue(c.Request.Context(), "request_id", id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
