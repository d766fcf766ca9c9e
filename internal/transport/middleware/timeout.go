package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds every handler through the request context. Handlers pass the
// context down to the store, so a slow query is cut off rather than the
// connection held open.
func Timeout(seconds int) gin.HandlerFunc {
	timeout := time.Duration(seconds) * time.Second
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
