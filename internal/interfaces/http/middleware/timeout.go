package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout aborts requests that exceed the given budget. Report queries
// are capped server-side, so a request hitting the deadline points at a
// stuck connection or an unbounded aggregate, not a slow filter.
func Timeout(budget time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), budget)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			c.Next()
		}()

		select {
		case <-finished:
		case <-ctx.Done():
			if !c.Writer.Written() {
				c.JSON(http.StatusRequestTimeout, gin.H{
					"error": "Request timed out",
				})
			}
			c.Abort()
		}
	}
}
