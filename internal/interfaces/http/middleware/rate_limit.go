// internal/interfaces/http/middleware/rate_limit.go
package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/store-admin/internal/config"
)

// RateLimit enforces a fixed per-minute request budget per client IP,
// counted in redis. Counters are keyed by minute window so they expire
// on their own; when redis is unreachable requests pass through.
func RateLimit(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	limit := int64(cfg.Security.RateLimitPerMinute)

	return func(c *gin.Context) {
		window := time.Now().Unix() / 60
		key := fmt.Sprintf("store_admin:rate:%s:%d", c.ClientIP(), window)

		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, 2*time.Minute)
		}

		if count > limit {
			c.Header("Retry-After", "60")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
			})
			c.Abort()
			return
		}

		remaining := limit - count
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		c.Next()
	}
}
