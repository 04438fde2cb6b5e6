package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bataa715/Audit/pkg/redis"
	"github.com/Bataa715/Audit/pkg/response"
)

// RateLimit throttles a route per client IP using Redis counters.
// With rdb nil (Redis not configured) or on Redis errors the request
// passes through: availability beats throttling here.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, http.StatusTooManyRequests,
				"Хэт олон хүсэлт илгээлээ. Түр хүлээгээд дахин оролдоно уу")
			c.Abort()
			return
		}

		c.Next()
	}
}
