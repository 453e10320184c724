package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiterMiddleware enforces a fixed-window request quota in redis.
// The window is keyed by the authenticated user when the auth middleware
// ran first, otherwise by client IP. Redis being down never blocks a
// request.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			subject = userID
		}
		key := fmt.Sprintf("throttle:%s", subject)

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Printf("[RATE] Redis error, limiter skipped: %v", err)
			c.Next()
			return
		}

		if count == 1 {
			if err := rdb.Expire(c.Request.Context(), key, window).Err(); err != nil {
				log.Printf("[RATE] Redis expire error: %v. Deleting key to avoid zombie.", err)
				rdb.Del(c.Request.Context(), key)
				c.Next()
				return
			}
		}

		ttl, err := rdb.TTL(c.Request.Context(), key).Result()
		if err != nil {
			ttl = window
		}

		resetTime := time.Now().Add(ttl).Unix()
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", max(0, int64(limit)-count)))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime))

		if count > int64(limit) {

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":     "error",
				"message":    "Too many requests. Slow down!",
				"retry_in_s": int(ttl.Seconds()),
			})
			return
		}

		c.Next()
	}
}
