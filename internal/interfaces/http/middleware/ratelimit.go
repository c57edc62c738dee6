package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"recruitscore/internal/infrastructure/ratelimit"
	"recruitscore/internal/shared/constants"
	"recruitscore/internal/shared/utils"
)

// IPRateLimiter provides Redis-backed IP rate limiting using a fixed-window
// counter. Each IP gets a counter key with TTL equal to the window duration.
// This works correctly in multi-instance deployments since all instances
// share Redis.
type IPRateLimiter struct {
	redisClient *redis.Client
	limit       int
	window      time.Duration
}

// NewIPRateLimiter creates a new Redis-backed rate limiter.
// limit is the maximum number of requests allowed per window.
func NewIPRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		redisClient: redisClient,
		limit:       limit,
		window:      window,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *IPRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		windowBucket := time.Now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("ratelimit:ip:%s:%d", clientIP, windowBucket)

		ctx := context.Background()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			// If Redis is unavailable, allow the request to avoid blocking all traffic
			c.Next()
			return
		}

		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// UserWriteLimit throttles write-heavy endpoints (review and claim
// submission) per authenticated user with a sliding window. Anonymous
// requests pass through; the handler rejects them anyway.
func UserWriteLimit(limiter ratelimit.RateLimiter, scope string, config ratelimit.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(constants.ContextKeyUserID)
		if !exists {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:user:%v", scope, userID)

		allowed, err := limiter.Allow(c.Request.Context(), key, config)
		if err != nil {
			// Limiter backend failure should not take writes down with it
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many submissions, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
