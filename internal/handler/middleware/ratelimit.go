package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"deskbook/internal/handler/httperr"
	"deskbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window request limiter backed by Redis. Counters
// live in Redis so the limit holds across replicas; when Redis is down the
// limiter fails open rather than taking the API with it.
type RateLimiter struct {
	client *redis.Client
	cfg    config.RateLimitConfig
}

func NewRateLimiter(client *redis.Client, cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{client: client, cfg: cfg}
}

func (r *RateLimiter) Limit() gin.HandlerFunc {
	if !r.cfg.Enabled || r.client == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := r.windowKey(c)

		pipe := r.client.TxPipeline()
		incr := pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, r.cfg.Window)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err.Error())
			c.Next()
			return
		}

		if incr.Val() > int64(r.cfg.Limit) {
			c.Header("Retry-After", strconv.Itoa(int(r.cfg.Window.Seconds())))
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests", nil)
			return
		}

		c.Next()
	}
}

// windowKey buckets requests per subject per window. Authenticated requests
// are keyed by user, anonymous ones by client IP.
func (r *RateLimiter) windowKey(c *gin.Context) string {
	subject := c.ClientIP()
	if userID, ok := GetUserID(c); ok {
		subject = userID.String()
	}

	bucket := time.Now().Unix() / int64(r.cfg.Window.Seconds())
	return fmt.Sprintf("%s:%s:%d", r.cfg.Prefix, subject, bucket)
}
