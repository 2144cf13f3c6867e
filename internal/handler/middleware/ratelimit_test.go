//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deskbook/internal/handler/middleware"
	"deskbook/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(t *testing.T, cfg config.RateLimitConfig) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := middleware.NewRateLimiter(client, cfg)

	router := gin.New()
	router.Use(limiter.Limit())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, mr
}

func get(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	router, _ := newLimitedRouter(t, config.RateLimitConfig{
		Enabled: true,
		Limit:   3,
		Window:  time.Minute,
		Prefix:  "rl-test",
	})

	for range 3 {
		w := get(router)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router, _ := newLimitedRouter(t, config.RateLimitConfig{
		Enabled: true,
		Limit:   2,
		Window:  time.Minute,
		Prefix:  "rl-test",
	})

	for range 2 {
		w := get(router)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := get(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRateLimiter_DisabledIsNoOp(t *testing.T) {
	router, _ := newLimitedRouter(t, config.RateLimitConfig{
		Enabled: false,
		Limit:   1,
		Window:  time.Minute,
		Prefix:  "rl-test",
	})

	for range 10 {
		w := get(router)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	router, mr := newLimitedRouter(t, config.RateLimitConfig{
		Enabled: true,
		Limit:   1,
		Window:  time.Minute,
		Prefix:  "rl-test",
	})

	mr.Close()

	for range 5 {
		w := get(router)
		require.Equal(t, http.StatusOK, w.Code)
	}
}
