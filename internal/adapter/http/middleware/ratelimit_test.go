package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cashback-rewards/internal/adapter/http/middleware"
	"cashback-rewards/internal/adapter/storage/memory"
	redisStore "cashback-rewards/internal/adapter/storage/redis"
	"cashback-rewards/internal/core/ports"
	"cashback-rewards/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRateLimitRouter(limiter ports.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	log := zerolog.Nop()

	r.GET("/test", middleware.RateLimiter(limiter, "test", rule, log), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func newRedisLimiter(t *testing.T) *redisStore.RateLimitStore {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(newRedisLimiter(t))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	limiters := map[string]ports.RateLimiter{
		"redis":  newRedisLimiter(t),
		"memory": memory.NewRateLimiter(),
	}

	for name, limiter := range limiters {
		t.Run(name, func(t *testing.T) {
			router := setupRateLimitRouter(limiter)

			for i := 0; i < 3; i++ {
				w := httptest.NewRecorder()
				req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
				router.ServeHTTP(w, req)
				assert.Equal(t, 200, w.Code)
			}

			w := httptest.NewRecorder()
			req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, 429, w.Code)
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
			assert.Contains(t, w.Body.String(), "RATE_001")
		})
	}
}

func TestRateLimiter_UsesAPIKeyHeader(t *testing.T) {
	router := setupRateLimitRouter(newRedisLimiter(t))

	// Merchant A uses up the limit
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		req.Header.Set("x-api-key", "merchantA")
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	}

	// Merchant B should still be allowed (independent counter)
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	req.Header.Set("x-api-key", "merchantB")
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}

func TestRateLimiter_DegradedModeAllows(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockRateLimiter(ctrl)
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), int64(3), time.Minute).
		Return(nil, errors.New("redis: connection refused"))

	router := setupRateLimitRouter(limiter)
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestDefaultRateLimitRule(t *testing.T) {
	rule := middleware.DefaultRateLimitRule()
	assert.Equal(t, int64(100), rule.Limit)
	assert.Equal(t, time.Minute, rule.Window)
}
