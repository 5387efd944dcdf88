package handler

import (
	"net/http"

	"cashback-rewards/internal/adapter/http/middleware"
	"cashback-rewards/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MetricsExporter records request metrics and serves them for scraping.
type MetricsExporter interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	VerificationSvc ports.VerificationService
	MerchantRepo    ports.MerchantRepository
	RateLimiter     ports.RateLimiter // nil = rate limiting disabled
	RateLimitRule   middleware.RateLimitRule
	Metrics         MetricsExporter // nil = no /metrics endpoint
	HealthCheckers  []ports.HealthChecker
	OpenAPISpec     []byte // nil = /swagger/spec returns 404
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Health check (deep: pings the ledger store and Redis when configured)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	docs := NewDocsHandler(deps.OpenAPISpec)
	swagger := r.Group("/swagger")
	{
		swagger.GET("", docs.UI)
		swagger.GET("/spec", docs.Spec)
	}

	rule := deps.RateLimitRule
	if rule.Limit <= 0 || rule.Window <= 0 {
		rule = middleware.DefaultRateLimitRule()
	}

	// Helper: return rate limiter middleware if a limiter is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	// API v1 routes, all authenticated by merchant API key
	apiKeyAuth := middleware.APIKeyAuth(deps.MerchantRepo, deps.Logger)
	rewardHandler := NewRewardHandler(deps.VerificationSvc)

	v1 := r.Group("/api/v1", apiKeyAuth)

	rewards := v1.Group("/rewards")
	{
		rewards.GET("/verify", rl("rewards_verify"), rewardHandler.Verify)
		rewards.POST("/process", rl("rewards_process"), rewardHandler.Process)
	}

	users := v1.Group("/users")
	{
		users.GET("/:userId/rewards", rl("rewards_verify"), rewardHandler.ListUserRewards)
	}

	return r
}
