package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cashback-rewards/config"
	"cashback-rewards/internal/adapter/gateway"
	httpHandler "cashback-rewards/internal/adapter/http/handler"
	"cashback-rewards/internal/adapter/http/middleware"
	"cashback-rewards/internal/adapter/metrics"
	"cashback-rewards/internal/adapter/storage/memory"
	pgStorage "cashback-rewards/internal/adapter/storage/postgres"
	redisStorage "cashback-rewards/internal/adapter/storage/redis"
	"cashback-rewards/internal/adapter/storage/seed"
	"cashback-rewards/internal/core/ports"
	"cashback-rewards/internal/service"
	"cashback-rewards/migrations"
	"cashback-rewards/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// repositories groups the ledger and reference data ports of one storage driver.
type repositories struct {
	merchants    ports.MerchantRepository
	users        ports.UserRepository
	transactions ports.TransactionRepository
	rewards      ports.RewardRepository
	decisions    ports.DecisionRepository
}

func main() {
	// Local development keeps CRW_* overrides in .env; deployments set them directly.
	dotenvErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load(os.Getenv("CRW_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if dotenvErr == nil {
		log.Info().Msg("Loaded environment overrides from .env")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Str("issuance", cfg.Issuance.Mode).
		Msg("Starting Cash-back Rewards service")

	ctx := context.Background()
	var checkers []ports.HealthChecker

	// Initialize storage
	var repos repositories
	memStore := memory.NewStore(seed.Dataset{})
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		if cfg.Storage.SeedDemo {
			memStore = memory.NewStore(seed.Demo())
			log.Info().Msg("Demo dataset loaded into memory store")
		}
		repos = repositories{
			merchants:    memStore.Merchants,
			users:        memStore.Users,
			transactions: memStore.Transactions,
			rewards:      memStore.Rewards,
			decisions:    memStore.Decisions,
		}

	case config.StorageDriverPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		if cfg.Database.AutoMigrate {
			if err := pgStorage.Migrate(ctx, pool, migrations.FS, log); err != nil {
				log.Fatal().Err(err).Msg("Failed to apply migrations")
			}
		}
		if cfg.Storage.SeedDemo {
			if err := pgStorage.NewSeeder(pool, log).Load(ctx, seed.Demo()); err != nil {
				log.Fatal().Err(err).Msg("Failed to seed demo dataset")
			}
		}

		repos = repositories{
			merchants:    pgStorage.NewMerchantRepo(pool),
			users:        pgStorage.NewUserRepo(pool),
			transactions: pgStorage.NewTransactionRepo(pool),
			rewards:      pgStorage.NewRewardRepo(pool),
			decisions:    pgStorage.NewDecisionRepo(pool),
		}
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	}

	// Initialize Redis stores, falling back to process-local ones
	var (
		claims      ports.ClaimStore  = memStore.Claims
		rateLimiter ports.RateLimiter = memStore.RateLimits
		cache       ports.RewardCache // nil = no cache layer
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		claims = redisStorage.NewClaimStore(rdb)
		cache = redisStorage.NewRewardCache(rdb)
		rateLimiter = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled, claims and rate limits are process-local")
	}
	if !cfg.RateLimit.Enabled {
		rateLimiter = nil
	}

	// Initialize core services
	random := service.NewPCGRandomSource(cfg.Reward.Seed)
	prom := metrics.NewPrometheus(true)

	issuer, err := newIssuanceGateway(cfg.Issuance, random, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize issuance gateway")
	}

	engine := service.NewEligibilityService(repos.merchants, repos.users, random, logger.Component(log, "eligibility"))
	rewardSvc, err := service.NewRewardService(service.RewardServiceDeps{
		Engine:       engine,
		RewardRepo:   repos.rewards,
		DecisionRepo: repos.decisions,
		UserRepo:     repos.users,
		Gateway:      issuer,
		Claims:       claims,
		Cache:        cache,
		Metrics:      prom,
		Policy: service.RetryPolicy{
			MaxRetries: cfg.Reward.MaxRetries,
			Delay:      cfg.Reward.RetryDelay,
		},
		ClaimTTL:       cfg.Reward.ClaimTTL,
		PendingTimeout: cfg.Reward.PendingTimeout,
		CacheTTL:       cfg.Reward.CacheTTL,
		Logger:         logger.Component(log, "rewards"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize reward service")
	}
	verificationSvc := service.NewVerificationService(repos.transactions, repos.rewards, rewardSvc, logger.Component(log, "verification"))

	// Load OpenAPI spec for Swagger UI
	specBytes, err := os.ReadFile("docs/api/openapi.yaml")
	if err == nil {
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		VerificationSvc: verificationSvc,
		MerchantRepo:    repos.merchants,
		RateLimiter:     rateLimiter,
		RateLimitRule: middleware.RateLimitRule{
			Limit:  cfg.RateLimit.Limit,
			Window: cfg.RateLimit.Window,
		},
		Metrics:        prom,
		HealthCheckers: checkers,
		OpenAPISpec:    specBytes,
		Logger:         logger.Component(log, "http"),
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// newIssuanceGateway builds the payout gateway selected by cfg.Mode.
func newIssuanceGateway(cfg config.IssuanceConfig, random ports.RandomSource, log zerolog.Logger) (ports.IssuanceGateway, error) {
	gwLog := logger.Component(log, "issuance")
	if cfg.Mode == config.IssuanceModeHTTP {
		var signer ports.PayoutSigner
		if cfg.Secret != "" {
			signer = service.NewHMACPayoutSigner(cfg.Secret)
		} else {
			gwLog.Warn().Msg("Payout secret not set, requests will be unsigned")
		}
		gw, err := gateway.NewHTTPGateway(gateway.HTTPGatewayConfig{
			URL:      cfg.URL,
			Currency: cfg.Currency,
			Timeout:  cfg.Timeout,
		}, &http.Client{Timeout: cfg.Timeout}, signer, gwLog)
		if err != nil {
			return nil, err
		}
		return gw, nil
	}
	return gateway.NewSimulatedGateway(cfg.Latency, cfg.FailureRate, random, gwLog), nil
}
