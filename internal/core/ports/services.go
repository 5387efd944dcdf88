package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"cashback-rewards/internal/core/domain"
)

// RandomSource yields uniform draws in [0,1).
type RandomSource interface {
	Float64() float64
}

// IssuanceGateway pays out a prepared reward. Any error is treated as transient.
type IssuanceGateway interface {
	Issue(ctx context.Context, reward *domain.Reward) error
}

// PayoutSigner authenticates outbound payout requests. Both sides must derive
// the same signature from method, path, timestamp and raw body.
type PayoutSigner interface {
	SignPayout(method, path string, at time.Time, body []byte) string
	VerifyPayout(method, path string, at time.Time, body []byte, signature string) bool
}

// ClaimStore guards a transaction id while its reward is being decided and issued.
type ClaimStore interface {
	// Claim atomically takes the claim and returns the token that owns it.
	// ok is false if another caller holds the claim.
	Claim(ctx context.Context, transactionID string, ttl time.Duration) (token string, ok bool, err error)
	// Release drops the claim only while token still owns it.
	Release(ctx context.Context, transactionID, token string) error
}

// RewardCache is the fast-path lookup of terminal rewards.
type RewardCache interface {
	Get(ctx context.Context, transactionID string) (*domain.Reward, error) // nil, nil on miss
	Set(ctx context.Context, reward *domain.Reward, ttl time.Duration) error
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimiter counts requests per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// HealthChecker reports whether a backing store is usable. Name labels it on /health.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}

// RewardMetrics receives reward pipeline observations.
type RewardMetrics interface {
	ObserveDecision(reason domain.DecisionReason)
	ObserveAttempt(success bool)
	ObserveOutcome(status domain.RewardStatus, attempts int)
}

// --- Service Ports (Business Logic) ---

// EligibilityEngine decides whether a transaction earns a reward.
type EligibilityEngine interface {
	Decide(tx *domain.Transaction, merchant *domain.Merchant, user *domain.User) (*domain.Reward, domain.DecisionReason)
	Prepare(ctx context.Context, tx *domain.Transaction) (*domain.Reward, domain.DecisionReason)
}

// RewardService decides and issues rewards.
type RewardService interface {
	// ProcessTransaction returns nil when no reward was decided, or the reward in a
	// terminal status. It fails with apperror RWD_003 while another caller holds the
	// transaction; other errors are infrastructure failures.
	ProcessTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Reward, error)
	ListUserRewards(ctx context.Context, userID string) ([]domain.Reward, error)
}

// VerificationService answers merchant-scoped reward queries.
type VerificationService interface {
	VerifyReward(ctx context.Context, merchant *domain.Merchant, transactionID string) (*domain.Reward, error)
	ProcessForMerchant(ctx context.Context, merchant *domain.Merchant, transactionID string) (*domain.Reward, error)
	ListUserRewards(ctx context.Context, merchant *domain.Merchant, userID string) ([]domain.Reward, error)
}
