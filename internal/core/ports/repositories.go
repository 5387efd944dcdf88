package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"cashback-rewards/internal/core/domain"
)

// Lookups return (nil, nil) when the record does not exist.

// MerchantRepository resolves partner merchants.
type MerchantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Merchant, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Merchant, error)
}

// UserRepository resolves reward recipients.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// TransactionRepository resolves transactions owned by the payment system.
type TransactionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
}

// RewardRepository is the reward ledger. TransactionID is unique.
type RewardRepository interface {
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Reward, error)
	// CreatePending reserves the transaction for reward. created is false when
	// the transaction already has a reward, in which case nothing is written.
	CreatePending(ctx context.Context, reward *domain.Reward) (created bool, err error)
	// Upsert stores reward. A stored row is only updated while it is pending and
	// carries the same reward id.
	Upsert(ctx context.Context, reward *domain.Reward) error
	ListByUserID(ctx context.Context, userID string) ([]domain.Reward, error)
}

// DecisionRepository records transactions that were evaluated and earned nothing.
type DecisionRepository interface {
	Get(ctx context.Context, transactionID string) (*domain.RewardDecision, error)
	Create(ctx context.Context, decision *domain.RewardDecision) error
}
