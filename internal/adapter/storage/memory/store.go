package memory

import "cashback-rewards/internal/adapter/storage/seed"

// Store bundles the in-memory repositories of one process.
type Store struct {
	Merchants    *MerchantRepo
	Users        *UserRepo
	Transactions *TransactionRepo
	Rewards      *RewardRepo
	Decisions    *DecisionRepo
	Claims       *ClaimStore
	RateLimits   *RateLimiter
}

// NewStore creates a store preloaded with ds. Pass seed.Dataset{} for an empty store.
func NewStore(ds seed.Dataset) *Store {
	return &Store{
		Merchants:    NewMerchantRepo(ds.Merchants...),
		Users:        NewUserRepo(ds.Users...),
		Transactions: NewTransactionRepo(ds.Transactions...),
		Rewards:      NewRewardRepo(ds.Rewards...),
		Decisions:    NewDecisionRepo(),
		Claims:       NewClaimStore(),
		RateLimits:   NewRateLimiter(),
	}
}
