// Package memory provides map-backed stores for development and tests.
// Every store is safe for concurrent use and hands out copies.
package memory

import (
	"context"
	"sort"
	"sync"

	"cashback-rewards/internal/core/domain"
)

// --- Merchants ---

type MerchantRepo struct {
	mu    sync.RWMutex
	byID  map[string]domain.Merchant
	byKey map[string]string
}

// NewMerchantRepo creates a merchant registry preloaded with merchants.
func NewMerchantRepo(merchants ...domain.Merchant) *MerchantRepo {
	r := &MerchantRepo{
		byID:  make(map[string]domain.Merchant, len(merchants)),
		byKey: make(map[string]string, len(merchants)),
	}
	for _, m := range merchants {
		r.Put(m)
	}
	return r
}

// Put adds or replaces a merchant.
func (r *MerchantRepo) Put(m domain.Merchant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.byID[m.ID]; ok {
		delete(r.byKey, old.APIKey)
	}
	r.byID[m.ID] = m
	r.byKey[m.APIKey] = m.ID
}

func (r *MerchantRepo) GetByID(_ context.Context, id string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MerchantRepo) GetByAPIKey(_ context.Context, apiKey string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[apiKey]
	if !ok {
		return nil, nil
	}
	m := r.byID[id]
	return &m, nil
}

// --- Users ---

type UserRepo struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewUserRepo creates a user directory preloaded with users.
func NewUserRepo(users ...domain.User) *UserRepo {
	r := &UserRepo{users: make(map[string]domain.User, len(users))}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// --- Transactions ---

type TransactionRepo struct {
	mu  sync.RWMutex
	txs map[string]domain.Transaction
}

// NewTransactionRepo creates a transaction store preloaded with txs.
func NewTransactionRepo(txs ...domain.Transaction) *TransactionRepo {
	r := &TransactionRepo{txs: make(map[string]domain.Transaction, len(txs))}
	for _, t := range txs {
		r.txs[t.ID] = t
	}
	return r
}

// Put adds or replaces a transaction.
func (r *TransactionRepo) Put(t domain.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs[t.ID] = t
}

func (r *TransactionRepo) GetByID(_ context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.txs[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// --- Rewards ---

// RewardRepo is the in-memory reward ledger keyed by transaction id.
type RewardRepo struct {
	mu      sync.RWMutex
	rewards map[string]domain.Reward
}

// NewRewardRepo creates a ledger preloaded with rewards.
func NewRewardRepo(rewards ...domain.Reward) *RewardRepo {
	r := &RewardRepo{rewards: make(map[string]domain.Reward, len(rewards))}
	for _, rw := range rewards {
		rw.History = nil
		r.rewards[rw.TransactionID] = rw
	}
	return r
}

func (r *RewardRepo) GetByTransactionID(_ context.Context, transactionID string) (*domain.Reward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rw, ok := r.rewards[transactionID]
	if !ok {
		return nil, nil
	}
	return &rw, nil
}

// CreatePending stores reward unless the transaction already has one.
func (r *RewardRepo) CreatePending(_ context.Context, reward *domain.Reward) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rewards[reward.TransactionID]; ok {
		return false, nil
	}
	stored := *reward
	stored.History = nil
	r.rewards[reward.TransactionID] = stored
	return true, nil
}

// Upsert stores reward. An existing row is updated only while it is pending
// and belongs to the same reward.
func (r *RewardRepo) Upsert(_ context.Context, reward *domain.Reward) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.rewards[reward.TransactionID]; ok {
		if existing.IsTerminal() || existing.ID != reward.ID {
			return nil
		}
		existing.Status = reward.Status
		existing.Attempts = reward.Attempts
		existing.UpdatedAt = reward.UpdatedAt
		r.rewards[reward.TransactionID] = existing
		return nil
	}

	stored := *reward
	stored.History = nil
	r.rewards[reward.TransactionID] = stored
	return nil
}

// ListByUserID returns the user's rewards, newest first.
func (r *RewardRepo) ListByUserID(_ context.Context, userID string) ([]domain.Reward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Reward{}
	for _, rw := range r.rewards {
		if rw.UserID == userID {
			out = append(out, rw)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Len returns the number of stored rewards.
func (r *RewardRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rewards)
}

// --- Decisions ---

type DecisionRepo struct {
	mu        sync.RWMutex
	decisions map[string]domain.RewardDecision
}

func NewDecisionRepo() *DecisionRepo {
	return &DecisionRepo{decisions: make(map[string]domain.RewardDecision)}
}

func (r *DecisionRepo) Get(_ context.Context, transactionID string) (*domain.RewardDecision, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.decisions[transactionID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

// Create records d. The first decision for a transaction wins.
func (r *DecisionRepo) Create(_ context.Context, d *domain.RewardDecision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.decisions[d.TransactionID]; !ok {
		r.decisions[d.TransactionID] = *d
	}
	return nil
}
