package postgres

import (
	"context"
	"errors"
	"fmt"

	"cashback-rewards/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// DecisionRepo implements ports.DecisionRepository on the reward_decisions table.
type DecisionRepo struct {
	pool Pool
}

// NewDecisionRepo creates a new DecisionRepo.
func NewDecisionRepo(pool Pool) *DecisionRepo {
	return &DecisionRepo{pool: pool}
}

// Get returns the recorded decision of a transaction, or nil, nil.
func (r *DecisionRepo) Get(ctx context.Context, transactionID string) (*domain.RewardDecision, error) {
	query := `SELECT transaction_id, reason, decided_at FROM reward_decisions WHERE transaction_id = $1`

	d := &domain.RewardDecision{}
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(&d.TransactionID, &d.Reason, &d.DecidedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reward decision: %w", err)
	}
	return d, nil
}

// Create records a decision. The first decision for a transaction wins.
func (r *DecisionRepo) Create(ctx context.Context, d *domain.RewardDecision) error {
	query := `INSERT INTO reward_decisions (transaction_id, reason, decided_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (transaction_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, d.TransactionID, d.Reason, d.DecidedAt)
	if err != nil {
		return fmt.Errorf("insert reward decision: %w", err)
	}
	return nil
}
