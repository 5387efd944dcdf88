package postgres

import (
	"context"
	"errors"
	"fmt"

	"cashback-rewards/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const rewardColumns = `id, transaction_id, user_id, merchant_id, amount::text, percentage, status, attempts, created_at, updated_at`

// RewardRepo implements ports.RewardRepository on the rewards table.
// transaction_id carries a unique constraint.
type RewardRepo struct {
	pool Pool
}

// NewRewardRepo creates a new RewardRepo.
func NewRewardRepo(pool Pool) *RewardRepo {
	return &RewardRepo{pool: pool}
}

// GetByTransactionID fetches the reward of a transaction. Returns nil, nil when absent.
func (r *RewardRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE transaction_id = $1`

	reward, err := scanReward(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reward by transaction_id: %w", err)
	}
	return reward, nil
}

// CreatePending reserves the transaction by inserting reward. The unique key on
// transaction_id decides between concurrent callers; the loser writes nothing.
func (r *RewardRepo) CreatePending(ctx context.Context, reward *domain.Reward) (bool, error) {
	query := `INSERT INTO rewards (id, transaction_id, user_id, merchant_id, amount, percentage, status, attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10)
		ON CONFLICT (transaction_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		reward.ID, reward.TransactionID, reward.UserID, reward.MerchantID,
		reward.Amount.String(), reward.Percentage, reward.Status, reward.Attempts,
		reward.CreatedAt, reward.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("reserve reward: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Upsert inserts the reward or updates the stored row of the same transaction.
// Only a pending row with the same reward id is modified.
func (r *RewardRepo) Upsert(ctx context.Context, reward *domain.Reward) error {
	query := `INSERT INTO rewards (id, transaction_id, user_id, merchant_id, amount, percentage, status, attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10)
		ON CONFLICT (transaction_id) DO UPDATE
		SET status = EXCLUDED.status, attempts = EXCLUDED.attempts, updated_at = EXCLUDED.updated_at
		WHERE rewards.status = 'pending' AND rewards.id = EXCLUDED.id`

	_, err := r.pool.Exec(ctx, query,
		reward.ID, reward.TransactionID, reward.UserID, reward.MerchantID,
		reward.Amount.String(), reward.Percentage, reward.Status, reward.Attempts,
		reward.CreatedAt, reward.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert reward: %w", err)
	}
	return nil
}

// ListByUserID returns every reward of a user, newest first.
func (r *RewardRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE user_id = $1 ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}
	defer rows.Close()

	rewards := []domain.Reward{}
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reward row: %w", err)
		}
		rewards = append(rewards, *reward)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reward rows: %w", err)
	}
	return rewards, nil
}

func scanReward(row pgx.Row) (*domain.Reward, error) {
	var (
		reward domain.Reward
		amount string
	)
	err := row.Scan(
		&reward.ID, &reward.TransactionID, &reward.UserID, &reward.MerchantID,
		&amount, &reward.Percentage, &reward.Status, &reward.Attempts,
		&reward.CreatedAt, &reward.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	reward.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse reward amount %q: %w", amount, err)
	}
	return &reward, nil
}
