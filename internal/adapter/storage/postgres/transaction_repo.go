package postgres

import (
	"context"
	"errors"
	"fmt"

	"cashback-rewards/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// GetByID fetches a transaction by id. Returns nil, nil when absent.
// Amounts are read as text so no precision is lost on the way to decimal.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT id, merchant_id, user_id, amount::text, created_at FROM transactions WHERE id = $1`

	var (
		t      domain.Transaction
		amount string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.MerchantID, &t.UserID, &amount, &t.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}

	t.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse transaction amount %q: %w", amount, err)
	}
	return &t, nil
}
