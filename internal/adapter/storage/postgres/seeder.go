package postgres

import (
	"context"
	"fmt"

	"cashback-rewards/internal/adapter/storage/seed"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Seeder loads a dataset into the database in a single transaction.
// Rows that already exist are left untouched.
type Seeder struct {
	pool Pool
	log  zerolog.Logger
}

// NewSeeder creates a new Seeder wrapping the connection pool.
func NewSeeder(pool Pool, log zerolog.Logger) *Seeder {
	return &Seeder{pool: pool, log: log}
}

// Load inserts every record of ds.
func (s *Seeder) Load(ctx context.Context, ds seed.Dataset) (err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = seedRows(ctx, tx, ds); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	s.log.Info().
		Int("merchants", len(ds.Merchants)).
		Int("users", len(ds.Users)).
		Int("transactions", len(ds.Transactions)).
		Int("rewards", len(ds.Rewards)).
		Msg("demo dataset loaded")
	return nil
}

func seedRows(ctx context.Context, tx pgx.Tx, ds seed.Dataset) error {
	for _, m := range ds.Merchants {
		_, err := tx.Exec(ctx, `INSERT INTO merchants (id, name, api_key, is_active, created_at)
			VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
			m.ID, m.Name, m.APIKey, m.IsActive, m.CreatedAt)
		if err != nil {
			return fmt.Errorf("seed merchant %s: %w", m.ID, err)
		}
	}
	for _, u := range ds.Users {
		_, err := tx.Exec(ctx, `INSERT INTO users (id, name, created_at)
			VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Name, u.CreatedAt)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	for _, t := range ds.Transactions {
		_, err := tx.Exec(ctx, `INSERT INTO transactions (id, merchant_id, user_id, amount, created_at)
			VALUES ($1, $2, $3, $4::numeric, $5) ON CONFLICT (id) DO NOTHING`,
			t.ID, t.MerchantID, t.UserID, t.Amount.String(), t.Timestamp)
		if err != nil {
			return fmt.Errorf("seed transaction %s: %w", t.ID, err)
		}
	}
	for _, r := range ds.Rewards {
		_, err := tx.Exec(ctx, `INSERT INTO rewards (id, transaction_id, user_id, merchant_id, amount, percentage, status, attempts, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10) ON CONFLICT (transaction_id) DO NOTHING`,
			r.ID, r.TransactionID, r.UserID, r.MerchantID, r.Amount.String(),
			r.Percentage, r.Status, r.Attempts, r.CreatedAt, r.UpdatedAt)
		if err != nil {
			return fmt.Errorf("seed reward %s: %w", r.ID, err)
		}
	}
	return nil
}
