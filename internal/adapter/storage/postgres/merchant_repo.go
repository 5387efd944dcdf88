package postgres

import (
	"context"
	"errors"
	"fmt"

	"cashback-rewards/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const merchantColumns = `id, name, api_key, is_active, created_at`

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// GetByID fetches a merchant by id. Returns nil, nil when absent.
func (r *MerchantRepo) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE id = $1`

	m, err := scanMerchant(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get merchant by id: %w", err)
	}
	return m, nil
}

// GetByAPIKey fetches a merchant by its API key. Returns nil, nil when absent.
func (r *MerchantRepo) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE api_key = $1`

	m, err := scanMerchant(r.pool.QueryRow(ctx, query, apiKey))
	if err != nil {
		return nil, fmt.Errorf("get merchant by api_key: %w", err)
	}
	return m, nil
}

func scanMerchant(row pgx.Row) (*domain.Merchant, error) {
	m := &domain.Merchant{}
	err := row.Scan(&m.ID, &m.Name, &m.APIKey, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}
