package postgres

import (
	"context"
	"fmt"
	"time"
)

const pingTimeout = 2 * time.Second

// HealthCheck implements ports.HealthChecker for PostgreSQL.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks that the rewards ledger is reachable, giving up after pingTimeout.
func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	var exists bool
	if err := h.pool.QueryRow(ctx, "SELECT to_regclass('public.rewards') IS NOT NULL").Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("rewards table is missing, migrations not applied")
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
