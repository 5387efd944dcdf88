package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"
)

// Migrate executes every *.sql file at the root of fsys in lexical order.
// The files must be idempotent; no version table is kept.
func Migrate(ctx context.Context, pool Pool, fsys fs.FS, log zerolog.Logger) error {
	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}

	for _, name := range files {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		log.Info().Str("migration", name).Msg("migration applied")
	}
	return nil
}
