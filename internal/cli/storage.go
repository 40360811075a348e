package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/drfriend/internal/config"
	"github.com/iudanet/drfriend/internal/storage"
	"github.com/iudanet/drfriend/internal/storage/boltdb"
	"github.com/iudanet/drfriend/internal/storage/sqlite"
)

// openStorage открывает KV хранилище выбранного backend
func openStorage(ctx context.Context, cfg *config.Config) (storage.KV, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		kv, err := sqlite.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database %s: %w", cfg.DBPath, err)
		}
		return kv, nil
	case config.BackendBolt:
		kv, err := boltdb.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open BoltDB database %s: %w", cfg.DBPath, err)
		}
		return kv, nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalidConfig, cfg.Backend)
}
