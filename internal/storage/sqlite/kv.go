package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/drfriend/internal/storage"
)

var errReadOnlyTx = errors.New("write in read-only transaction")

// View runs fn in a transaction that rejects writes
func (s *Storage) View(ctx context.Context, fn func(tx storage.Tx) error) error {
	return s.run(ctx, true, fn)
}

// Update runs fn in a read-write transaction.
// The transaction is committed only if fn succeeds.
func (s *Storage) Update(ctx context.Context, fn func(tx storage.Tx) error) error {
	return s.run(ctx, false, fn)
}

func (s *Storage) run(ctx context.Context, readOnly bool, fn func(tx storage.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&sqlTx{ctx: ctx, tx: tx, readOnly: readOnly}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// sqlTx adapts *sql.Tx to storage.Tx
type sqlTx struct {
	ctx      context.Context
	tx       *sql.Tx
	readOnly bool
}

func (t *sqlTx) Get(key string) ([]byte, error) {
	var value []byte
	err := t.tx.QueryRowContext(t.ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func (t *sqlTx) Put(key string, value []byte) error {
	if t.readOnly {
		return errReadOnlyTx
	}

	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := t.tx.ExecContext(t.ctx, query, key, value, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

func (t *sqlTx) Delete(key string) error {
	if t.readOnly {
		return errReadOnlyTx
	}

	if _, err := t.tx.ExecContext(t.ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
