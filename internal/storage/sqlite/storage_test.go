package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/drfriend/internal/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func TestNew_CreatesSchema(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	var name string
	err := s.db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv", name)
}

func TestKV_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, found, err := storage.Read(ctx, s, storage.KeyTrash)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, storage.Write(ctx, s, storage.KeyTrash, []byte(`[{"id":"1"}]`)))

	value, found, err := storage.Read(ctx, s, storage.KeyTrash)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, string(value))

	// Upsert перезаписывает значение
	require.NoError(t, storage.Write(ctx, s, storage.KeyTrash, []byte(`[]`)))
	value, _, err = storage.Read(ctx, s, storage.KeyTrash)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))

	require.NoError(t, storage.Remove(ctx, s, storage.KeyTrash))
	_, found, err = storage.Read(ctx, s, storage.KeyTrash)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKV_UpdateRollsBackAllKeysOnError(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, storage.Write(ctx, s, storage.KeyRecords, []byte("records-v1")))

	failure := errors.New("disk full")
	err := s.Update(ctx, func(tx storage.Tx) error {
		if err := tx.Put(storage.KeyRecords, []byte("records-v2")); err != nil {
			return err
		}
		if err := tx.Put(storage.KeyTrash, []byte("trash-v1")); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	records, _, err := storage.Read(ctx, s, storage.KeyRecords)
	require.NoError(t, err)
	assert.Equal(t, "records-v1", string(records))

	_, found, err := storage.Read(ctx, s, storage.KeyTrash)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKV_ViewRejectsWrites(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.View(ctx, func(tx storage.Tx) error {
		return tx.Put(storage.KeyProfile, []byte(`{}`))
	})
	assert.ErrorIs(t, err, errReadOnlyTx)

	err = s.View(ctx, func(tx storage.Tx) error {
		return tx.Delete(storage.KeyProfile)
	})
	assert.ErrorIs(t, err, errReadOnlyTx)
}

func TestKV_ClosedStorage(t *testing.T) {
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())

	err = s.Update(context.Background(), func(tx storage.Tx) error { return nil })
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestKV_FileDatabaseReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "drfriend.sqlite")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, storage.Write(ctx, s, storage.KeyProfile, []byte(`{"name":"Ann"}`)))
	require.NoError(t, s.Close())

	// Повторное открытие не падает на уже примененной миграции
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	value, found, err := storage.Read(ctx, reopened, storage.KeyProfile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `{"name":"Ann"}`, string(value))
}

func TestKV_CloseDuringTransactions(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "drfriend.sqlite"))
	require.NoError(t, err)

	ctx := context.Background()
	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				err := store.Update(ctx, func(tx storage.Tx) error {
					return tx.Put(storage.KeyProfile, []byte(`{}`))
				})
				if err != nil {
					errs <- err
					return
				}
			}
		}()
	}

	require.NoError(t, store.Close())
	wg.Wait()
	close(errs)

	// После Close транзакции получают только ErrStorageClosed
	for err := range errs {
		assert.ErrorIs(t, err, storage.ErrStorageClosed)
	}
}
