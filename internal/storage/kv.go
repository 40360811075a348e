package storage

import (
	"context"
	"errors"
	"fmt"
)

//go:generate moq -out kv_mock.go . KV Tx

// Tx is a read or read-write view of the key-value store.
// Values are raw bytes; serialization is the caller's responsibility.
type Tx interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound if the key is absent
	Get(key string) ([]byte, error)

	// Put stores value under key, overwriting any prior value
	Put(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error
	Delete(key string) error
}

// KV defines the persistent key-value medium the document stores are built on.
// Every key is written atomically. All writes performed inside one Update
// call are committed as a single unit or not at all.
type KV interface {
	// View runs fn in a read-only transaction
	View(ctx context.Context, fn func(tx Tx) error) error

	// Update runs fn in a read-write transaction.
	// If fn returns an error every write made by fn is rolled back
	Update(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database
	Close() error
}

// Read returns the raw value stored under key.
// The boolean result is false when the key is absent.
func Read(ctx context.Context, kv KV, key string) ([]byte, bool, error) {
	var value []byte
	found := true

	err := kv.View(ctx, func(tx Tx) error {
		data, err := tx.Get(key)
		if errors.Is(err, ErrKeyNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		// Копируем, так как буфер транзакции недействителен после ее завершения
		value = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	return value, found, nil
}

// Write stores value under key in its own transaction.
func Write(ctx context.Context, kv KV, key string, value []byte) error {
	err := kv.Update(ctx, func(tx Tx) error {
		return tx.Put(key, value)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Remove deletes key in its own transaction.
func Remove(ctx context.Context, kv KV, key string) error {
	err := kv.Update(ctx, func(tx Tx) error {
		return tx.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
