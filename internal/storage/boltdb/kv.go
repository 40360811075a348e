package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/drfriend/internal/storage"
)

// View runs fn in a read-only BoltDB transaction
func (s *Storage) View(ctx context.Context, fn func(tx storage.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)
		if bucket == nil {
			return fmt.Errorf("kv bucket not found")
		}
		return fn(&boltTx{bucket: bucket})
	})
}

// Update runs fn in a read-write BoltDB transaction.
// BoltDB commits all puts of the transaction atomically and
// rolls them back if fn returns an error.
func (s *Storage) Update(ctx context.Context, fn func(tx storage.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)
		if bucket == nil {
			return fmt.Errorf("kv bucket not found")
		}
		return fn(&boltTx{bucket: bucket})
	})
}

// boltTx adapts a bucket inside an open transaction to storage.Tx.
// Returned values are only valid until the transaction ends.
type boltTx struct {
	bucket *bbolt.Bucket
}

func (t *boltTx) Get(key string) ([]byte, error) {
	data := t.bucket.Get([]byte(key))
	if data == nil {
		return nil, storage.ErrKeyNotFound
	}
	return data, nil
}

func (t *boltTx) Put(key string, value []byte) error {
	if err := t.bucket.Put([]byte(key), value); err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

func (t *boltTx) Delete(key string) error {
	if err := t.bucket.Delete([]byte(key)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
