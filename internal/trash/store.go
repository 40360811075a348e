package trash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/iudanet/drfriend/internal/models"
	"github.com/iudanet/drfriend/internal/storage"
)

// ErrMalformed indicates that the persisted trash document could not be parsed
var ErrMalformed = errors.New("malformed trash document")

// Store owns the newest-first list of trashed records persisted under storage.KeyTrash.
type Store struct {
	kv     storage.KV
	logger *slog.Logger
}

// NewStore creates a new trash store on top of kv
func NewStore(kv storage.KV, logger *slog.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// LoadAll returns all trash entries, newest first.
// Missing or malformed data yields an empty list.
func (s *Store) LoadAll(ctx context.Context) ([]models.TrashEntry, error) {
	var entries []models.TrashEntry
	err := s.kv.View(ctx, func(tx storage.Tx) error {
		var err error
		entries, err = s.Load(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load trash: %w", err)
	}
	return entries, nil
}

// SaveAll persists entries, overwriting any prior value
func (s *Store) SaveAll(ctx context.Context, entries []models.TrashEntry) error {
	err := s.kv.Update(ctx, func(tx storage.Tx) error {
		return s.Save(tx, entries)
	})
	if err != nil {
		return fmt.Errorf("failed to save trash: %w", err)
	}
	return nil
}

// PushFront inserts entry at index 0
func (s *Store) PushFront(ctx context.Context, entry models.TrashEntry) error {
	err := s.kv.Update(ctx, func(tx storage.Tx) error {
		entries, err := s.Load(tx)
		if err != nil {
			return err
		}
		return s.Save(tx, PushFront(entries, entry))
	})
	if err != nil {
		return fmt.Errorf("failed to push trash entry: %w", err)
	}
	return nil
}

// RemoveAt removes and returns the entry at index.
// Returns nil without writing anything if index is out of bounds.
func (s *Store) RemoveAt(ctx context.Context, index int) (*models.TrashEntry, error) {
	var removed *models.TrashEntry

	err := s.kv.Update(ctx, func(tx storage.Tx) error {
		entries, err := s.Load(tx)
		if err != nil {
			return err
		}
		rest, entry, ok := RemoveAt(entries, index)
		if !ok {
			return nil
		}
		removed = &entry
		return s.Save(tx, rest)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove trash entry: %w", err)
	}

	return removed, nil
}

// Load reads the trash list inside an open transaction
func (s *Store) Load(tx storage.Tx) ([]models.TrashEntry, error) {
	raw, err := tx.Get(storage.KeyTrash)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []models.TrashEntry{}, nil
	}
	if err != nil {
		return nil, err
	}

	entries, err := Decode(raw)
	if err != nil {
		s.logger.Warn("trash document is malformed, using empty trash", "error", err)
	}
	return entries, nil
}

// Save writes the trash list inside an open read-write transaction.
// Entries without a category are written as models.CategoryOther,
// the same way Decode reads them.
func (s *Store) Save(tx storage.Tx, entries []models.TrashEntry) error {
	normalized := make([]models.TrashEntry, len(entries))
	for i, e := range entries {
		e.Category = e.OriginCategory()
		normalized[i] = e
	}
	data, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("failed to marshal trash: %w", err)
	}
	return tx.Put(storage.KeyTrash, data)
}

// Decode parses a persisted trash document.
// Anything that is not a JSON list of entries yields an empty list.
// Entries without a category are attributed to models.CategoryOther.
func Decode(raw []byte) ([]models.TrashEntry, error) {
	var entries []models.TrashEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []models.TrashEntry{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if entries == nil {
		return []models.TrashEntry{}, nil
	}

	for i := range entries {
		entries[i].Category = entries[i].OriginCategory()
	}
	return entries, nil
}

// PushFront returns entries with entry inserted at index 0
func PushFront(entries []models.TrashEntry, entry models.TrashEntry) []models.TrashEntry {
	return slices.Insert(entries, 0, entry)
}

// RemoveAt removes the entry at index with splice semantics.
// Reports false and returns entries unchanged if index is out of bounds.
func RemoveAt(entries []models.TrashEntry, index int) ([]models.TrashEntry, models.TrashEntry, bool) {
	if index < 0 || index >= len(entries) {
		return entries, models.TrashEntry{}, false
	}
	entry := entries[index]
	return slices.Delete(entries, index, index+1), entry, true
}

// IndexOf returns the position of the entry with id, or -1
func IndexOf(entries []models.TrashEntry, id string) int {
	return slices.IndexFunc(entries, func(e models.TrashEntry) bool {
		return e.ID == id
	})
}
