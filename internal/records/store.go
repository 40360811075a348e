package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/drfriend/internal/models"
	"github.com/iudanet/drfriend/internal/storage"
)

// ErrMalformed indicates that the persisted records document could not be parsed
var ErrMalformed = errors.New("malformed records document")

// Store owns the category -> records mapping persisted under storage.KeyRecords.
// Every operation re-reads the document, the Store keeps no cached state.
type Store struct {
	kv     storage.KV
	logger *slog.Logger
}

// NewStore creates a new record store on top of kv
func NewStore(kv storage.KV, logger *slog.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// LoadAll returns the full mapping.
// Missing or malformed data yields the default mapping with all four
// categories present and empty; only storage failures are returned.
func (s *Store) LoadAll(ctx context.Context) (models.RecordSet, error) {
	var set models.RecordSet
	err := s.kv.View(ctx, func(tx storage.Tx) error {
		var err error
		set, err = s.Load(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return set, nil
}

// SaveAll persists the full mapping, overwriting any prior value
func (s *Store) SaveAll(ctx context.Context, set models.RecordSet) error {
	err := s.kv.Update(ctx, func(tx storage.Tx) error {
		return s.Save(tx, set)
	})
	if err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Append pushes rec onto the end of the category list
func (s *Store) Append(ctx context.Context, category models.Category, rec models.FileRecord) error {
	err := s.kv.Update(ctx, func(tx storage.Tx) error {
		set, err := s.Load(tx)
		if err != nil {
			return err
		}
		set.Append(category, rec)
		return s.Save(tx, set)
	})
	if err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

// RemoveAt removes and returns the record at index of the category list.
// Following records shift down by one. Returns nil without writing
// anything if index is out of bounds.
func (s *Store) RemoveAt(ctx context.Context, category models.Category, index int) (*models.FileRecord, error) {
	var removed *models.FileRecord

	err := s.kv.Update(ctx, func(tx storage.Tx) error {
		set, err := s.Load(tx)
		if err != nil {
			return err
		}
		rec, ok := set.RemoveAt(category, index)
		if !ok {
			return nil
		}
		removed = &rec
		return s.Save(tx, set)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove record: %w", err)
	}

	return removed, nil
}

// Load reads the mapping inside an open transaction
func (s *Store) Load(tx storage.Tx) (models.RecordSet, error) {
	raw, err := tx.Get(storage.KeyRecords)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return models.NewRecordSet(), nil
	}
	if err != nil {
		return nil, err
	}

	set, err := Decode(raw)
	if err != nil {
		// Поврежденные данные трактуются как "данных еще нет"
		s.logger.Warn("records document is malformed, using defaults", "error", err)
	}
	return set, nil
}

// Save writes the mapping inside an open read-write transaction
func (s *Store) Save(tx storage.Tx, set models.RecordSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	return tx.Put(storage.KeyRecords, data)
}

// Decode parses a persisted records document.
// It always returns a usable mapping with every fixed category present.
// A document that is not a JSON object is replaced by the default mapping;
// a category whose value is not a list of records is reset to empty.
// The returned error describes what was discarded.
func Decode(raw []byte) (models.RecordSet, error) {
	set := models.NewRecordSet()

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return set, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var problems []error
	for key, value := range doc {
		var list []models.FileRecord
		if err := json.Unmarshal(value, &list); err != nil {
			problems = append(problems, fmt.Errorf("%w: category %q: %v", ErrMalformed, key, err))
			continue
		}
		if list == nil {
			list = []models.FileRecord{}
		}
		set[models.Category(key)] = list
	}

	return set, errors.Join(problems...)
}
