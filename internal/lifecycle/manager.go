package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iudanet/drfriend/internal/models"
	"github.com/iudanet/drfriend/internal/records"
	"github.com/iudanet/drfriend/internal/storage"
	"github.com/iudanet/drfriend/internal/trash"
)

// DateLayout is the format of FileRecord.Date
const DateLayout = "2006-01-02 15:04:05"

//go:generate moq -out service_mock.go . Service

// Service defines the record lifecycle operations used by the CLI and the HTTP API
type Service interface {
	CreateRecord(name, mime, payload string) models.FileRecord
	Add(ctx context.Context, category models.Category, rec models.FileRecord) error

	MoveToTrash(ctx context.Context, category models.Category, index int) (*models.TrashEntry, error)
	RestoreFromTrash(ctx context.Context, index int) (*models.FileRecord, error)
	PermanentlyDelete(ctx context.Context, index int) (*models.TrashEntry, error)

	MoveToTrashByID(ctx context.Context, id string) (*models.TrashEntry, error)
	RestoreFromTrashByID(ctx context.Context, id string) (*models.TrashEntry, error)
	PermanentlyDeleteByID(ctx context.Context, id string) (*models.TrashEntry, error)

	Records(ctx context.Context) (models.RecordSet, error)
	Trash(ctx context.Context) ([]models.TrashEntry, error)
	Counts(ctx context.Context) (map[models.Category]int, error)
	Record(ctx context.Context, id string) (models.Category, *models.FileRecord, error)
	TrashEntry(ctx context.Context, id string) (*models.TrashEntry, error)
}

// Manager sequences operations across the record store and the trash store.
// Every operation that touches both stores runs inside a single KV
// transaction, so a failed write leaves both of them unchanged.
type Manager struct {
	kv      storage.KV
	records *records.Store
	trash   *trash.Store
	logger  *slog.Logger
	metrics *metrics
	now     func() time.Time
}

var _ Service = (*Manager)(nil)

// Option configures a Manager
type Option func(*Manager)

// WithClock overrides the clock used to stamp new records
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithRegisterer exports lifecycle counters to reg
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(m *Manager) {
		m.metrics = newMetrics(reg)
	}
}

// NewManager creates a lifecycle manager on top of kv
func NewManager(kv storage.KV, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		kv:      kv,
		records: records.NewStore(kv, logger),
		trash:   trash.NewStore(kv, logger),
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.metrics == nil {
		m.metrics = newMetrics(nil)
	}
	return m
}

// CreateRecord builds a new FileRecord with a fresh id and the current date
func (m *Manager) CreateRecord(name, mime, payload string) models.FileRecord {
	return models.FileRecord{
		ID:   newID(),
		Name: name,
		Data: payload,
		Mime: mime,
		Date: m.now().Format(DateLayout),
	}
}

// newID returns a UUIDv7: millisecond timestamp followed by random bits
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Add appends rec to the tail of category
func (m *Manager) Add(ctx context.Context, category models.Category, rec models.FileRecord) error {
	if !category.Valid() {
		m.metrics.observe(opAdd, resultError)
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if rec.ID == "" {
		m.metrics.observe(opAdd, resultError)
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}

	err := m.kv.Update(ctx, func(tx storage.Tx) error {
		set, err := m.records.Load(tx)
		if err != nil {
			return err
		}
		if _, _, ok := set.Find(rec.ID); ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
		}
		entries, err := m.trash.Load(tx)
		if err != nil {
			return err
		}
		if trash.IndexOf(entries, rec.ID) >= 0 {
			return fmt.Errorf("%w: %s is in the trash", ErrDuplicateID, rec.ID)
		}
		set.Append(category, rec)
		return m.records.Save(tx, set)
	})
	if err != nil {
		m.metrics.observe(opAdd, resultError)
		return fmt.Errorf("failed to add record: %w", err)
	}

	m.metrics.observe(opAdd, resultOK)
	m.logger.Info("record added", "category", category, "id", rec.ID, "name", rec.Name)
	return nil
}

// MoveToTrash removes the record at index of category and puts it at the
// front of the trash with the category stamped in.
// An invalid index or an unknown category is a no-op and returns nil.
func (m *Manager) MoveToTrash(ctx context.Context, category models.Category, index int) (*models.TrashEntry, error) {
	var moved *models.TrashEntry
	err := m.kv.Update(ctx, func(tx storage.Tx) error {
		var err error
		moved, err = m.moveTx(tx, category, index)
		return err
	})
	return m.finishMove(moved, err, "index", index)
}

// MoveToTrashByID moves the record with id to the front of the trash.
// Returns ErrRecordNotFound if no such record exists.
func (m *Manager) MoveToTrashByID(ctx context.Context, id string) (*models.TrashEntry, error) {
	var moved *models.TrashEntry
	err := m.kv.Update(ctx, func(tx storage.Tx) error {
		set, err := m.records.Load(tx)
		if err != nil {
			return err
		}
		category, index, ok := set.Find(id)
		if !ok {
			return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
		}
		moved, err = m.moveTx(tx, category, index)
		return err
	})
	return m.finishMove(moved, err, "id", id)
}

func (m *Manager) moveTx(tx storage.Tx, category models.Category, index int) (*models.TrashEntry, error) {
	set, err := m.records.Load(tx)
	if err != nil {
		return nil, err
	}
	rec, ok := set.RemoveAt(category, index)
	if !ok {
		return nil, nil
	}

	entries, err := m.trash.Load(tx)
	if err != nil {
		return nil, err
	}
	entry := models.NewTrashEntry(rec, category)

	if err := m.records.Save(tx, set); err != nil {
		return nil, err
	}
	if err := m.trash.Save(tx, trash.PushFront(entries, entry)); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (m *Manager) finishMove(moved *models.TrashEntry, err error, key string, value any) (*models.TrashEntry, error) {
	if err != nil {
		m.metrics.observe(opMoveToTrash, resultOf(err))
		return nil, fmt.Errorf("failed to move record to trash: %w", err)
	}
	if moved == nil {
		m.metrics.observe(opMoveToTrash, resultNoop)
		m.logger.Debug("move to trash: nothing to move", key, value)
		return nil, nil
	}
	m.metrics.observe(opMoveToTrash, resultOK)
	m.logger.Info("record moved to trash", "category", moved.Category, "id", moved.ID, key, value)
	return moved, nil
}

// RestoreFromTrash removes the trash entry at index and appends the record
// to the tail of its origin category, creating the category if absent.
// An invalid index is a no-op and returns nil.
func (m *Manager) RestoreFromTrash(ctx context.Context, index int) (*models.FileRecord, error) {
	var restored *models.TrashEntry
	err := m.kv.Update(ctx, func(tx storage.Tx) error {
		entries, err := m.trash.Load(tx)
		if err != nil {
			return err
		}
		restored, err = m.restoreTx(tx, entries, index)
		return err
	})
	entry, err := m.finishRestore(restored, err, "index", index)
	if entry == nil {
		return nil, err
	}
	rec := entry.Record()
	return &rec, nil
}

// RestoreFromTrashByID restores the trash entry with id and returns it,
// so the caller learns the origin category from the same transaction.
// Returns ErrTrashEntryNotFound if no such entry exists.
func (m *Manager) RestoreFromTrashByID(ctx context.Context, id string) (*models.TrashEntry, error) {
	var restored *models.TrashEntry
	err := m.kv.Update(ctx, func(tx storage.Tx) error {
		entries, err := m.trash.Load(tx)
		if err != nil {
			return err
		}
		index := trash.IndexOf(entries, id)
		if index < 0 {
			return fmt.Errorf("%w: %s", ErrTrashEntryNotFound, id)
		}
		restored, err = m.restoreTx(tx, entries, index)
		return err
	})
	return m.finishRestore(restored, err, "id", id)
}

func (m *Manager) restoreTx(tx storage.Tx, entries []models.TrashEntry, index int) (*models.TrashEntry, error) {
	rest, entry, ok := trash.RemoveAt(entries, index)
	if !ok {
		return nil, nil
	}

	set, err := m.records.Load(tx)
	if err != nil {
		return nil, err
	}
	// Ид записи уникален среди всех категорий: конфликтующая запись получает новый ид
	if _, _, taken := set.Find(entry.ID); taken {
		fresh := newID()
		m.logger.Warn("restored record id is taken, assigning a new one", "id", entry.ID, "new_id", fresh)
		entry.ID = fresh
	}
	set.Append(entry.OriginCategory(), entry.Record())

	if err := m.trash.Save(tx, rest); err != nil {
		return nil, err
	}
	if err := m.records.Save(tx, set); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (m *Manager) finishRestore(restored *models.TrashEntry, err error, key string, value any) (*models.TrashEntry, error) {
	if err != nil {
		m.metrics.observe(opRestoreFromTrash, resultOf(err))
		return nil, fmt.Errorf("failed to restore record from trash: %w", err)
	}
	if restored == nil {
		m.metrics.observe(opRestoreFromTrash, resultNoop)
		m.logger.Debug("restore from trash: nothing to restore", key, value)
		return nil, nil
	}
	m.metrics.observe(opRestoreFromTrash, resultOK)
	m.logger.Info("record restored from trash", "category", restored.OriginCategory(), "id", restored.ID, key, value)
	return restored, nil
}

// PermanentlyDelete removes the trash entry at index for good.
// An invalid index is a no-op and returns nil.
func (m *Manager) PermanentlyDelete(ctx context.Context, index int) (*models.TrashEntry, error) {
	var deleted *models.TrashEntry
	err := m.kv.Update(ctx, func(tx storage.Tx) error {
		entries, err := m.trash.Load(tx)
		if err != nil {
			return err
		}
		deleted, err = m.deleteTx(tx, entries, index)
		return err
	})
	return m.finishDelete(deleted, err, "index", index)
}

// PermanentlyDeleteByID removes the trash entry with id for good.
// Returns ErrTrashEntryNotFound if no such entry exists.
func (m *Manager) PermanentlyDeleteByID(ctx context.Context, id string) (*models.TrashEntry, error) {
	var deleted *models.TrashEntry
	err := m.kv.Update(ctx, func(tx storage.Tx) error {
		entries, err := m.trash.Load(tx)
		if err != nil {
			return err
		}
		index := trash.IndexOf(entries, id)
		if index < 0 {
			return fmt.Errorf("%w: %s", ErrTrashEntryNotFound, id)
		}
		deleted, err = m.deleteTx(tx, entries, index)
		return err
	})
	return m.finishDelete(deleted, err, "id", id)
}

func (m *Manager) deleteTx(tx storage.Tx, entries []models.TrashEntry, index int) (*models.TrashEntry, error) {
	rest, entry, ok := trash.RemoveAt(entries, index)
	if !ok {
		return nil, nil
	}
	if err := m.trash.Save(tx, rest); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (m *Manager) finishDelete(deleted *models.TrashEntry, err error, key string, value any) (*models.TrashEntry, error) {
	if err != nil {
		m.metrics.observe(opPermanentlyDelete, resultOf(err))
		return nil, fmt.Errorf("failed to delete trash entry: %w", err)
	}
	if deleted == nil {
		m.metrics.observe(opPermanentlyDelete, resultNoop)
		m.logger.Debug("permanent delete: nothing to delete", key, value)
		return nil, nil
	}
	m.metrics.observe(opPermanentlyDelete, resultOK)
	m.logger.Info("trash entry permanently deleted", "category", deleted.OriginCategory(), "id", deleted.ID, key, value)
	return deleted, nil
}

// Records returns the current record mapping
func (m *Manager) Records(ctx context.Context) (models.RecordSet, error) {
	return m.records.LoadAll(ctx)
}

// Trash returns the current trash, newest first
func (m *Manager) Trash(ctx context.Context) ([]models.TrashEntry, error) {
	return m.trash.LoadAll(ctx)
}

// Counts returns the number of records in every category
func (m *Manager) Counts(ctx context.Context) (map[models.Category]int, error) {
	set, err := m.records.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return set.Counts(), nil
}

// Record looks up a record by id and reports its category
func (m *Manager) Record(ctx context.Context, id string) (models.Category, *models.FileRecord, error) {
	set, err := m.records.LoadAll(ctx)
	if err != nil {
		return "", nil, err
	}
	category, index, ok := set.Find(id)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	rec := set[category][index]
	return category, &rec, nil
}

// TrashEntry looks up a trash entry by id
func (m *Manager) TrashEntry(ctx context.Context, id string) (*models.TrashEntry, error) {
	entries, err := m.trash.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	index := trash.IndexOf(entries, id)
	if index < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTrashEntryNotFound, id)
	}
	return &entries[index], nil
}

func resultOf(err error) string {
	if errors.Is(err, ErrRecordNotFound) || errors.Is(err, ErrTrashEntryNotFound) {
		return resultNotFound
	}
	return resultError
}
