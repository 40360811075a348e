package lifecycle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/drfriend/internal/models"
	"github.com/iudanet/drfriend/internal/storage"
	"github.com/iudanet/drfriend/internal/storage/boltdb"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestKV(t *testing.T) storage.KV {
	t.Helper()
	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "drfriend.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, kv.Close())
	})
	return kv
}

func createTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(createTestKV(t), setupTestLogger())
}

func record(id string) models.FileRecord {
	return models.FileRecord{
		ID:   id,
		Name: id + ".pdf",
		Mime: "application/pdf",
		Data: "data:application/pdf;base64,JVBERi0=",
		Date: "t1",
	}
}

func seed(t *testing.T, m *Manager, category models.Category, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, m.Add(context.Background(), category, record(id)))
	}
}

func ids(list []models.FileRecord) []string {
	out := make([]string, 0, len(list))
	for _, rec := range list {
		out = append(out, rec.ID)
	}
	return out
}

func TestManager_Scenario(t *testing.T) {
	ctx := context.Background()
	m := createTestManager(t)

	rec := models.FileRecord{ID: "1", Name: "x.pdf", Mime: "application/pdf", Data: "data:...", Date: "t1"}
	require.NoError(t, m.Add(ctx, models.CategoryBill, rec))

	moved, err := m.MoveToTrash(ctx, models.CategoryBill, 0)
	require.NoError(t, err)
	require.NotNil(t, moved)

	set, err := m.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, set[models.CategoryBill])

	entries, err := m.Trash(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.TrashEntry{{FileRecord: rec, Category: models.CategoryBill}}, entries)

	restored, err := m.RestoreFromTrash(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, rec, *restored)

	entries, err = m.Trash(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	set, err = m.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.FileRecord{rec}, set[models.CategoryBill])
}

func TestManager_MoveRestoreInverse(t *testing.T) {
	ctx := context.Background()
	m := createTestManager(t)
	seed(t, m, models.CategoryReport, "a", "b", "c", "d")

	_, err := m.MoveToTrash(ctx, models.CategoryReport, 1)
	require.NoError(t, err)
	restored, err := m.RestoreFromTrash(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, restored)

	set, err := m.Records(ctx)
	require.NoError(t, err)
	// Восстановленная запись оказывается в конце списка
	assert.Equal(t, []string{"a", "c", "d", "b"}, ids(set[models.CategoryReport]))
	assert.Equal(t, record("b"), set[models.CategoryReport][3])
}

func TestManager_TrashOrdering(t *testing.T) {
	ctx := context.Background()
	m := createTestManager(t)
	seed(t, m, models.CategoryBill, "1", "2")
	seed(t, m, models.CategoryOther, "3")

	for _, step := range []struct {
		category models.Category
		wantHead string
	}{
		{models.CategoryBill, "1"},
		{models.CategoryOther, "3"},
		{models.CategoryBill, "2"},
	} {
		_, err := m.MoveToTrash(ctx, step.category, 0)
		require.NoError(t, err)

		entries, err := m.Trash(ctx)
		require.NoError(t, err)
		assert.Equal(t, step.wantHead, entries[0].ID)
		assert.Equal(t, step.category, entries[0].Category)
	}

	entries, err := m.Trash(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestManager_PermanentlyDeleteIsTerminal(t *testing.T) {
	ctx := context.Background()
	m := createTestManager(t)
	seed(t, m, models.CategoryPrescription, "1", "2")
	_, err := m.MoveToTrash(ctx, models.CategoryPrescription, 0)
	require.NoError(t, err)
	_, err = m.MoveToTrash(ctx, models.CategoryPrescription, 0)
	require.NoError(t, err)

	deleted, err := m.PermanentlyDelete(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "1", deleted.ID)

	entries, err := m.Trash(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Оставшуюся запись можно восстановить, удаленную нельзя
	for range 3 {
		_, err = m.RestoreFromTrash(ctx, 0)
		require.NoError(t, err)
	}
	set, err := m.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(set[models.CategoryPrescription]))

	_, err = m.RestoreFromTrashByID(ctx, "1")
	assert.ErrorIs(t, err, ErrTrashEntryNotFound)
}

func TestManager_InvalidIndexIsNoop(t *testing.T) {
	ctx := context.Background()
	m := createTestManager(t)
	seed(t, m, models.CategoryBill, "1", "2", "3")
	_, err := m.MoveToTrash(ctx, models.CategoryBill, 2)
	require.NoError(t, err)

	moved, err := m.MoveToTrash(ctx, models.CategoryBill, 999)
	require.NoError(t, err)
	assert.Nil(t, moved)

	moved, err = m.MoveToTrash(ctx, models.Category("archive"), 0)
	require.NoError(t, err)
	assert.Nil(t, moved)

	restored, err := m.RestoreFromTrash(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, restored)

	deleted, err := m.PermanentlyDelete(ctx, -1)
	require.NoError(t, err)
	assert.Nil(t, deleted)

	set, err := m.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(set[models.CategoryBill]))
	entries, err := m.Trash(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestManager_RestoreCreatesMissingCategory(t *testing.T) {
	ctx := context.Background()
	kv := createTestKV(t)
	m := NewManager(kv, setupTestLogger())

	raw := `[{"id":"x","name":"old.txt","data":"data:,","mime":"","date":"t0","category":"archive"},` +
		`{"id":"y","name":"older.txt","data":"data:,","mime":"","date":"t0"}]`
	require.NoError(t, storage.Write(ctx, kv, storage.KeyTrash, []byte(raw)))

	_, err := m.RestoreFromTrash(ctx, 0)
	require.NoError(t, err)
	_, err = m.RestoreFromTrash(ctx, 0)
	require.NoError(t, err)

	set, err := m.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, ids(set[models.Category("archive")]))
	// Запись без категории попадает в other
	assert.Equal(t, []string{"y"}, ids(set[models.CategoryOther]))
}

func TestManager_ByID(t *testing.T) {
	ctx := context.Background()
	m := createTestManager(t)
	seed(t, m, models.CategoryBill, "b1", "b2")
	seed(t, m, models.CategoryReport, "r1")

	moved, err := m.MoveToTrashByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryReport, moved.Category)

	_, err = m.MoveToTrashByID(ctx, "b2")
	require.NoError(t, err)

	restored, err := m.RestoreFromTrashByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", restored.ID)

	deleted, err := m.PermanentlyDeleteByID(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, "b2", deleted.ID)

	set, err := m.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, ids(set[models.CategoryBill]))
	assert.Equal(t, []string{"r1"}, ids(set[models.CategoryReport]))

	entries, err := m.Trash(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestManager_ByID_NotFound(t *testing.T) {
	ctx := context.Background()
	m := createTestManager(t)
	seed(t, m, models.CategoryBill, "1")

	_, err := m.MoveToTrashByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = m.RestoreFromTrashByID(ctx, "1")
	assert.ErrorIs(t, err, ErrTrashEntryNotFound)

	_, err = m.PermanentlyDeleteByID(ctx, "1")
	assert.ErrorIs(t, err, ErrTrashEntryNotFound)

	_, _, err = m.Record(ctx, "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = m.TrashEntry(ctx, "missing")
	assert.ErrorIs(t, err, ErrTrashEntryNotFound)

	// Хранилище не изменилось
	set, err := m.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(set[models.CategoryBill]))
}

func TestManager_Lookup(t *testing.T) {
	ctx := context.Background()
	m := createTestManager(t)
	seed(t, m, models.CategoryOther, "o1", "o2")

	category, rec, err := m.Record(ctx, "o2")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, category)
	assert.Equal(t, record("o2"), *rec)

	_, err = m.MoveToTrashByID(ctx, "o1")
	require.NoError(t, err)

	entry, err := m.TrashEntry(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, entry.Category)

	counts, err := m.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[models.Category]int{
		models.CategoryBill:         0,
		models.CategoryPrescription: 0,
		models.CategoryReport:       0,
		models.CategoryOther:        1,
	}, counts)
}

func TestManager_Add_Validation(t *testing.T) {
	ctx := context.Background()
	m := createTestManager(t)

	err := m.Add(ctx, models.Category("archive"), record("1"))
	assert.ErrorIs(t, err, ErrInvalidCategory)

	err = m.Add(ctx, models.CategoryBill, models.FileRecord{Name: "no-id.pdf"})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	require.NoError(t, m.Add(ctx, models.CategoryBill, record("1")))
	err = m.Add(ctx, models.CategoryReport, record("1"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	set, err := m.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, set[models.CategoryBill], 1)
	assert.Empty(t, set[models.CategoryReport])
}

func TestManager_Add_RejectsIDInTrash(t *testing.T) {
	ctx := context.Background()
	m := createTestManager(t)
	seed(t, m, models.CategoryBill, "x")
	_, err := m.MoveToTrash(ctx, models.CategoryBill, 0)
	require.NoError(t, err)

	err = m.Add(ctx, models.CategoryBill, record("x"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	restored, err := m.RestoreFromTrash(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "x", restored.ID)

	set, err := m.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, ids(set[models.CategoryBill]))
}

func TestManager_Restore_TakenIDGetsFreshOne(t *testing.T) {
	ctx := context.Background()
	kv := createTestKV(t)
	m := NewManager(kv, setupTestLogger())

	// Документы, записанные в обход Add, могут содержать один ид в обоих ключах
	require.NoError(t, storage.Write(ctx, kv, storage.KeyRecords,
		[]byte(`{"bill":[{"id":"x","name":"a.pdf","data":"data:,","mime":"","date":"t1"}]}`)))
	require.NoError(t, storage.Write(ctx, kv, storage.KeyTrash,
		[]byte(`[{"id":"x","name":"b.pdf","data":"data:,","mime":"","date":"t2","category":"bill"}]`)))

	restored, err := m.RestoreFromTrashByID(ctx, "x")
	require.NoError(t, err)
	assert.NotEqual(t, "x", restored.ID)
	assert.NotEmpty(t, restored.ID)
	assert.Equal(t, "b.pdf", restored.Name)
	assert.Equal(t, models.CategoryBill, restored.OriginCategory())

	set, err := m.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", restored.ID}, ids(set[models.CategoryBill]))

	// Обе записи адресуемы по своим ид
	_, rec, err := m.Record(ctx, restored.ID)
	require.NoError(t, err)
	assert.Equal(t, "b.pdf", rec.Name)
	_, rec, err = m.Record(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", rec.Name)

	entries, err := m.Trash(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestManager_CreateRecord(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local)
	m := NewManager(createTestKV(t), setupTestLogger(), WithClock(func() time.Time { return now }))

	first := m.CreateRecord("scan.png", "image/png", "data:image/png;base64,AAAA")
	second := m.CreateRecord("scan.png", "image/png", "data:image/png;base64,AAAA")

	assert.Equal(t, "scan.png", first.Name)
	assert.Equal(t, "image/png", first.Mime)
	assert.Equal(t, "data:image/png;base64,AAAA", first.Data)
	assert.Equal(t, "2025-03-14 09:26:53", first.Date)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

// failingKV оборачивает настоящее хранилище и ломает запись заданного ключа
func failingKV(real storage.KV, key string, failure error) *storage.KVMock {
	return &storage.KVMock{
		ViewFunc: real.View,
		CloseFunc: func() error {
			return nil
		},
		UpdateFunc: func(ctx context.Context, fn func(tx storage.Tx) error) error {
			return real.Update(ctx, func(tx storage.Tx) error {
				return fn(&storage.TxMock{
					GetFunc:    tx.Get,
					DeleteFunc: tx.Delete,
					PutFunc: func(k string, value []byte) error {
						if k == key {
							return failure
						}
						return tx.Put(k, value)
					},
				})
			})
		},
	}
}

func TestManager_MoveToTrash_FailedWriteKeepsBothStores(t *testing.T) {
	ctx := context.Background()
	kv := createTestKV(t)
	healthy := NewManager(kv, setupTestLogger())
	seed(t, healthy, models.CategoryBill, "1", "2")

	failure := errors.New("storage quota exceeded")
	broken := NewManager(failingKV(kv, storage.KeyTrash, failure), setupTestLogger())

	moved, err := broken.MoveToTrash(ctx, models.CategoryBill, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	assert.Nil(t, moved)

	_, err = broken.MoveToTrashByID(ctx, "2")
	assert.ErrorIs(t, err, failure)

	// Запись не потеряна: запись в records откатилась вместе с trash
	set, err := healthy.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(set[models.CategoryBill]))
	entries, err := healthy.Trash(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestManager_RestoreFromTrash_FailedWriteKeepsBothStores(t *testing.T) {
	ctx := context.Background()
	kv := createTestKV(t)
	healthy := NewManager(kv, setupTestLogger())
	seed(t, healthy, models.CategoryReport, "1")
	_, err := healthy.MoveToTrash(ctx, models.CategoryReport, 0)
	require.NoError(t, err)

	failure := errors.New("disk full")
	broken := NewManager(failingKV(kv, storage.KeyRecords, failure), setupTestLogger())

	restored, err := broken.RestoreFromTrash(ctx, 0)
	assert.ErrorIs(t, err, failure)
	assert.Nil(t, restored)

	entries, err := healthy.Trash(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].ID)
	set, err := healthy.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, set[models.CategoryReport])
}

func TestManager_InterleavedHandlesLastWriteWins(t *testing.T) {
	ctx := context.Background()
	kv := createTestKV(t)
	tabA := NewManager(kv, setupTestLogger())
	tabB := NewManager(kv, setupTestLogger())
	seed(t, tabA, models.CategoryBill, "1", "2")

	// Вкладка B читает снимок до изменения во вкладке A
	snapshotB, err := tabB.Records(ctx)
	require.NoError(t, err)

	_, err = tabA.MoveToTrash(ctx, models.CategoryBill, 0)
	require.NoError(t, err)

	// Вкладка B сохраняет устаревший снимок поверх
	snapshotB.Append(models.CategoryBill, record("3"))
	require.NoError(t, tabB.records.SaveAll(ctx, snapshotB))

	set, err := tabA.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(set[models.CategoryBill]))

	// Запись "1" теперь и в records, и в trash: известная граница согласованности
	entries, err := tabA.Trash(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1", entries[0].ID)

	// Операции по id продолжают работать
	deleted, err := tabB.PermanentlyDeleteByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", deleted.ID)
}

func TestManager_Metrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := NewManager(createTestKV(t), setupTestLogger(), WithRegisterer(reg))
	seed(t, m, models.CategoryBill, "1")

	_, err := m.MoveToTrash(ctx, models.CategoryBill, 0)
	require.NoError(t, err)
	_, err = m.MoveToTrash(ctx, models.CategoryBill, 0)
	require.NoError(t, err)
	_, err = m.PermanentlyDeleteByID(ctx, "missing")
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "drfriend_lifecycle_operations_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			got[labels["operation"]+"/"+labels["result"]] = metric.GetCounter().GetValue()
		}
	}

	assert.Equal(t, map[string]float64{
		"add/ok":                       1,
		"move_to_trash/ok":             1,
		"move_to_trash/noop":           1,
		"permanently_delete/not_found": 1,
	}, got)
}
