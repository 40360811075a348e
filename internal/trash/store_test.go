package trash

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/drfriend/internal/models"
	"github.com/iudanet/drfriend/internal/storage"
	"github.com/iudanet/drfriend/internal/storage/sqlite"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestStore создает trash store поверх временной SQLite базы
func createTestStore(t *testing.T) (*Store, storage.KV) {
	t.Helper()
	kv, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "trash.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, kv.Close())
	})
	return NewStore(kv, setupTestLogger()), kv
}

func entry(id string, c models.Category) models.TrashEntry {
	return models.NewTrashEntry(models.FileRecord{
		ID:   id,
		Name: id + ".png",
		Data: "data:image/png;base64,iVBORw0KGgo=",
		Mime: "image/png",
		Date: "2025-01-01 10:00:00",
	}, c)
}

func TestStore_LoadAll_EmptyStorage(t *testing.T) {
	store, _ := createTestStore(t)

	entries, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestStore_LoadAll_MalformedData(t *testing.T) {
	for _, raw := range []string{"garbage", `{"bill":[]}`, `42`} {
		t.Run(raw, func(t *testing.T) {
			ctx := context.Background()
			store, kv := createTestStore(t)
			require.NoError(t, storage.Write(ctx, kv, storage.KeyTrash, []byte(raw)))

			entries, err := store.LoadAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestStore_PushFront_NewestFirst(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStore(t)

	require.NoError(t, store.PushFront(ctx, entry("a", models.CategoryBill)))
	require.NoError(t, store.PushFront(ctx, entry("b", models.CategoryReport)))
	require.NoError(t, store.PushFront(ctx, entry("c", models.CategoryOther)))

	entries, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
	assert.Equal(t, "a", entries[2].ID)
	assert.Equal(t, models.CategoryReport, entries[1].Category)
}

func TestStore_RemoveAt(t *testing.T) {
	ctx := context.Background()
	store, _ := createTestStore(t)
	require.NoError(t, store.SaveAll(ctx, []models.TrashEntry{
		entry("a", models.CategoryBill),
		entry("b", models.CategoryBill),
		entry("c", models.CategoryBill),
	}))

	removed, err := store.RemoveAt(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "a", removed.ID)

	entries, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "c", entries[1].ID)
}

func TestStore_RemoveAt_OutOfBoundsIsNoop(t *testing.T) {
	ctx := context.Background()
	store, kv := createTestStore(t)
	require.NoError(t, store.SaveAll(ctx, []models.TrashEntry{
		entry("a", models.CategoryBill),
		entry("b", models.CategoryPrescription),
		entry("c", models.CategoryOther),
	}))
	before, _, err := storage.Read(ctx, kv, storage.KeyTrash)
	require.NoError(t, err)

	for _, idx := range []int{999, 3, -1} {
		removed, err := store.RemoveAt(ctx, idx)
		require.NoError(t, err)
		assert.Nil(t, removed)
	}

	after, _, err := storage.Read(ctx, kv, storage.KeyTrash)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_SaveAllLoadAll_RoundTripIsByteIdentical(t *testing.T) {
	ctx := context.Background()
	store, kv := createTestStore(t)
	require.NoError(t, store.SaveAll(ctx, []models.TrashEntry{
		entry("a", models.CategoryBill),
		entry("b", models.Category("archive")),
	}))

	first, _, err := storage.Read(ctx, kv, storage.KeyTrash)
	require.NoError(t, err)

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.NoError(t, store.SaveAll(ctx, loaded))

	second, _, err := storage.Read(ctx, kv, storage.KeyTrash)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestStore_SaveAll_EmptyCategoryRoundTripIsByteIdentical(t *testing.T) {
	ctx := context.Background()
	store, kv := createTestStore(t)
	require.NoError(t, store.SaveAll(ctx, []models.TrashEntry{
		entry("a", models.Category("")),
		entry("b", models.CategoryBill),
	}))

	first, _, err := storage.Read(ctx, kv, storage.KeyTrash)
	require.NoError(t, err)
	assert.Contains(t, string(first), `"category":"other"`)

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, loaded[0].Category)
	require.NoError(t, store.SaveAll(ctx, loaded))

	second, _, err := storage.Read(ctx, kv, storage.KeyTrash)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestStore_SaveAll_NilWritesEmptyList(t *testing.T) {
	ctx := context.Background()
	store, kv := createTestStore(t)

	require.NoError(t, store.SaveAll(ctx, nil))

	raw, ok, err := storage.Read(ctx, kv, storage.KeyTrash)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(raw))
}

func TestDecode_MissingCategoryBecomesOther(t *testing.T) {
	entries, err := Decode([]byte(`[{"id":"1","name":"x.txt","data":"data:,","mime":"","date":"t"}]`))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.CategoryOther, entries[0].Category)

	entries, err = Decode([]byte(`{"id":"1"}`))
	require.ErrorIs(t, err, ErrMalformed)
	assert.Empty(t, entries)
}

func TestHelpers(t *testing.T) {
	entries := PushFront(nil, entry("a", models.CategoryBill))
	entries = PushFront(entries, entry("b", models.CategoryBill))

	assert.Equal(t, 0, IndexOf(entries, "b"))
	assert.Equal(t, 1, IndexOf(entries, "a"))
	assert.Equal(t, -1, IndexOf(entries, "missing"))

	rest, removed, ok := RemoveAt(entries, 1)
	require.True(t, ok)
	assert.Equal(t, "a", removed.ID)
	require.Len(t, rest, 1)

	rest, _, ok = RemoveAt(rest, 5)
	assert.False(t, ok)
	assert.Len(t, rest, 1)
}
