package historystore

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nlfmt/huepick/internal/database/history"
	"github.com/nlfmt/huepick/internal/database/settings"
	"github.com/nlfmt/huepick/internal/entities"
	"github.com/nlfmt/huepick/internal/settingsstore"
)

func setupStore(t *testing.T) (*Store, *settingsstore.Store, func()) {
	t.Helper()
	dbPath := "./test_historystore_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Setting{}, &entities.ColorHistoryEntry{})
	require.NoError(t, err)

	settingsStore := settingsstore.New(settings.NewRepository(db))
	store := New(history.NewRepository(db), settingsStore)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return store, settingsStore, cleanup
}

func addAt(t *testing.T, store *Store, color string, offset time.Duration) uint {
	t.Helper()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id, err := store.Add(color, base.Add(offset), entities.CaptureSourceScreenPicker)
	require.NoError(t, err)
	return id
}

func TestStore_Add(t *testing.T) {
	store, _, cleanup := setupStore(t)
	defer cleanup()

	id := addAt(t, store, "#FF0000", 0)
	assert.NotZero(t, id)

	entries, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "#FF0000", entries[0].Color)
	assert.Equal(t, entities.CaptureSourceScreenPicker, entries[0].Source)
}

func TestStore_Add_CanonicalizesColor(t *testing.T) {
	store, _, cleanup := setupStore(t)
	defer cleanup()

	addAt(t, store, "ff8800", 0)

	entries, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "#FF8800", entries[0].Color)
}

func TestStore_Add_AlphaForm(t *testing.T) {
	store, settingsStore, cleanup := setupStore(t)
	defer cleanup()

	require.NoError(t, settingsStore.Set(entities.SettingKeyUseAlpha, "true"))

	addAt(t, store, "#FF880080", 0)

	entries, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "#FF880080", entries[0].Color)
}

func TestStore_Add_InvalidColor(t *testing.T) {
	store, _, cleanup := setupStore(t)
	defer cleanup()

	_, err := store.Add("notacolor", time.Now(), entities.CaptureSourceManual)
	assert.Error(t, err)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStore_Add_DisabledIsNoOp(t *testing.T) {
	store, settingsStore, cleanup := setupStore(t)
	defer cleanup()

	addAt(t, store, "#FF0000", 0)
	require.NoError(t, settingsStore.Set(entities.SettingKeySaveHistory, "false"))

	before, err := store.Count()
	require.NoError(t, err)

	id, err := store.Add("#00FF00", time.Now(), entities.CaptureSourceScreenPicker)
	assert.ErrorIs(t, err, ErrNotRecorded)
	assert.Zero(t, id)

	after, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_Add_EvictsBeyondLimit(t *testing.T) {
	store, settingsStore, cleanup := setupStore(t)
	defer cleanup()

	require.NoError(t, settingsStore.Set(entities.SettingKeyMaxHistoryRecords, "3"))

	for i, color := range []string{"#FF0000", "#00FF00", "#0000FF", "#FFFF00"} {
		addAt(t, store, color, time.Duration(i)*time.Second)
	}

	entries, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "#FFFF00", entries[0].Color)
	assert.Equal(t, "#0000FF", entries[1].Color)
	assert.Equal(t, "#00FF00", entries[2].Color)
}

func TestStore_Add_FiveBeyondLimit(t *testing.T) {
	store, settingsStore, cleanup := setupStore(t)
	defer cleanup()

	require.NoError(t, settingsStore.Set(entities.SettingKeyMaxHistoryRecords, "10"))

	for i := 0; i < 15; i++ {
		addAt(t, store, "#336699", time.Duration(i)*time.Second)
	}

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)

	// The 5 oldest entries are gone
	entries, err := store.List(0)
	require.NoError(t, err)
	oldest := entries[len(entries)-1]
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, base.Add(5*time.Second), oldest.CapturedAt.UTC())
}

func TestStore_Clear(t *testing.T) {
	store, _, cleanup := setupStore(t)
	defer cleanup()

	addAt(t, store, "#FF0000", 0)
	addAt(t, store, "#00FF00", time.Second)

	require.NoError(t, store.Clear())

	entries, err := store.List(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Prune(t *testing.T) {
	store, settingsStore, cleanup := setupStore(t)
	defer cleanup()

	for i := 0; i < 10; i++ {
		addAt(t, store, "#123456", time.Duration(i)*time.Second)
	}

	// Lower the cap after the fact; Prune re-applies it
	require.NoError(t, settingsStore.Set(entities.SettingKeyMaxHistoryRecords, "4"))

	evicted, err := store.Prune()
	require.NoError(t, err)
	assert.Equal(t, int64(6), evicted)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
