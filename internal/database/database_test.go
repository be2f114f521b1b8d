package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlfmt/huepick/internal/entities"
)

func TestDatabase(t *testing.T) {
	dbPath := "./test_" + t.Name() + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	t.Run("migrates settings table", func(t *testing.T) {
		err := db.DB.Create(&entities.Setting{Key: "theme", Value: "dark"}).Error
		require.NoError(t, err)

		var setting entities.Setting
		err = db.DB.Where("key = ?", "theme").First(&setting).Error
		require.NoError(t, err)
		assert.Equal(t, "dark", setting.Value)
	})

	t.Run("migrates color history table", func(t *testing.T) {
		entry := &entities.ColorHistoryEntry{Color: "#FF0000", Source: entities.CaptureSourceManual}
		err := db.DB.Create(entry).Error
		require.NoError(t, err)
		assert.NotZero(t, entry.ID)
	})

	t.Run("migrates window state table", func(t *testing.T) {
		err := db.DB.Create(&entities.WindowState{X: 10, Y: 20, Width: 800, Height: 600}).Error
		require.NoError(t, err)

		var count int64
		err = db.DB.Model(&entities.WindowState{}).Count(&count).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestDatabaseClose(t *testing.T) {
	dbPath := "./test_" + t.Name() + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	assert.NoError(t, db.Close())
}
