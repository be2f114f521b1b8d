package window

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nlfmt/huepick/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_window_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.WindowState{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Load_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Load()

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Save_New(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Save(entities.WindowState{X: 100, Y: 50, Width: 800, Height: 600})
	require.NoError(t, err)

	state, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 100, state.X)
	assert.Equal(t, 50, state.Y)
	assert.Equal(t, 800, state.Width)
	assert.Equal(t, 600, state.Height)
}

func TestRepository_Save_OverwritesSingletonRow(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Save(entities.WindowState{X: 0, Y: 0, Width: 800, Height: 600}))
	require.NoError(t, repo.Save(entities.WindowState{X: 30, Y: 40, Width: 1024, Height: 768, AlwaysOnTop: true}))

	var count int64
	require.NoError(t, repo.db.Model(&entities.WindowState{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	state, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 30, state.X)
	assert.Equal(t, 1024, state.Width)
	assert.True(t, state.AlwaysOnTop)
}
