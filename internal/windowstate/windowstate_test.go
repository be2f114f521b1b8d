package windowstate

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nlfmt/huepick/internal/database/window"
	"github.com/nlfmt/huepick/internal/entities"
)

var singleDisplay = []Display{{X: 0, Y: 0, Width: 1920, Height: 1080}}

func setupStore(t *testing.T) (*Store, func()) {
	t.Helper()
	dbPath := "./test_windowstate_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.WindowState{})
	require.NoError(t, err)

	store := NewStore(window.NewRepository(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return store, cleanup
}

func TestStore_Load_FirstRunCenteredDefault(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()

	state, err := store.Load(singleDisplay)
	require.NoError(t, err)

	assert.Equal(t, DefaultWidth, state.Width)
	assert.Equal(t, DefaultHeight, state.Height)
	assert.Equal(t, (1920-DefaultWidth)/2, state.X)
	assert.Equal(t, (1080-DefaultHeight)/2, state.Y)
}

func TestStore_Load_RestoresSavedGeometry(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()

	saved := entities.WindowState{X: 120, Y: 80, Width: 640, Height: 480, AlwaysOnTop: true}
	require.NoError(t, store.Save(saved))

	state, err := store.Load(singleDisplay)
	require.NoError(t, err)

	assert.Equal(t, 120, state.X)
	assert.Equal(t, 80, state.Y)
	assert.Equal(t, 640, state.Width)
	assert.Equal(t, 480, state.Height)
	assert.True(t, state.AlwaysOnTop)
}

func TestStore_Load_ClampsOffscreenGeometry(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()

	// Saved while a second display to the right was connected
	require.NoError(t, store.Save(entities.WindowState{X: 2500, Y: 200, Width: 640, Height: 480}))

	state, err := store.Load(singleDisplay)
	require.NoError(t, err)

	assert.Equal(t, 1920-minVisible, state.X)
	assert.Equal(t, 200, state.Y)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		in       entities.WindowState
		wantX    int
		wantY    int
	}{
		{
			name:  "fully visible unchanged",
			in:    entities.WindowState{X: 100, Y: 100, Width: 640, Height: 480},
			wantX: 100, wantY: 100,
		},
		{
			name:  "off right edge",
			in:    entities.WindowState{X: 3000, Y: 100, Width: 640, Height: 480},
			wantX: 1920 - minVisible, wantY: 100,
		},
		{
			name:  "off left edge",
			in:    entities.WindowState{X: -1000, Y: 100, Width: 640, Height: 480},
			wantX: minVisible - 640, wantY: 100,
		},
		{
			name:  "above top edge",
			in:    entities.WindowState{X: 100, Y: -500, Width: 640, Height: 480},
			wantX: 100, wantY: 0,
		},
		{
			name:  "below bottom edge",
			in:    entities.WindowState{X: 100, Y: 2000, Width: 640, Height: 480},
			wantX: 100, wantY: 1080 - minVisible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.in, singleDisplay)
			assert.Equal(t, tt.wantX, got.X)
			assert.Equal(t, tt.wantY, got.Y)
			// Size is never altered
			assert.Equal(t, tt.in.Width, got.Width)
			assert.Equal(t, tt.in.Height, got.Height)
		})
	}
}

func TestClamp_PicksOverlappingDisplay(t *testing.T) {
	displays := []Display{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 1920, Height: 1080},
	}

	// Window lives on the second display; nothing to clamp
	in := entities.WindowState{X: 2200, Y: 300, Width: 640, Height: 480}
	got := Clamp(in, displays)
	assert.Equal(t, 2200, got.X)
	assert.Equal(t, 300, got.Y)
}

func TestClamp_NoDisplaysKnown(t *testing.T) {
	in := entities.WindowState{X: 9999, Y: 9999, Width: 640, Height: 480}
	got := Clamp(in, nil)
	assert.Equal(t, in, got)
}
