// Package windowstate restores and persists window geometry. Loads are
// clamped so a usable region of the window always remains on a
// connected display; saves are debounced so dragging does not hammer
// the database.
package windowstate

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/nlfmt/huepick/internal/database/window"
	"github.com/nlfmt/huepick/internal/entities"
)

// Display is the bounding rectangle of a connected display.
type Display struct {
	X, Y, Width, Height int
}

const (
	// DefaultWidth and DefaultHeight are used on first run.
	DefaultWidth  = 800
	DefaultHeight = 600

	// minVisible is the smallest strip of the window that must remain
	// reachable on some display after clamping.
	minVisible = 48
)

type Store struct {
	repo *window.Repository
}

func NewStore(repo *window.Repository) *Store {
	return &Store{repo: repo}
}

// Load returns the persisted geometry clamped against the given
// displays. On first run, or when nothing of the saved geometry can be
// made visible, it returns a centered default on the primary display.
// Storage failures fall back to the default with a logged warning.
func (s *Store) Load(displays []Display) (entities.WindowState, error) {
	state, err := s.repo.Load()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("WARNING: loading window state failed, using defaults: %v", err)
		}
		return centeredDefault(displays), nil
	}

	if state.Width <= 0 || state.Height <= 0 {
		return centeredDefault(displays), nil
	}
	return Clamp(*state, displays), nil
}

// Save overwrites the singleton geometry row immediately.
// Callers on a move/resize path should go through a Saver instead.
func (s *Store) Save(state entities.WindowState) error {
	if err := s.repo.Save(state); err != nil {
		return fmt.Errorf("failed to save window state: %w", err)
	}
	return nil
}

// Clamp shifts the geometry so at least a minimal strip of the window
// stays on the display it overlaps most (the primary when it overlaps
// none). Size is preserved; only the position moves.
func Clamp(state entities.WindowState, displays []Display) entities.WindowState {
	if len(displays) == 0 {
		return state
	}

	d := nearestDisplay(state, displays)

	// Horizontal: keep at least minVisible pixels inside the display.
	if state.X+state.Width < d.X+minVisible {
		state.X = d.X + minVisible - state.Width
	}
	if state.X > d.X+d.Width-minVisible {
		state.X = d.X + d.Width - minVisible
	}

	// Vertical: additionally never let the top edge rise above the
	// display, or the title bar becomes unreachable.
	if state.Y+state.Height < d.Y+minVisible {
		state.Y = d.Y + minVisible - state.Height
	}
	if state.Y > d.Y+d.Height-minVisible {
		state.Y = d.Y + d.Height - minVisible
	}
	if state.Y < d.Y {
		state.Y = d.Y
	}

	return state
}

// nearestDisplay picks the display whose area overlaps the window the
// most, falling back to the first (primary) display.
func nearestDisplay(state entities.WindowState, displays []Display) Display {
	best := displays[0]
	bestArea := 0
	for _, d := range displays {
		w := min(state.X+state.Width, d.X+d.Width) - max(state.X, d.X)
		h := min(state.Y+state.Height, d.Y+d.Height) - max(state.Y, d.Y)
		if w > 0 && h > 0 && w*h > bestArea {
			best = d
			bestArea = w * h
		}
	}
	return best
}

func centeredDefault(displays []Display) entities.WindowState {
	state := entities.WindowState{Width: DefaultWidth, Height: DefaultHeight}
	if len(displays) == 0 {
		return state
	}
	primary := displays[0]
	state.X = primary.X + (primary.Width-state.Width)/2
	state.Y = primary.Y + (primary.Height-state.Height)/2
	return state
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
