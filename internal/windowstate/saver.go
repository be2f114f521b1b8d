package windowstate

import (
	"log"
	"sync"
	"time"

	"github.com/nlfmt/huepick/internal/entities"
)

// DefaultSaveDebounce is the quiet period after the last move or resize
// before geometry is written.
const DefaultSaveDebounce = 300 * time.Millisecond

type writer interface {
	Save(entities.WindowState) error
}

// Saver debounces window-state writes: only the last geometry seen
// within the debounce window is persisted.
type Saver struct {
	store writer
	delay time.Duration

	mu      sync.Mutex
	pending *entities.WindowState
	timer   *time.Timer
}

func NewSaver(store writer, delay time.Duration) *Saver {
	if delay <= 0 {
		delay = DefaultSaveDebounce
	}
	return &Saver{store: store, delay: delay}
}

// Save schedules state for persistence after the debounce window.
// Repeated calls within the window replace the pending state and
// restart the timer.
func (s *Saver) Save(state entities.WindowState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = &state
	if s.timer == nil {
		s.timer = time.AfterFunc(s.delay, s.flushExpired)
		return
	}
	s.timer.Reset(s.delay)
}

func (s *Saver) flushExpired() {
	if err := s.Flush(); err != nil {
		log.Printf("Error saving window state: %v", err)
	}
}

// Flush writes any pending state immediately. Call on shutdown so the
// last geometry is not lost to the debounce window.
func (s *Saver) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	if pending == nil {
		return nil
	}
	return s.store.Save(*pending)
}
