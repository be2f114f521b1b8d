package capture

import (
	"errors"
	"sync"
	"time"
)

// State of the capture trigger.
type State int

const (
	// Idle means no capture is in progress.
	Idle State = iota
	// Armed means the overlay is up and a click or confirm key will
	// read the pixel under the cursor.
	Armed
)

func (s State) String() string {
	if s == Armed {
		return "armed"
	}
	return "idle"
}

// ErrNotArmed is returned by Confirm when no capture is in progress.
var ErrNotArmed = errors.New("no capture in progress")

// Captured is emitted after a successful confirm.
type Captured struct {
	Color RGBA
	At    time.Time
}

// Trigger is the two-state capture flow. Arm requests while Armed are
// ignored, so at most one capture is in flight.
type Trigger struct {
	provider Provider
	events   chan Captured

	mu    sync.Mutex
	state State
}

func NewTrigger(provider Provider) *Trigger {
	return &Trigger{
		provider: provider,
		events:   make(chan Captured, 8),
	}
}

// Arm transitions Idle -> Armed. Returns false if already armed.
func (t *Trigger) Arm() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Armed {
		return false
	}
	t.state = Armed
	return true
}

// Cancel transitions Armed -> Idle without reading anything.
// Returns false if the trigger was not armed.
func (t *Trigger) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Armed {
		return false
	}
	t.state = Idle
	return true
}

// Confirm reads the pixel at (x, y) and returns to Idle. On success a
// Captured event is emitted on Events. Capture failures also return the
// trigger to Idle; nothing was written, so there is nothing to undo.
func (t *Trigger) Confirm(x, y int) (RGBA, error) {
	t.mu.Lock()
	if t.state != Armed {
		t.mu.Unlock()
		return RGBA{}, ErrNotArmed
	}
	t.state = Idle
	t.mu.Unlock()

	color, err := t.provider.PixelAt(x, y)
	if err != nil {
		return RGBA{}, err
	}

	event := Captured{Color: color, At: time.Now()}
	select {
	case t.events <- event:
	default:
		// Consumer is not keeping up; drop rather than block the UI.
	}
	return color, nil
}

// State returns the current trigger state.
func (t *Trigger) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Events delivers one Captured per successful confirm.
func (t *Trigger) Events() <-chan Captured {
	return t.events
}
