// Package hotkey turns the OS global-hotkey hook into a bounded event
// channel. The hook thread only ever pushes discrete press events;
// consumers drain them on the main loop, so no shared state is touched
// off-loop.
package hotkey

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.design/x/hotkey"
)

// pressBuffer bounds how many undrained presses are kept. Further
// presses are dropped; a capture hotkey mashed faster than the loop
// consumes it has nothing useful to queue.
const pressBuffer = 8

// Source delivers discrete hotkey press events.
type Source interface {
	Presses() <-chan struct{}
	Start() error
	Stop()
}

// GlobalSource registers a system-wide hotkey via the OS keyboard hook.
type GlobalSource struct {
	hk      *hotkey.Hotkey
	presses chan struct{}

	mu   sync.Mutex
	done chan struct{}
}

// NewGlobalSource parses a combo like "ctrl+shift+p" and prepares a
// source for it. Registration happens in Start.
func NewGlobalSource(combo string) (*GlobalSource, error) {
	mods, key, err := ParseCombo(combo)
	if err != nil {
		return nil, err
	}
	return &GlobalSource{
		hk:      hotkey.New(mods, key),
		presses: make(chan struct{}, pressBuffer),
	}, nil
}

func (s *GlobalSource) Presses() <-chan struct{} {
	return s.presses
}

// Start registers the hotkey and begins forwarding press events.
func (s *GlobalSource) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return nil
	}

	if err := s.hk.Register(); err != nil {
		return fmt.Errorf("failed to register global hotkey: %w", err)
	}

	s.done = make(chan struct{})
	go s.forward(s.done)
	return nil
}

func (s *GlobalSource) forward(done chan struct{}) {
	for {
		select {
		case <-s.hk.Keydown():
			select {
			case s.presses <- struct{}{}:
			default:
				// Bounded: presses beyond the buffer are dropped.
			}
		case <-done:
			return
		}
	}
}

// Stop unregisters the hotkey and stops forwarding.
func (s *GlobalSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		return
	}
	close(s.done)
	s.done = nil
	if err := s.hk.Unregister(); err != nil {
		log.Printf("Error unregistering hotkey: %v", err)
	}
}

// ParseCombo parses a textual hotkey combo like "ctrl+shift+p" into
// modifiers and a key. At least one modifier is required; global
// hotkeys without modifiers would swallow ordinary typing.
func ParseCombo(combo string) ([]hotkey.Modifier, hotkey.Key, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(combo)), "+")
	if len(parts) < 2 {
		return nil, 0, fmt.Errorf("hotkey combo %q needs at least one modifier and a key", combo)
	}

	var mods []hotkey.Modifier
	for _, part := range parts[:len(parts)-1] {
		mod, ok := modifierNames[strings.TrimSpace(part)]
		if !ok {
			return nil, 0, fmt.Errorf("unknown modifier %q in hotkey combo %q", part, combo)
		}
		mods = append(mods, mod)
	}

	keyName := strings.TrimSpace(parts[len(parts)-1])
	key, ok := keyNames[keyName]
	if !ok {
		return nil, 0, fmt.Errorf("unknown key %q in hotkey combo %q", keyName, combo)
	}
	return mods, key, nil
}
