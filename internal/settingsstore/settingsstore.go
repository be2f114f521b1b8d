// Package settingsstore exposes typed, validated access to the
// persisted key/value settings table. It is constructed explicitly and
// passed to components that need it; there is no package-level state.
package settingsstore

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"gorm.io/gorm"

	"github.com/nlfmt/huepick/internal/database/settings"
	"github.com/nlfmt/huepick/internal/entities"
)

// ErrUnknownKey is returned for keys that are not recognized settings.
var ErrUnknownKey = errors.New("unknown setting key")

// ValidationError reports a settings write whose value does not match
// the key's declared type or range. The stored value is left untouched.
type ValidationError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for setting %q: %s", e.Value, e.Key, e.Reason)
}

// Listener receives a change notification after every successful write.
type Listener func(key, value string)

type Store struct {
	repo *settings.Repository

	mu        sync.RWMutex
	listeners []Listener
}

func New(repo *settings.Repository) *Store {
	return &Store{repo: repo}
}

// Subscribe registers a listener invoked after each successful Set and
// once per key after ResetToDefaults. Listeners run synchronously on
// the writing goroutine.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Store) notify(key, value string) {
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, l := range listeners {
		l(key, value)
	}
}

// Get returns the stored value for key, or the key's default when it
// has never been written. Storage failures on the read path fall back
// to the default with a logged warning; only unrecognized keys error.
func (s *Store) Get(key string) (string, error) {
	def, ok := Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	setting, err := s.repo.GetSetting(key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("WARNING: reading setting %q failed, using default: %v", key, err)
		}
		return def.Default, nil
	}

	// A stored value that no longer parses (e.g. written by an older
	// version) also falls back to the default.
	if _, err := normalize(def, setting.Value); err != nil {
		log.Printf("WARNING: stored value for %q is invalid, using default: %v", key, err)
		return def.Default, nil
	}
	return setting.Value, nil
}

// Set validates value against the key's declared type and range, then
// persists it durably before returning. A *ValidationError or
// ErrUnknownKey leaves the prior value in place.
func (s *Store) Set(key, value string) error {
	def, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	normalized, err := normalize(def, value)
	if err != nil {
		return err
	}

	if err := s.repo.SetSetting(key, normalized); err != nil {
		return fmt.Errorf("failed to persist setting %q: %w", key, err)
	}

	s.notify(key, normalized)
	return nil
}

// ResetToDefaults overwrites every recognized key with its default in
// one all-or-nothing operation.
func (s *Store) ResetToDefaults() error {
	values := make(map[string]string, len(definitions))
	for key, def := range definitions {
		values[key] = def.Default
	}
	if err := s.repo.ResetAll(values); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	for _, key := range Keys() {
		s.notify(key, values[key])
	}
	return nil
}

// All returns the effective value of every recognized key.
func (s *Store) All() map[string]string {
	values := make(map[string]string, len(definitions))
	for key := range definitions {
		value, _ := s.Get(key)
		values[key] = value
	}
	return values
}

// normalize parses and range-checks value per the definition, returning
// the canonical stored form.
func normalize(def Definition, value string) (string, error) {
	switch def.Kind {
	case KindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", &ValidationError{Key: def.Key, Value: value, Reason: "expected a boolean"}
		}
		return strconv.FormatBool(b), nil

	case KindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "", &ValidationError{Key: def.Key, Value: value, Reason: "expected an integer"}
		}
		if n < def.Min || n > def.Max {
			return "", &ValidationError{
				Key:    def.Key,
				Value:  value,
				Reason: fmt.Sprintf("must be between %d and %d", def.Min, def.Max),
			}
		}
		return strconv.Itoa(n), nil

	case KindString:
		if len(def.Allowed) > 0 {
			for _, allowed := range def.Allowed {
				if value == allowed {
					return value, nil
				}
			}
			return "", &ValidationError{
				Key:    def.Key,
				Value:  value,
				Reason: fmt.Sprintf("must be one of %v", def.Allowed),
			}
		}
		return value, nil
	}
	return "", &ValidationError{Key: def.Key, Value: value, Reason: "unsupported kind"}
}

func (s *Store) getBool(key string) bool {
	value, err := s.Get(key)
	if err != nil {
		return false
	}
	b, _ := strconv.ParseBool(value)
	return b
}

func (s *Store) getInt(key string) int {
	value, err := s.Get(key)
	if err != nil {
		return 0
	}
	n, _ := strconv.Atoi(value)
	return n
}

// Typed accessors for the recognized keys.

func (s *Store) Theme() string {
	value, _ := s.Get(entities.SettingKeyTheme)
	return value
}

func (s *Store) UseAlpha() bool { return s.getBool(entities.SettingKeyUseAlpha) }

func (s *Store) AlwaysOnTop() bool { return s.getBool(entities.SettingKeyAlwaysOnTop) }

func (s *Store) AutoCopy() bool { return s.getBool(entities.SettingKeyAutoCopy) }

func (s *Store) ShowNotifications() bool { return s.getBool(entities.SettingKeyShowNotifications) }

func (s *Store) ScreenPickerEnabled() bool { return s.getBool(entities.SettingKeyScreenPickerEnabled) }

func (s *Store) CrosshairEnabled() bool { return s.getBool(entities.SettingKeyCrosshairEnabled) }

func (s *Store) MagnifierEnabled() bool { return s.getBool(entities.SettingKeyMagnifierEnabled) }

func (s *Store) SaveHistory() bool { return s.getBool(entities.SettingKeySaveHistory) }

func (s *Store) MaxHistoryRecords() int { return s.getInt(entities.SettingKeyMaxHistoryRecords) }

func (s *Store) AutoSaveHistory() bool { return s.getBool(entities.SettingKeyAutoSaveHistory) }
