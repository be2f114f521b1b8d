// Package historystore records previously picked colors, honoring the
// save_history flag and the max_history_records cap from the settings
// store.
package historystore

import (
	"errors"
	"fmt"
	"time"

	"github.com/nlfmt/huepick/internal/database/history"
	"github.com/nlfmt/huepick/internal/entities"
	"github.com/nlfmt/huepick/internal/settingsstore"
	"github.com/nlfmt/huepick/internal/utils"
)

// ErrNotRecorded signals that Add was a no-op because history recording
// is disabled. It is a sentinel result, not a failure.
var ErrNotRecorded = errors.New("history recording is disabled")

type Store struct {
	repo     *history.Repository
	settings *settingsstore.Store
}

func New(repo *history.Repository, settings *settingsstore.Store) *Store {
	return &Store{repo: repo, settings: settings}
}

// Add records a picked color and evicts the oldest entries beyond the
// configured cap in the same transaction. When save_history is off it
// returns (0, ErrNotRecorded) and leaves the table untouched.
// The color is normalized to its canonical hex form before storage.
func (s *Store) Add(color string, capturedAt time.Time, source string) (uint, error) {
	if !s.settings.SaveHistory() {
		return 0, ErrNotRecorded
	}

	canonical, err := utils.CanonicalHex(color, s.settings.UseAlpha())
	if err != nil {
		return 0, fmt.Errorf("invalid color value: %w", err)
	}

	entry := &entities.ColorHistoryEntry{
		Color:      canonical,
		Source:     source,
		CapturedAt: capturedAt,
	}
	if err := s.repo.Insert(entry, s.settings.MaxHistoryRecords()); err != nil {
		return 0, fmt.Errorf("failed to record color: %w", err)
	}
	return entry.ID, nil
}

// List returns stored entries, most recent first. A limit of zero or
// below returns everything.
func (s *Store) List(limit int) ([]entities.ColorHistoryEntry, error) {
	entries, err := s.repo.List(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (s *Store) Count() (int64, error) {
	return s.repo.Count()
}

// Clear deletes all history entries unconditionally.
func (s *Store) Clear() error {
	if err := s.repo.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Prune re-applies the configured cap. Covers the case where
// max_history_records was lowered after entries accumulated.
func (s *Store) Prune() (int64, error) {
	return s.repo.Trim(s.settings.MaxHistoryRecords())
}
