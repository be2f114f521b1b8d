// Package history provides database operations for the picked-color log.
package history

import (
	"time"

	"gorm.io/gorm"

	"github.com/nlfmt/huepick/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert saves a new history entry and evicts the oldest entries so the
// total count never exceeds limit. Insertion and eviction run in one
// transaction; no intermediate state above the limit is observable.
// A limit of zero or below disables eviction.
func (r *Repository) Insert(entry *entities.ColorHistoryEntry, limit int) error {
	if entry.CapturedAt.IsZero() {
		entry.CapturedAt = time.Now()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if limit <= 0 {
			return nil
		}
		return trim(tx, limit)
	})
}

// List retrieves history entries ordered by most recent first.
// A limit of zero or below returns all entries.
func (r *Repository) List(limit int) ([]entities.ColorHistoryEntry, error) {
	var entries []entities.ColorHistoryEntry
	query := r.db.Order("captured_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entries).Error
	return entries, err
}

// Count returns the total number of stored entries.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.ColorHistoryEntry{}).Count(&count).Error
	return count, err
}

// Clear deletes all history entries unconditionally.
func (r *Repository) Clear() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entities.ColorHistoryEntry{}).Error
}

// Trim re-applies the capacity limit, evicting the oldest entries.
// Returns the number of evicted entries.
func (r *Repository) Trim(limit int) (int64, error) {
	if limit <= 0 {
		return 0, nil
	}
	var evicted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.ColorHistoryEntry{}).Count(&count).Error; err != nil {
			return err
		}
		evicted = count - int64(limit)
		if evicted <= 0 {
			evicted = 0
			return nil
		}
		return trim(tx, limit)
	})
	return evicted, err
}

// trim deletes the oldest entries beyond limit within the given transaction.
func trim(tx *gorm.DB, limit int) error {
	var count int64
	if err := tx.Model(&entities.ColorHistoryEntry{}).Count(&count).Error; err != nil {
		return err
	}
	excess := count - int64(limit)
	if excess <= 0 {
		return nil
	}

	var ids []uint
	err := tx.Model(&entities.ColorHistoryEntry{}).
		Order("captured_at ASC, id ASC").
		Limit(int(excess)).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	return tx.Delete(&entities.ColorHistoryEntry{}, ids).Error
}
