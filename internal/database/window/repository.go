// Package window provides database operations for the singleton
// window geometry row.
package window

import (
	"gorm.io/gorm"

	"github.com/nlfmt/huepick/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Load returns the persisted window state.
// Returns gorm.ErrRecordNotFound when no geometry has been saved yet.
func (r *Repository) Load() (*entities.WindowState, error) {
	var state entities.WindowState
	err := r.db.First(&state).Error
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Save overwrites the singleton row, creating it on first write.
func (r *Repository) Save(state entities.WindowState) error {
	var existing entities.WindowState
	result := r.db.First(&existing)

	if result.Error == gorm.ErrRecordNotFound {
		state.ID = 0
		return r.db.Create(&state).Error
	} else if result.Error != nil {
		return result.Error
	}

	state.ID = existing.ID
	return r.db.Save(&state).Error
}
