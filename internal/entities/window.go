package entities

import "time"

// WindowState is the last known window geometry. The table holds a
// single row that is overwritten on every persisted move or resize.
type WindowState struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	AlwaysOnTop bool      `json:"always_on_top"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (WindowState) TableName() string {
	return "window_state"
}
