package entities

import "time"

// ColorHistoryEntry is a single previously picked color. Entries are
// append-only and trimmed from the oldest end once the configured
// maximum is exceeded.
type ColorHistoryEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Color      string    `gorm:"size:12" json:"color"` // canonical #RRGGBB or #RRGGBBAA
	Source     string    `gorm:"size:50" json:"source,omitempty"`
	CapturedAt time.Time `gorm:"index" json:"captured_at"`
}

func (ColorHistoryEntry) TableName() string {
	return "color_history"
}

// Well-known capture sources.
const (
	CaptureSourceScreenPicker = "screen_picker"
	CaptureSourceColorDialog  = "color_dialog"
	CaptureSourceManual       = "manual"
)
