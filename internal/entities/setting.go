package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// Appearance
	SettingKeyTheme    = "theme"
	SettingKeyUseAlpha = "use_alpha"

	// Window behavior
	SettingKeyAlwaysOnTop = "always_on_top"

	// Capture behavior
	SettingKeyAutoCopy            = "auto_copy"
	SettingKeyShowNotifications   = "show_notifications"
	SettingKeyScreenPickerEnabled = "screen_picker_enabled"
	SettingKeyCrosshairEnabled    = "crosshair_enabled"
	SettingKeyMagnifierEnabled    = "magnifier_enabled"

	// History
	SettingKeySaveHistory       = "save_history"
	SettingKeyMaxHistoryRecords = "max_history_records"
	SettingKeyAutoSaveHistory   = "auto_save_history"
)
