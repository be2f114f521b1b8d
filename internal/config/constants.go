package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./huepick.db"

	// DefaultHotkeyCombo is the global capture hotkey used when none is configured
	DefaultHotkeyCombo = "ctrl+alt+p"
)
