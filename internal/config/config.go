package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Hotkey
		Window
		History
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Hotkey struct {
		Enabled bool
		Combo   string // e.g. "ctrl+alt+p"
	}
	Window struct {
		SaveDebounce time.Duration // quiet period before geometry is persisted
	}
	History struct {
		PruneSchedule string // cron format, re-applies the history cap
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8456)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("hotkey_enabled", true)
	v.SetDefault("hotkey_combo", DefaultHotkeyCombo)
	v.SetDefault("window_save_debounce", "300ms")
	v.SetDefault("history_prune_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Hotkey: Hotkey{
			Enabled: v.GetBool("HOTKEY_ENABLED"),
			Combo:   v.GetString("HOTKEY_COMBO"),
		},
		Window: Window{
			SaveDebounce: v.GetDuration("WINDOW_SAVE_DEBOUNCE"),
		},
		History: History{
			PruneSchedule: v.GetString("HISTORY_PRUNE_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
