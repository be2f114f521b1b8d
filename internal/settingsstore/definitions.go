package settingsstore

import (
	"sort"

	"github.com/nlfmt/huepick/internal/entities"
)

// Kind is the declared value type of a setting key.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindString
)

// Definition declares a recognized setting key: its value kind, its
// default, and the constraints a write must satisfy.
type Definition struct {
	Key     string
	Kind    Kind
	Default string
	Min     int      // KindInt only
	Max     int      // KindInt only
	Allowed []string // KindString only; empty means any string
}

// MaxHistoryCeiling bounds max_history_records so a typo cannot make
// the history table grow unbounded.
const MaxHistoryCeiling = 500

// Available theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeAuto  = "auto"
)

var definitions = map[string]Definition{
	entities.SettingKeyTheme: {
		Key:     entities.SettingKeyTheme,
		Kind:    KindString,
		Default: ThemeDark,
		Allowed: []string{ThemeDark, ThemeLight, ThemeAuto},
	},
	entities.SettingKeyUseAlpha: {
		Key:     entities.SettingKeyUseAlpha,
		Kind:    KindBool,
		Default: "false",
	},
	entities.SettingKeyAlwaysOnTop: {
		Key:     entities.SettingKeyAlwaysOnTop,
		Kind:    KindBool,
		Default: "false",
	},
	entities.SettingKeyAutoCopy: {
		Key:     entities.SettingKeyAutoCopy,
		Kind:    KindBool,
		Default: "true",
	},
	entities.SettingKeyShowNotifications: {
		Key:     entities.SettingKeyShowNotifications,
		Kind:    KindBool,
		Default: "true",
	},
	entities.SettingKeyScreenPickerEnabled: {
		Key:     entities.SettingKeyScreenPickerEnabled,
		Kind:    KindBool,
		Default: "true",
	},
	entities.SettingKeyCrosshairEnabled: {
		Key:     entities.SettingKeyCrosshairEnabled,
		Kind:    KindBool,
		Default: "true",
	},
	entities.SettingKeyMagnifierEnabled: {
		Key:     entities.SettingKeyMagnifierEnabled,
		Kind:    KindBool,
		Default: "true",
	},
	entities.SettingKeySaveHistory: {
		Key:     entities.SettingKeySaveHistory,
		Kind:    KindBool,
		Default: "true",
	},
	entities.SettingKeyMaxHistoryRecords: {
		Key:     entities.SettingKeyMaxHistoryRecords,
		Kind:    KindInt,
		Default: "20",
		Min:     1,
		Max:     MaxHistoryCeiling,
	},
	entities.SettingKeyAutoSaveHistory: {
		Key:     entities.SettingKeyAutoSaveHistory,
		Kind:    KindBool,
		Default: "true",
	},
}

// Keys returns all recognized setting keys in stable order.
func Keys() []string {
	keys := make([]string, 0, len(definitions))
	for key := range definitions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the definition for a key, if recognized.
func Lookup(key string) (Definition, bool) {
	def, ok := definitions[key]
	return def, ok
}
