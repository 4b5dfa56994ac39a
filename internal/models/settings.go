package models

import (
	"fmt"

	"github.com/julianstephens/microdiary/internal/constants"
)

// Settings represents application-wide settings
type Settings struct {
	Timezone            string `json:"timezone"`              // IANA timezone name (e.g. "Asia/Tokyo", or "Local" for system timezone)
	DefaultLookbackDays int    `json:"default_lookback_days"` // period used by "lookback" when none is given
	DefaultRangeDays    int    `json:"default_range_days"`    // period used by "stats" when none is given
	AutoBackup          bool   `json:"auto_backup"`           // back up the SQLite database after writes
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingDefaultLookback:
			if _, err := fmt.Sscanf(value, "%d", &settings.DefaultLookbackDays); err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
		case constants.SettingDefaultRange:
			if _, err := fmt.Sscanf(value, "%d", &settings.DefaultRangeDays); err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
		case constants.SettingAutoBackup:
			settings.AutoBackup = value == "true"
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:        settings.Timezone,
		constants.SettingDefaultLookback: fmt.Sprintf("%d", settings.DefaultLookbackDays),
		constants.SettingDefaultRange:    fmt.Sprintf("%d", settings.DefaultRangeDays),
		constants.SettingAutoBackup:      fmt.Sprintf("%v", settings.AutoBackup),
	}
}

// DefaultSettings returns the settings a freshly initialized store starts with.
func DefaultSettings() Settings {
	return Settings{
		Timezone:            constants.DefaultTimezone,
		DefaultLookbackDays: constants.DefaultLookbackDays,
		DefaultRangeDays:    constants.DefaultRangeDays,
		AutoBackup:          constants.DefaultAutoBackup,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.DefaultLookbackDays <= 0 {
		settings.DefaultLookbackDays = constants.DefaultLookbackDays
	}
	if settings.DefaultRangeDays <= 0 {
		settings.DefaultRangeDays = constants.DefaultRangeDays
	}
}
