package constants

const (
	SettingTimezone        = "timezone"
	SettingDefaultLookback = "default_lookback_days"
	SettingDefaultRange    = "default_range_days"
	SettingAutoBackup      = "auto_backup"

	DefaultTimezone     = "Local" // Use system local timezone by default
	DefaultLookbackDays = 365
	DefaultRangeDays    = 30
	DefaultAutoBackup   = true
)
