package constants

// SessionState represents the current state of the TUI application
type SessionState int

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	AppName            = "microdiary"
	DefaultKeyringUser = "database-connection"
	LicenseKeyringUser = "premium-license"
	DefaultConfigPath  = "~/.config/microdiary/microdiary.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat keys the timeline groups (YYYY-MM)
	MonthFormat = "2006-01"

	// Entry constraints
	MaxEntryTextLength  = 100
	MinSatisfaction     = 0
	MaxSatisfaction     = 100
	DefaultSatisfaction = 50

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "microdiary-"
	BackupFileSuffix = ".db"

	// Conflict Types
	ConflictDuplicateDay    ConflictType = "duplicate_day"
	ConflictMissingDate     ConflictType = "missing_date"
	ConflictScoreOutOfRange ConflictType = "score_out_of_range"
	ConflictTextTooLong     ConflictType = "text_too_long"
	ConflictDuplicateBadge  ConflictType = "duplicate_badge"
)

// Session States
const (
	StateToday SessionState = iota
	StateRecords
	StateBadges
	StateTimeline
	StateWriting
	StateEditing
	StateSearching
)

// TabCount is the number of top-level TUI tabs (StateToday through StateTimeline)
const TabCount = 4
