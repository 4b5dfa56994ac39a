package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/microdiary/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// Provider is the durable store for entries, badges and settings.
// Entries are never deleted. Queries return entries in arrival order.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Entries
	AddEntry(models.Entry) error
	GetEntry(id string) (models.Entry, error)
	GetEntriesForDay(day time.Time) ([]models.Entry, error)
	// GetEntriesInRange returns entries whose day falls in [start, end], inclusive.
	GetEntriesInRange(start, end time.Time) ([]models.Entry, error)
	GetAllEntries() ([]models.Entry, error)
	// UpdateEntry rewrites text, score and edit markers. Date and creation time are immutable
	// and is_edited never goes back to false.
	UpdateEntry(models.Entry) error

	// Badges
	GetAllBadges() ([]models.Badge, error)
	// AddBadge inserts a badge unless one of the same type exists, and reports whether it did.
	AddBadge(models.Badge) (bool, error)

	// SetLocation sets the timezone that stored days are read into.
	SetLocation(*time.Location)

	// Utils
	GetConfigPath() string
}

// SchemaInspector is implemented by stores backed by versioned migrations
type SchemaInspector interface {
	SchemaVersion() (current int, latest int, err error)
}
