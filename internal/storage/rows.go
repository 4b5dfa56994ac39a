package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/utils"
)

// EntryColumns is the column list every entry query selects, in EntryRow scan order.
const EntryColumns = "id, day, text, satisfaction_score, created_at, updated_at, is_edited"

// EntryRow is an entry in its stored representation
type EntryRow struct {
	ID                string
	Day               sql.NullString
	Text              string
	SatisfactionScore int
	CreatedAt         string
	UpdatedAt         sql.NullString
	IsEdited          bool
}

// NewEntryRow encodes an entry for storage.
func NewEntryRow(e models.Entry) EntryRow {
	row := EntryRow{
		ID:                e.ID,
		Day:               FormatDay(e.Date),
		Text:              e.Text,
		SatisfactionScore: e.SatisfactionScore,
		CreatedAt:         FormatTimestamp(e.CreatedAt),
		IsEdited:          e.IsEdited,
	}
	if e.UpdatedAt != nil {
		row.UpdatedAt = sql.NullString{String: FormatTimestamp(*e.UpdatedAt), Valid: true}
	}
	return row
}

// ScanDest returns pointers for Scan in EntryColumns order.
func (r *EntryRow) ScanDest() []interface{} {
	return []interface{}{&r.ID, &r.Day, &r.Text, &r.SatisfactionScore, &r.CreatedAt, &r.UpdatedAt, &r.IsEdited}
}

// Entry decodes the row, reading the day into loc.
func (r EntryRow) Entry(loc *time.Location) (models.Entry, error) {
	e := models.Entry{
		ID:                r.ID,
		Text:              r.Text,
		SatisfactionScore: r.SatisfactionScore,
		IsEdited:          r.IsEdited,
	}

	var err error
	if r.Day.Valid && r.Day.String != "" {
		e.Date, err = utils.ParseDateInLocation(r.Day.String, loc)
		if err != nil {
			return models.Entry{}, fmt.Errorf("failed to parse day for entry %s: %w", r.ID, err)
		}
	}
	e.CreatedAt, err = ParseTimestamp(r.CreatedAt, loc)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse created_at for entry %s: %w", r.ID, err)
	}
	if r.UpdatedAt.Valid {
		t, err := ParseTimestamp(r.UpdatedAt.String, loc)
		if err != nil {
			return models.Entry{}, fmt.Errorf("failed to parse updated_at for entry %s: %w", r.ID, err)
		}
		e.UpdatedAt = &t
	}
	return e, nil
}

// FormatDay encodes a calendar day as YYYY-MM-DD, or NULL for a dateless entry.
func FormatDay(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: utils.DayKey(t), Valid: true}
}

// FormatTimestamp encodes an instant as RFC3339 with sub-second precision.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTimestamp decodes a stored instant into loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t, nil
}

// BadgeRow decodes a stored badge.
func BadgeRow(id, badgeType, earnedAt string, loc *time.Location) (models.Badge, error) {
	t, err := ParseTimestamp(earnedAt, loc)
	if err != nil {
		return models.Badge{}, fmt.Errorf("failed to parse earned_at for badge %s: %w", id, err)
	}
	return models.Badge{ID: id, Type: models.BadgeType(badgeType), EarnedAt: t}, nil
}
