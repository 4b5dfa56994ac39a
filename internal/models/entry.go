package models

import "time"

// Entry is a single day's diary record
type Entry struct {
	ID                string     `json:"id"`
	Date              time.Time  `json:"date"` // midnight of the day the entry represents; zero means dateless
	Text              string     `json:"text"`
	SatisfactionScore int        `json:"satisfaction_score"` // 0-100
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
	IsEdited          bool       `json:"is_edited"`
}

// HasDate reports whether the entry carries a calendar day.
// Dateless entries never match any day.
func (e Entry) HasDate() bool {
	return !e.Date.IsZero()
}
