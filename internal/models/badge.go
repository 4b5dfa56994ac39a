package models

import "time"

// BadgeType is one of the fixed achievement codes
type BadgeType string

const (
	Badge7Days    BadgeType = "7days"
	Badge30Days   BadgeType = "30days"
	Badge100Days  BadgeType = "100days"
	BadgeTotal50  BadgeType = "total50"
	BadgeTotal100 BadgeType = "total100"
	BadgeTotal365 BadgeType = "total365"
)

// Badge records the moment an achievement was first earned
type Badge struct {
	ID       string    `json:"id"`
	Type     BadgeType `json:"type"`
	EarnedAt time.Time `json:"earned_at"`
}
