package badges

import (
	"time"

	"github.com/julianstephens/microdiary/internal/models"
)

// Evaluate returns the catalog types whose condition holds and that are not yet earned.
// It has no side effects.
func Evaluate(streak, total int, earned map[models.BadgeType]bool) []models.BadgeType {
	var awards []models.BadgeType
	for _, d := range Catalog {
		if earned[d.Type] {
			continue
		}
		if d.Met(streak, total) {
			awards = append(awards, d.Type)
		}
	}
	return awards
}

// EarnedSet indexes badge records by type.
func EarnedSet(badges []models.Badge) map[models.BadgeType]bool {
	set := make(map[models.BadgeType]bool, len(badges))
	for _, b := range badges {
		set[b.Type] = true
	}
	return set
}

// Status joins a catalog definition with its earned record, if any
type Status struct {
	Definition
	Earned   bool
	EarnedAt time.Time
	Progress float64
}

// Statuses returns one status per catalog entry, in catalog order.
func Statuses(earned []models.Badge, streak, total int) []Status {
	byType := make(map[models.BadgeType]models.Badge, len(earned))
	for _, b := range earned {
		if prev, ok := byType[b.Type]; ok && !b.EarnedAt.Before(prev.EarnedAt) {
			continue
		}
		byType[b.Type] = b
	}

	statuses := make([]Status, 0, len(Catalog))
	for _, d := range Catalog {
		s := Status{Definition: d, Progress: d.Progress(streak, total)}
		if b, ok := byType[d.Type]; ok {
			s.Earned = true
			s.EarnedAt = b.EarnedAt
			s.Progress = 1
		}
		statuses = append(statuses, s)
	}
	return statuses
}
