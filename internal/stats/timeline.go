package stats

import (
	"sort"
	"time"

	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/utils"
)

// MonthGroup is one calendar month of the timeline
type MonthGroup struct {
	Key     string // YYYY-MM
	Month   time.Time
	Entries []models.Entry // newest first
}

// GroupByMonth buckets dated entries by month, newest month first.
func GroupByMonth(entries []models.Entry) []MonthGroup {
	byKey := make(map[string]*MonthGroup)
	var groups []*MonthGroup
	for _, e := range entries {
		if !e.HasDate() {
			continue
		}
		key := utils.MonthKey(e.Date)
		g, ok := byKey[key]
		if !ok {
			y, m, _ := e.Date.Date()
			g = &MonthGroup{Key: key, Month: time.Date(y, m, 1, 0, 0, 0, 0, e.Date.Location())}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.Entries = append(g.Entries, e)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key > groups[j].Key
	})

	result := make([]MonthGroup, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g.Entries, func(i, j int) bool {
			return utils.DayKey(g.Entries[i].Date) > utils.DayKey(g.Entries[j].Date)
		})
		result = append(result, *g)
	}
	return result
}

// SameDayLastYear returns the entry written on the same calendar day one year before day.
func SameDayLastYear(day time.Time, entries []models.Entry) (models.Entry, bool) {
	if day.IsZero() {
		return models.Entry{}, false
	}
	return ForDay(utils.AddYears(day, -1), entries)
}
