package streak

import (
	"sort"
	"time"

	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/utils"
)

// Summary bundles the streak figures shown alongside the diary
type Summary struct {
	Current      int
	Longest      int
	Total        int       // all entries, dated or not
	DaysRecorded int       // distinct calendar days with at least one entry
	LastEntryDay time.Time // zero when there are no dated entries
}

// dayIndex maps YYYY-MM-DD keys to presence. Dateless entries are skipped.
type dayIndex map[string]struct{}

func index(entries []models.Entry) dayIndex {
	days := make(dayIndex, len(entries))
	for _, e := range entries {
		if !e.HasDate() {
			continue
		}
		days[utils.DayKey(e.Date)] = struct{}{}
	}
	return days
}

func (d dayIndex) has(t time.Time) bool {
	_, ok := d[utils.DayKey(t)]
	return ok
}

// Current returns the number of consecutive covered days ending today, or ending
// yesterday when today has no entry yet.
func Current(entries []models.Entry, now time.Time) int {
	return currentRun(index(entries), now)
}

func currentRun(days dayIndex, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	cursor := utils.StartOfDay(now)
	if !days.has(cursor) {
		cursor = utils.AddDays(cursor, -1)
	}

	count := 0
	for days.has(cursor) {
		count++
		cursor = utils.AddDays(cursor, -1)
	}
	return count
}

// Longest returns the longest run of consecutive covered days anywhere in history.
func Longest(entries []models.Entry) int {
	return longestRun(distinctDays(entries))
}

// longestRun expects distinct days in ascending order.
func longestRun(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if utils.DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// Summarize computes every streak figure from a single scan of the entries.
func Summarize(entries []models.Entry, now time.Time) Summary {
	days := distinctDays(entries)
	covered := make(dayIndex, len(days))
	for _, d := range days {
		covered[utils.DayKey(d)] = struct{}{}
	}

	s := Summary{
		Current:      currentRun(covered, now),
		Longest:      longestRun(days),
		Total:        len(entries),
		DaysRecorded: len(days),
	}
	if len(days) > 0 {
		s.LastEntryDay = days[len(days)-1]
	}
	return s
}

// distinctDays returns each covered calendar day once, ascending.
// Days are rebuilt in UTC from their wall date so entries saved in different zones compare cleanly.
func distinctDays(entries []models.Entry) []time.Time {
	seen := make(map[string]struct{}, len(entries))
	var days []time.Time
	for _, e := range entries {
		if !e.HasDate() {
			continue
		}
		key := utils.DayKey(e.Date)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		y, m, d := e.Date.Date()
		days = append(days, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}
