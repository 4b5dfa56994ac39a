package stats

import (
	"time"

	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/utils"
)

// Point is one calendar day of the dense satisfaction series
type Point struct {
	Date     time.Time
	Score    int // 0 when HasEntry is false
	HasEntry bool
}

// Summary holds range statistics over [Start, End]
type Summary struct {
	Days         int
	Start        time.Time
	End          time.Time
	Count        int     // matching entries, duplicates on one day included
	Average      float64 // mean satisfaction of matching entries, 0 when Count is 0
	DaysRecorded int     // series points with HasEntry
	Series       []Point // one point per day, ascending
}

// ForDay returns the first entry, in input order, dated on day's calendar day.
func ForDay(day time.Time, entries []models.Entry) (models.Entry, bool) {
	key := utils.DayKey(day)
	for _, e := range entries {
		if e.HasDate() && utils.DayKey(e.Date) == key {
			return e, true
		}
	}
	return models.Entry{}, false
}

// PointLookback returns the entry dated exactly days calendar days before now.
func PointLookback(now time.Time, days int, entries []models.Entry) (models.Entry, bool) {
	if days < 0 {
		return models.Entry{}, false
	}
	return ForDay(utils.AddDays(utils.StartOfDay(now), -days), entries)
}

// Range computes statistics for the trailing window of days ending today.
// A window shorter than one day yields an empty summary.
func Range(now time.Time, days int, entries []models.Entry) Summary {
	if days < 1 {
		return Summary{}
	}

	end := utils.StartOfDay(now)
	start := utils.AddDays(end, -(days - 1))
	s := Summary{Days: days, Start: start, End: end}

	first := make(map[string]models.Entry)
	sum := 0
	for _, e := range entries {
		if !e.HasDate() {
			continue
		}
		if utils.DaysBetween(start, e.Date) < 0 || utils.DaysBetween(e.Date, end) < 0 {
			continue
		}
		s.Count++
		sum += e.SatisfactionScore
		key := utils.DayKey(e.Date)
		if _, ok := first[key]; !ok {
			first[key] = e
		}
	}
	if s.Count > 0 {
		s.Average = float64(sum) / float64(s.Count)
	}

	s.Series = make([]Point, 0, days)
	for i := 0; i < days; i++ {
		day := utils.AddDays(start, i)
		p := Point{Date: day}
		if e, ok := first[utils.DayKey(day)]; ok {
			p.Score = e.SatisfactionScore
			p.HasEntry = true
			s.DaysRecorded++
		}
		s.Series = append(s.Series, p)
	}
	return s
}
