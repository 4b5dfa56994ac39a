package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/utils"
)

var now = time.Date(2025, 3, 15, 18, 45, 0, 0, time.UTC)

func entryOn(id string, offset, score int) models.Entry {
	return models.Entry{
		ID:                id,
		Date:              utils.AddDays(now, offset),
		Text:              "note " + id,
		SatisfactionScore: score,
	}
}

func TestPointLookback(t *testing.T) {
	entries := []models.Entry{
		entryOn("today", 0, 70),
		entryOn("yesterday", -1, 40),
		entryOn("week", -7, 90),
		entryOn("year", -365, 10),
		{ID: "dateless", SatisfactionScore: 5},
	}

	tests := []struct {
		days   int
		wantID string
	}{
		{1, "yesterday"},
		{3, ""},
		{7, "week"},
		{365, "year"},
		{0, "today"},
		{-1, ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d days", tt.days), func(t *testing.T) {
			got, ok := PointLookback(now, tt.days, entries)
			if tt.wantID == "" {
				if ok {
					t.Errorf("expected no entry, got %s", got.ID)
				}
				return
			}
			if !ok || got.ID != tt.wantID {
				t.Errorf("PointLookback(%d) = %q (found=%v), want %q", tt.days, got.ID, ok, tt.wantID)
			}
		})
	}
}

func TestPointLookbackFirstMatchWins(t *testing.T) {
	entries := []models.Entry{
		entryOn("first", -3, 10),
		entryOn("second", -3, 20),
	}
	got, ok := PointLookback(now, 3, entries)
	if !ok || got.ID != "first" {
		t.Errorf("expected first entry by arrival order, got %q", got.ID)
	}
}

func TestPointLookbackLeapYear(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		{ID: "calendar", Date: time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "anniversary", Date: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	got, ok := PointLookback(at, 365, entries)
	if !ok || got.ID != "calendar" {
		t.Errorf("expected 365 calendar days back to land on 2023-03-02, got %q", got.ID)
	}
}

func TestRangeAverage(t *testing.T) {
	entries := []models.Entry{
		entryOn("a", 0, 10),
		entryOn("b", -1, 20),
		entryOn("c", -2, 30),
		entryOn("outside", -3, 100),
	}

	s := Range(now, 3, entries)
	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if s.Average != 20.0 {
		t.Errorf("Average = %v, want 20", s.Average)
	}
	if utils.DayKey(s.Start) != "2025-03-13" || utils.DayKey(s.End) != "2025-03-15" {
		t.Errorf("window = %s..%s", utils.DayKey(s.Start), utils.DayKey(s.End))
	}
	if len(s.Series) != 3 || s.DaysRecorded != 3 {
		t.Fatalf("expected 3 recorded points, got %d/%d", s.DaysRecorded, len(s.Series))
	}
	wantScores := []int{30, 20, 10}
	for i, p := range s.Series {
		if !p.HasEntry || p.Score != wantScores[i] {
			t.Errorf("Series[%d] = %+v, want score %d", i, p, wantScores[i])
		}
	}
}

func TestRangeEmpty(t *testing.T) {
	for _, days := range []int{7, 30, 90, 365} {
		s := Range(now, days, []models.Entry{entryOn("old", -400, 50)})
		if s.Count != 0 || s.Average != 0 {
			t.Errorf("%d days: expected zero stats, got count=%d avg=%v", days, s.Count, s.Average)
		}
		if len(s.Series) != days {
			t.Errorf("%d days: series length %d", days, len(s.Series))
		}
		for _, p := range s.Series {
			if p.HasEntry || p.Score != 0 {
				t.Errorf("%d days: unexpected point %+v", days, p)
				break
			}
		}
	}

	if s := Range(now, 7, nil); s.Count != 0 || len(s.Series) != 7 {
		t.Errorf("nil entries: count=%d series=%d", s.Count, len(s.Series))
	}
}

func TestRangeSeriesShape(t *testing.T) {
	entries := []models.Entry{
		entryOn("dup-first", -2, 60),
		entryOn("dup-second", -2, 80),
		entryOn("today", 0, 0),
		{ID: "dateless", SatisfactionScore: 100},
	}

	s := Range(now, 30, entries)
	if len(s.Series) != 30 {
		t.Fatalf("series length %d, want 30", len(s.Series))
	}
	seen := map[string]bool{}
	for i, p := range s.Series {
		key := utils.DayKey(p.Date)
		if seen[key] {
			t.Errorf("duplicate day %s in series", key)
		}
		seen[key] = true
		if i > 0 && utils.DaysBetween(s.Series[i-1].Date, p.Date) != 1 {
			t.Errorf("series not consecutive at %d", i)
		}
	}

	dup := s.Series[27]
	if utils.DayKey(dup.Date) != "2025-03-13" || !dup.HasEntry || dup.Score != 60 {
		t.Errorf("expected first duplicate to win, got %+v", dup)
	}
	last := s.Series[29]
	if !last.HasEntry || last.Score != 0 {
		t.Errorf("expected zero-score entry to be distinguished from a gap, got %+v", last)
	}
	if s.Count != 3 {
		t.Errorf("Count = %d, want 3 (duplicates included, dateless excluded)", s.Count)
	}
	if s.Average != float64(60+80+0)/3 {
		t.Errorf("Average = %v", s.Average)
	}
	if s.DaysRecorded != 2 {
		t.Errorf("DaysRecorded = %d, want 2", s.DaysRecorded)
	}
}

func TestRangeOrderIndependent(t *testing.T) {
	entries := []models.Entry{
		entryOn("a", 0, 12),
		entryOn("b", -4, 57),
		entryOn("c", -6, 91),
	}
	reversed := []models.Entry{entries[2], entries[1], entries[0]}

	a := Range(now, 7, entries)
	b := Range(now, 7, reversed)
	if a.Count != b.Count || a.Average != b.Average {
		t.Errorf("stats differ by input order: %+v vs %+v", a, b)
	}
	for i := range a.Series {
		if a.Series[i] != b.Series[i] {
			t.Errorf("series differs at %d", i)
		}
	}
}

func TestRangeInvalidDays(t *testing.T) {
	for _, days := range []int{0, -5} {
		s := Range(now, days, []models.Entry{entryOn("a", 0, 50)})
		if s.Count != 0 || len(s.Series) != 0 {
			t.Errorf("Range(%d) = %+v, want empty", days, s)
		}
	}
}

func TestRangeAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data not available: %v", err)
	}
	at := time.Date(2024, 3, 12, 8, 0, 0, 0, ny)
	entries := []models.Entry{
		{ID: "dst", Date: time.Date(2024, 3, 10, 0, 0, 0, 0, ny), SatisfactionScore: 40},
	}
	s := Range(at, 7, entries)
	if len(s.Series) != 7 {
		t.Fatalf("series length %d", len(s.Series))
	}
	for _, p := range s.Series {
		if p.Date.Hour() != 0 {
			t.Errorf("point %v not at midnight", p.Date)
		}
	}
	if !s.Series[4].HasEntry || utils.DayKey(s.Series[4].Date) != "2024-03-10" {
		t.Errorf("expected DST day to be present, got %+v", s.Series[4])
	}
}
