package stats

import (
	"testing"
	"time"

	"github.com/julianstephens/microdiary/internal/models"
)

func TestGroupByMonth(t *testing.T) {
	entries := []models.Entry{
		{ID: "feb-1", Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "mar-10", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "dec", Date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{ID: "feb-20", Date: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "dateless"},
	}

	groups := GroupByMonth(entries)
	wantKeys := []string{"2025-03", "2025-02", "2024-12"}
	if len(groups) != len(wantKeys) {
		t.Fatalf("expected %d groups, got %d", len(wantKeys), len(groups))
	}
	for i, key := range wantKeys {
		if groups[i].Key != key {
			t.Errorf("group %d = %s, want %s", i, groups[i].Key, key)
		}
	}

	feb := groups[1]
	if len(feb.Entries) != 2 || feb.Entries[0].ID != "feb-20" || feb.Entries[1].ID != "feb-1" {
		t.Errorf("expected February newest first, got %+v", feb.Entries)
	}
	if feb.Month.Day() != 1 || feb.Month.Month() != time.February {
		t.Errorf("unexpected month start %v", feb.Month)
	}

	if len(GroupByMonth(nil)) != 0 {
		t.Error("expected no groups for empty input")
	}
}

func TestSameDayLastYear(t *testing.T) {
	entries := []models.Entry{
		{ID: "last-year", Date: time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)},
		{ID: "leap", Date: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)},
	}

	got, ok := SameDayLastYear(time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), entries)
	if !ok || got.ID != "last-year" {
		t.Errorf("expected last-year entry, got %q", got.ID)
	}

	got, ok = SameDayLastYear(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), entries)
	if !ok || got.ID != "leap" {
		t.Errorf("expected Feb 29 to map to Feb 28, got %q", got.ID)
	}

	if _, ok := SameDayLastYear(time.Time{}, entries); ok {
		t.Error("expected dateless lookup to find nothing")
	}
}
