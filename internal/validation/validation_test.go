package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/microdiary/internal/constants"
	"github.com/julianstephens/microdiary/internal/models"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"normal", "Good day", nil},
		{"empty", "", ErrEmptyText},
		{"whitespace", "  \n ", ErrEmptyText},
		{"exactly max", strings.Repeat("a", 100), nil},
		{"over max", strings.Repeat("a", 101), ErrTextTooLong},
		{"multibyte at max", strings.Repeat("日", 100), nil},
		{"multibyte over max", strings.Repeat("日", 101), ErrTextTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.text)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateScore(t *testing.T) {
	for _, score := range []int{0, 50, 100} {
		if err := ValidateScore(score); err != nil {
			t.Errorf("score %d: unexpected error %v", score, err)
		}
	}
	for _, score := range []int{-1, 101} {
		if err := ValidateScore(score); !errors.Is(err, ErrScoreOutOfRange) {
			t.Errorf("score %d: expected ErrScoreOutOfRange, got %v", score, err)
		}
	}
}

func TestValidateEntryInput(t *testing.T) {
	if err := ValidateEntryInput("", 50); !errors.Is(err, ErrEmptyText) {
		t.Errorf("expected text error first, got %v", err)
	}
	if err := ValidateEntryInput("ok", 150); !errors.Is(err, ErrScoreOutOfRange) {
		t.Errorf("expected score error, got %v", err)
	}
	if err := ValidateEntryInput("ok", 75); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func countType(result ValidationResult, ct constants.ConflictType) int {
	n := 0
	for _, c := range result.Conflicts {
		if c.Type == ct {
			n++
		}
	}
	return n
}

func TestValidateEntries(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC) }
	entries := []models.Entry{
		{ID: "a", Date: day(1), Text: "one", SatisfactionScore: 50},
		{ID: "b", Date: day(1), Text: "two", SatisfactionScore: 60},
		{ID: "c", Date: day(2), Text: strings.Repeat("x", 120), SatisfactionScore: 70},
		{ID: "d", Text: "no date", SatisfactionScore: 40},
		{ID: "e", Date: day(3), Text: "bad score", SatisfactionScore: 140},
	}

	result := New().ValidateEntries(entries)
	if !result.HasConflicts() {
		t.Fatal("expected conflicts")
	}
	if n := countType(result, constants.ConflictDuplicateDay); n != 1 {
		t.Errorf("expected 1 duplicate-day conflict, got %d", n)
	}
	if n := countType(result, constants.ConflictMissingDate); n != 1 {
		t.Errorf("expected 1 missing-date conflict, got %d", n)
	}
	if n := countType(result, constants.ConflictTextTooLong); n != 1 {
		t.Errorf("expected 1 text-too-long conflict, got %d", n)
	}
	if n := countType(result, constants.ConflictScoreOutOfRange); n != 1 {
		t.Errorf("expected 1 score conflict, got %d", n)
	}

	for _, c := range result.Conflicts {
		if c.Type == constants.ConflictDuplicateDay {
			if c.Date != "2025-05-01" || len(c.EntryIDs) != 2 || c.EntryIDs[0] != "a" {
				t.Errorf("unexpected duplicate conflict %+v", c)
			}
		}
	}

	report := result.FormatReport()
	if !strings.HasPrefix(report, "Conflicts detected:") {
		t.Errorf("unexpected report: %s", report)
	}
}

func TestValidateEntriesClean(t *testing.T) {
	entries := []models.Entry{
		{ID: "a", Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Text: "fine", SatisfactionScore: 10},
		{ID: "b", Date: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), Text: "fine", SatisfactionScore: 90},
	}
	result := New().ValidateEntries(entries)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got %+v", result.Conflicts)
	}
	if result.FormatReport() != "No conflicts detected." {
		t.Errorf("unexpected report: %s", result.FormatReport())
	}
}

func TestValidateBadges(t *testing.T) {
	badges := []models.Badge{
		{ID: "1", Type: models.Badge7Days},
		{ID: "2", Type: models.BadgeTotal50},
		{ID: "3", Type: models.Badge7Days},
	}
	result := New().ValidateBadges(badges)
	if len(result.Conflicts) != 1 || result.Conflicts[0].Type != constants.ConflictDuplicateBadge {
		t.Errorf("expected one duplicate badge conflict, got %+v", result.Conflicts)
	}
}
