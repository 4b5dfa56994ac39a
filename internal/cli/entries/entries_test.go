package entries

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/microdiary/internal/access"
	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/journal"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/storage/sqlite"
	"github.com/julianstephens/microdiary/internal/utils"
)

var testNow = time.Date(2025, 3, 15, 18, 45, 0, 0, time.UTC)

func setupTestDB(t *testing.T, premium bool) (*cli.Context, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := &cli.Context{
		Store:       store,
		Clock:       utils.FixedClock{T: testNow},
		Entitlement: access.Static(premium),
	}
	if err := ctx.Setup(); err != nil {
		t.Fatalf("failed to set up context: %v", err)
	}
	return ctx, store
}

func pastEntry(id string, daysAgo, score int, text string) models.Entry {
	date := utils.AddDays(utils.StartOfDay(testNow), -daysAgo)
	return models.Entry{
		ID:                id,
		Date:              date,
		Text:              text,
		SatisfactionScore: score,
		CreatedAt:         date.Add(21 * time.Hour),
	}
}

func TestWriteCmd(t *testing.T) {
	ctx, store := setupTestDB(t, false)

	if err := (&WriteCmd{Text: "first entry", Score: 72}).Run(ctx); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	entries, err := store.GetAllEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "first entry" || entries[0].SatisfactionScore != 72 {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
	if !utils.IsSameDay(entries[0].Date, testNow) {
		t.Errorf("entry date = %v, want today", entries[0].Date)
	}

	if err := (&WriteCmd{Text: "second", Score: 50}).Run(ctx); !errors.Is(err, journal.ErrEntryExists) {
		t.Errorf("writing twice on one day: error = %v, want ErrEntryExists", err)
	}
}

func TestWriteCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		score int
	}{
		{"text too long", strings.Repeat("a", 101), 50},
		{"score too high", "fine", 101},
		{"score negative", "fine", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, store := setupTestDB(t, false)
			if err := (&WriteCmd{Text: tt.text, Score: tt.score}).Run(ctx); err == nil {
				t.Error("expected validation error")
			}
			entries, _ := store.GetAllEntries()
			if len(entries) != 0 {
				t.Errorf("invalid input should not be saved, got %d entries", len(entries))
			}
		})
	}
}

func TestEditCmd_Today(t *testing.T) {
	ctx, store := setupTestDB(t, false)
	if err := (&WriteCmd{Text: "draft", Score: 40}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	text := "final"
	if err := (&EditCmd{Text: &text}).Run(ctx); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	entries, err := store.GetAllEntries()
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Text != "final" || entries[0].SatisfactionScore != 40 {
		t.Errorf("unexpected entry after edit: %+v", entries[0])
	}
	if !entries[0].IsEdited {
		t.Error("expected entry to be marked edited")
	}
}

func TestEditCmd_NothingToChange(t *testing.T) {
	ctx, _ := setupTestDB(t, false)
	if err := (&WriteCmd{Text: "draft", Score: 40}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	// Tests never run with a terminal on stdin
	if err := (&EditCmd{}).Run(ctx); err == nil {
		t.Error("expected error without --text or --score")
	}
}

func TestEditCmd_NoEntryToday(t *testing.T) {
	ctx, _ := setupTestDB(t, false)
	score := 10
	if err := (&EditCmd{Score: &score}).Run(ctx); err == nil {
		t.Error("expected error when today has no entry")
	}
}

func TestEditCmd_PastEntry(t *testing.T) {
	tests := []struct {
		name    string
		premium bool
		wantErr bool
	}{
		{"premium", true, false},
		{"free", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, store := setupTestDB(t, tt.premium)
			if err := store.AddEntry(pastEntry("old", 5, 30, "old text")); err != nil {
				t.Fatal(err)
			}

			score := 90
			err := (&EditCmd{ID: "old", Score: &score}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("edit error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, journal.ErrNotEditable) {
				t.Errorf("expected ErrNotEditable, got %v", err)
			}

			got, err := store.GetEntry("old")
			if err != nil {
				t.Fatal(err)
			}
			want := 30
			if !tt.wantErr {
				want = 90
			}
			if got.SatisfactionScore != want {
				t.Errorf("score = %d, want %d", got.SatisfactionScore, want)
			}
		})
	}
}

func TestEditCmd_UnknownID(t *testing.T) {
	ctx, _ := setupTestDB(t, true)
	score := 10
	if err := (&EditCmd{ID: "nope", Score: &score}).Run(ctx); !errors.Is(err, journal.ErrEntryNotFound) {
		t.Errorf("unknown ID: error = %v, want ErrEntryNotFound", err)
	}
}

func TestShowCmd(t *testing.T) {
	ctx, store := setupTestDB(t, false)
	if err := store.AddEntry(pastEntry("ly", 365, 60, "a year back")); err != nil {
		t.Fatal(err)
	}
	if err := store.AddEntry(pastEntry("now", 0, 80, "today")); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"today", "today", false},
		{"explicit date", "2024-03-15", false},
		{"empty day", "2025-01-01", false},
		{"bad date", "15/03/2025", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&ShowCmd{Date: tt.date}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("show error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestListCmd(t *testing.T) {
	setup := func(t *testing.T, premium bool) *cli.Context {
		ctx, store := setupTestDB(t, premium)
		for i, text := range []string{"coffee with Sam", "long walk", "more coffee"} {
			if err := store.AddEntry(pastEntry(text, i+1, 30*i, text)); err != nil {
				t.Fatal(err)
			}
		}
		return ctx
	}

	tests := []struct {
		name    string
		premium bool
		cmd     ListCmd
		wantErr bool
	}{
		{"date order is free", false, ListCmd{Sort: "date-desc"}, false},
		{"oldest first is free", false, ListCmd{Sort: "date-asc", Limit: 1, IDs: true}, false},
		{"search needs premium", false, ListCmd{Query: "coffee", Sort: "date-desc"}, true},
		{"score sort needs premium", false, ListCmd{Sort: "score-desc"}, true},
		{"premium search", true, ListCmd{Query: "COFFEE", Sort: "score-asc"}, false},
		{"no matches", true, ListCmd{Query: "tea", Sort: "date-desc"}, false},
		{"unknown sort", true, ListCmd{Sort: "random"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setup(t, tt.premium)
			cmd := tt.cmd
			err := cmd.Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("list error = %v, wantErr %v", err, tt.wantErr)
			}
			if gated := strings.HasSuffix(tt.name, "needs premium"); gated != errors.Is(err, journal.ErrPremiumRequired) {
				t.Errorf("list error = %v, premium gate expected %v", err, gated)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	if got := remaining("héllo"); got != 95 {
		t.Errorf("remaining = %d, want 95", got)
	}
}
