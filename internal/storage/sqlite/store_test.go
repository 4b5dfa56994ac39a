package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/microdiary/internal/constants"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	store.SetLocation(time.UTC)
	t.Cleanup(func() { store.Close() })
	return store
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newEntry(id string, date time.Time, score int) models.Entry {
	created := date.Add(20 * time.Hour)
	if date.IsZero() {
		created = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	return models.Entry{
		ID:                id,
		Date:              date,
		Text:              "entry " + id,
		SatisfactionScore: score,
		CreatedAt:         created,
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("expected error loading an uninitialized store")
	}
}

func TestInitSeedsDefaultSettings(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", settings.Timezone, constants.DefaultTimezone)
	}
	if settings.DefaultLookbackDays != constants.DefaultLookbackDays {
		t.Errorf("DefaultLookbackDays = %d, want %d", settings.DefaultLookbackDays, constants.DefaultLookbackDays)
	}
	if !settings.AutoBackup {
		t.Error("AutoBackup should default to true")
	}

	settings.Timezone = "Asia/Tokyo"
	settings.AutoBackup = false
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.Timezone != "Asia/Tokyo" || got.AutoBackup {
		t.Errorf("settings not persisted: %+v", got)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	store.Close()

	again := NewStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer again.Close()

	current, latest, err := again.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if current != latest {
		t.Errorf("schema version = %d, want %d", current, latest)
	}
}

func TestEntryRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	e := newEntry("a", day(2024, 3, 10), 80)
	if err := store.AddEntry(e); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	got, err := store.GetEntry("a")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if !got.Date.Equal(e.Date) {
		t.Errorf("Date = %v, want %v", got.Date, e.Date)
	}
	if got.Text != e.Text || got.SatisfactionScore != 80 {
		t.Errorf("entry mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(e.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, e.CreatedAt)
	}
	if got.UpdatedAt != nil || got.IsEdited {
		t.Errorf("new entry should not be marked edited: %+v", got)
	}
}

func TestDatelessEntry(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddEntry(newEntry("nodate", time.Time{}, 40)); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	got, err := store.GetEntry("nodate")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.HasDate() {
		t.Errorf("expected dateless entry, got %v", got.Date)
	}

	all, err := store.GetAllEntries()
	if err != nil {
		t.Fatalf("GetAllEntries failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("GetAllEntries returned %d entries, want 1", len(all))
	}
}

func TestGetEntryNotFound(t *testing.T) {
	store := setupTestStore(t)
	if _, err := store.GetEntry("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetEntry error = %v, want ErrNotFound", err)
	}
}

func TestEntriesKeepArrivalOrder(t *testing.T) {
	store := setupTestStore(t)

	// Same day twice: the store accepts both and returns them in insertion order
	for _, e := range []models.Entry{
		newEntry("second-day", day(2024, 3, 11), 10),
		newEntry("first", day(2024, 3, 10), 20),
		newEntry("dup", day(2024, 3, 10), 30),
	} {
		if err := store.AddEntry(e); err != nil {
			t.Fatalf("AddEntry(%s) failed: %v", e.ID, err)
		}
	}

	got, err := store.GetEntriesForDay(day(2024, 3, 10))
	if err != nil {
		t.Fatalf("GetEntriesForDay failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "first" || got[1].ID != "dup" {
		t.Errorf("GetEntriesForDay = %v, want [first dup]", ids(got))
	}

	all, err := store.GetAllEntries()
	if err != nil {
		t.Fatalf("GetAllEntries failed: %v", err)
	}
	want := []string{"second-day", "first", "dup"}
	for i, id := range ids(all) {
		if id != want[i] {
			t.Errorf("GetAllEntries[%d] = %s, want %s", i, id, want[i])
		}
	}
}

func TestGetEntriesInRange(t *testing.T) {
	store := setupTestStore(t)

	for i, d := range []time.Time{day(2024, 2, 28), day(2024, 2, 29), day(2024, 3, 1), day(2024, 3, 2)} {
		if err := store.AddEntry(newEntry(string(rune('a'+i)), d, 50)); err != nil {
			t.Fatalf("AddEntry failed: %v", err)
		}
	}
	if err := store.AddEntry(newEntry("nodate", time.Time{}, 50)); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	got, err := store.GetEntriesInRange(day(2024, 2, 29), day(2024, 3, 1))
	if err != nil {
		t.Fatalf("GetEntriesInRange failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Errorf("GetEntriesInRange = %v, want [b c]", ids(got))
	}
}

func TestUpdateEntry(t *testing.T) {
	store := setupTestStore(t)

	e := newEntry("a", day(2024, 3, 10), 80)
	if err := store.AddEntry(e); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	updated := time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC)
	e.Text = "changed"
	e.SatisfactionScore = 90
	e.UpdatedAt = &updated
	e.IsEdited = true
	if err := store.UpdateEntry(e); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	// A later update can never clear the edited marker
	e.IsEdited = false
	if err := store.UpdateEntry(e); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	got, err := store.GetEntry("a")
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.Text != "changed" || got.SatisfactionScore != 90 {
		t.Errorf("update not persisted: %+v", got)
	}
	if !got.IsEdited {
		t.Error("IsEdited should stay true")
	}
	if got.UpdatedAt == nil || !got.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, updated)
	}
}

func TestUpdateEntryNotFound(t *testing.T) {
	store := setupTestStore(t)
	err := store.UpdateEntry(newEntry("missing", day(2024, 1, 1), 1))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("UpdateEntry error = %v, want ErrNotFound", err)
	}
}

func TestAddBadgeOncePerType(t *testing.T) {
	store := setupTestStore(t)

	earned := time.Date(2024, 3, 10, 21, 0, 0, 0, time.UTC)
	created, err := store.AddBadge(models.Badge{ID: "b1", Type: models.Badge7Days, EarnedAt: earned})
	if err != nil {
		t.Fatalf("AddBadge failed: %v", err)
	}
	if !created {
		t.Error("first badge of a type should be created")
	}

	created, err = store.AddBadge(models.Badge{ID: "b2", Type: models.Badge7Days, EarnedAt: earned.Add(time.Hour)})
	if err != nil {
		t.Fatalf("AddBadge failed: %v", err)
	}
	if created {
		t.Error("second badge of the same type should be ignored")
	}

	badges, err := store.GetAllBadges()
	if err != nil {
		t.Fatalf("GetAllBadges failed: %v", err)
	}
	if len(badges) != 1 || badges[0].ID != "b1" || !badges[0].EarnedAt.Equal(earned) {
		t.Errorf("GetAllBadges = %+v, want the original b1", badges)
	}
}

func TestCopyBetweenStores(t *testing.T) {
	src := setupTestStore(t)
	dst := setupTestStore(t)

	if err := src.AddEntry(newEntry("a", day(2024, 3, 10), 80)); err != nil {
		t.Fatal(err)
	}
	if err := src.AddEntry(newEntry("b", day(2024, 3, 11), 60)); err != nil {
		t.Fatal(err)
	}
	if _, err := src.AddBadge(models.Badge{ID: "b1", Type: models.BadgeTotal50, EarnedAt: day(2024, 3, 11)}); err != nil {
		t.Fatal(err)
	}
	if err := dst.AddEntry(newEntry("a", day(2024, 3, 10), 80)); err != nil {
		t.Fatal(err)
	}

	entries, badges, err := storage.Copy(src, dst)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if entries != 1 || badges != 1 {
		t.Errorf("Copy = (%d, %d), want (1, 1)", entries, badges)
	}

	all, err := dst.GetAllEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("destination has %d entries, want 2", len(all))
	}
}

func ids(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
