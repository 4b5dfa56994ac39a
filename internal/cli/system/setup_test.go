package system

import (
	"path/filepath"
	"testing"
	"time"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/microdiary/internal/access"
	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/storage/sqlite"
	"github.com/julianstephens/microdiary/internal/utils"
)

var testNow = time.Date(2025, 3, 15, 18, 45, 0, 0, time.UTC)

func setupTestContext(t *testing.T) (*cli.Context, *sqlite.Store) {
	t.Helper()
	gokeyring.MockInit()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := &cli.Context{
		Store:       store,
		Clock:       utils.FixedClock{T: testNow},
		Entitlement: access.Static(false),
	}
	if err := ctx.Setup(); err != nil {
		t.Fatalf("failed to set up context: %v", err)
	}
	return ctx, store
}

func testEntry(id string, daysAgo, score int) models.Entry {
	date := utils.AddDays(utils.StartOfDay(testNow), -daysAgo)
	return models.Entry{
		ID:                id,
		Date:              date,
		Text:              "entry " + id,
		SatisfactionScore: score,
		CreatedAt:         date.Add(20 * time.Hour),
	}
}
