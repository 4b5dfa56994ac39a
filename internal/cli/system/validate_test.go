package system

import (
	"testing"

	"github.com/julianstephens/microdiary/internal/constants"
	"github.com/julianstephens/microdiary/internal/models"
)

func TestValidateCmd_Clean(t *testing.T) {
	ctx, store := setupTestContext(t)
	for i, id := range []string{"a", "b", "c"} {
		if err := store.AddEntry(testEntry(id, i, 50)); err != nil {
			t.Fatal(err)
		}
	}

	if err := (&ValidateCmd{Strict: true}).Run(ctx); err != nil {
		t.Errorf("validate failed on clean data: %v", err)
	}
}

func TestValidateCmd_Problems(t *testing.T) {
	ctx, store := setupTestContext(t)
	entries := []models.Entry{
		testEntry("a", 1, 50),
		testEntry("b", 1, 70),
		{ID: "c", Text: "dateless", SatisfactionScore: 20, CreatedAt: testNow},
	}
	for _, e := range entries {
		if err := store.AddEntry(e); err != nil {
			t.Fatal(err)
		}
	}

	result, err := validateStore(ctx)
	if err != nil {
		t.Fatalf("validateStore failed: %v", err)
	}
	found := make(map[constants.ConflictType]int)
	for _, c := range result.Conflicts {
		found[c.Type]++
	}
	if found[constants.ConflictDuplicateDay] == 0 {
		t.Errorf("expected a duplicate day conflict, got %+v", result.Conflicts)
	}
	if found[constants.ConflictMissingDate] == 0 {
		t.Errorf("expected a missing date conflict, got %+v", result.Conflicts)
	}

	if err := (&ValidateCmd{}).Run(ctx); err != nil {
		t.Errorf("non-strict validate should not fail: %v", err)
	}
	if err := (&ValidateCmd{Strict: true}).Run(ctx); err == nil {
		t.Error("strict validate should fail when problems are found")
	}
}
