package access

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/microdiary/internal/keyring"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/utils"
)

func TestCanEdit(t *testing.T) {
	now := time.Date(2025, 8, 20, 22, 15, 0, 0, time.UTC)
	today := utils.StartOfDay(now)

	tests := []struct {
		name      string
		entryDate time.Time
		entitled  bool
		want      bool
	}{
		{"today without entitlement", today, false, true},
		{"today with entitlement", today, true, true},
		{"yesterday without entitlement", utils.AddDays(now, -1), false, false},
		{"yesterday with entitlement", utils.AddDays(now, -1), true, true},
		{"last year with entitlement", utils.AddYears(now, -1), true, true},
		{"tomorrow without entitlement", utils.AddDays(now, 1), false, false},
		{"dateless without entitlement", time.Time{}, false, false},
		{"dateless with entitlement", time.Time{}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEdit(tt.entryDate, now, tt.entitled); got != tt.want {
				t.Errorf("CanEdit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolicy(t *testing.T) {
	now := time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC)
	old := models.Entry{ID: "old", Date: utils.AddDays(now, -3)}

	free := NewPolicy(Static(false))
	if free.CanEdit(old, now) || free.CanSearch() || free.CanSortBySatisfaction() || free.Premium() {
		t.Error("expected free policy to gate premium features")
	}
	if !free.CanEdit(models.Entry{Date: utils.StartOfDay(now)}, now) {
		t.Error("expected today's entry to be editable without entitlement")
	}

	premium := NewPolicy(Static(true))
	if !premium.CanEdit(old, now) || !premium.CanSearch() || !premium.CanSortBySatisfaction() {
		t.Error("expected premium policy to unlock features")
	}

	var nilPolicy Policy
	if nilPolicy.Premium() {
		t.Error("expected zero policy to be free")
	}
}

func TestAny(t *testing.T) {
	if Any().Premium() {
		t.Error("expected empty Any to be free")
	}
	if Any(Static(false), nil).Premium() {
		t.Error("expected all-false Any to be free")
	}
	if !Any(Static(false), Static(true)).Premium() {
		t.Error("expected Any with one premium source to be premium")
	}
}

func TestKeyringEntitlement(t *testing.T) {
	tests := []struct {
		name   string
		lookup func() (string, error)
		want   bool
	}{
		{"license stored", func() (string, error) { return "MD-1", nil }, true},
		{"no license", func() (string, error) { return "", keyring.ErrNotFound }, false},
		{"keyring unavailable", func() (string, error) { return "", errors.New("boom") }, false},
		{"nil lookup", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := KeyringEntitlement{lookup: tt.lookup}
			if got := e.Premium(); got != tt.want {
				t.Errorf("Premium() = %v, want %v", got, tt.want)
			}
		})
	}
}
