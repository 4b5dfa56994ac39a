package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/microdiary/internal/constants"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/utils"
)

var (
	ErrEmptyText       = errors.New("entry text cannot be empty")
	ErrTextTooLong     = errors.New("entry text is too long")
	ErrScoreOutOfRange = errors.New("satisfaction score out of range")
)

// ValidateText checks the length policy for entry text.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if n := utf8.RuneCountInString(text); n > constants.MaxEntryTextLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrTextTooLong, n, constants.MaxEntryTextLength)
	}
	return nil
}

// ValidateScore checks that a satisfaction score is within bounds.
func ValidateScore(score int) error {
	if score < constants.MinSatisfaction || score > constants.MaxSatisfaction {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrScoreOutOfRange, score, constants.MinSatisfaction, constants.MaxSatisfaction)
	}
	return nil
}

// ValidateEntryInput checks user input for a new or edited entry.
func ValidateEntryInput(text string, score int) error {
	if err := ValidateText(text); err != nil {
		return err
	}
	return ValidateScore(score)
}

// Conflict represents a detected data problem
type Conflict struct {
	Type        constants.ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	EntryIDs    []string // IDs of entries involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks stored diary data
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateEntries reports entries that break the data model's nominal rules:
// more than one entry per day, missing dates, bad scores and over-long text.
func (v *Validator) ValidateEntries(entries []models.Entry) ValidationResult {
	var result ValidationResult

	byDay := make(map[string][]string)
	for _, e := range entries {
		if !e.HasDate() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictMissingDate,
				Description: fmt.Sprintf("Entry %s has no date and is excluded from streaks and statistics", e.ID),
				EntryIDs:    []string{e.ID},
			})
		} else {
			day := utils.DayKey(e.Date)
			byDay[day] = append(byDay[day], e.ID)
		}

		if err := ValidateScore(e.SatisfactionScore); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictScoreOutOfRange,
				Description: fmt.Sprintf("Entry %s: %v", e.ID, err),
				Date:        dayOrEmpty(e),
				EntryIDs:    []string{e.ID},
			})
		}
		if n := utf8.RuneCountInString(e.Text); n > constants.MaxEntryTextLength {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictTextTooLong,
				Description: fmt.Sprintf("Entry %s has %d characters (max %d)", e.ID, n, constants.MaxEntryTextLength),
				Date:        dayOrEmpty(e),
				EntryIDs:    []string{e.ID},
			})
		}
	}

	days := make([]string, 0, len(byDay))
	for day, ids := range byDay {
		if len(ids) > 1 {
			days = append(days, day)
		}
	}
	sort.Strings(days)
	for _, day := range days {
		ids := byDay[day]
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        constants.ConflictDuplicateDay,
			Description: fmt.Sprintf("%d entries share %s; the first one written is used for lookbacks and charts", len(ids), day),
			Date:        day,
			EntryIDs:    ids,
		})
	}

	return result
}

// ValidateBadges reports badge types recorded more than once.
func (v *Validator) ValidateBadges(badges []models.Badge) ValidationResult {
	var result ValidationResult
	byType := make(map[models.BadgeType][]string)
	var order []models.BadgeType
	for _, b := range badges {
		if _, ok := byType[b.Type]; !ok {
			order = append(order, b.Type)
		}
		byType[b.Type] = append(byType[b.Type], b.ID)
	}
	for _, t := range order {
		if ids := byType[t]; len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictDuplicateBadge,
				Description: fmt.Sprintf("Badge %s was recorded %d times", t, len(ids)),
				EntryIDs:    ids,
			})
		}
	}
	return result
}

func dayOrEmpty(e models.Entry) string {
	if !e.HasDate() {
		return ""
	}
	return utils.DayKey(e.Date)
}
