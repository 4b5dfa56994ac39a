package stats

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/utils"
)

// SortOption orders past records
type SortOption string

const (
	SortDateDesc  SortOption = "date-desc"
	SortDateAsc   SortOption = "date-asc"
	SortScoreDesc SortOption = "score-desc"
	SortScoreAsc  SortOption = "score-asc"
)

// SortOptions lists every option in display order.
var SortOptions = []SortOption{SortDateDesc, SortDateAsc, SortScoreDesc, SortScoreAsc}

// BySatisfaction reports whether the option orders by score rather than date.
func (o SortOption) BySatisfaction() bool {
	return o == SortScoreAsc || o == SortScoreDesc
}

func (o SortOption) Label() string {
	switch o {
	case SortDateAsc:
		return "Oldest first"
	case SortScoreDesc:
		return "Most satisfied first"
	case SortScoreAsc:
		return "Least satisfied first"
	default:
		return "Newest first"
	}
}

// ParseSortOption accepts any SortOptions value; empty means SortDateDesc.
func ParseSortOption(s string) (SortOption, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortDateDesc, nil
	}
	for _, o := range SortOptions {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown sort option %q", s)
}

// Search returns the entries whose text contains query, ignoring case.
// An empty query matches everything.
func Search(entries []models.Entry, query string) []models.Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]models.Entry(nil), entries...)
	}

	fold := cases.Fold()
	needle := fold.String(query)
	var matches []models.Entry
	for _, e := range entries {
		if strings.Contains(fold.String(e.Text), needle) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Sort returns a sorted copy of entries. Ties keep their input order.
// Dateless entries go last under the date orders.
func Sort(entries []models.Entry, option SortOption) []models.Entry {
	sorted := append([]models.Entry(nil), entries...)

	var less func(a, b models.Entry) bool
	switch option {
	case SortDateAsc:
		less = func(a, b models.Entry) bool { return dateLess(a, b, true) }
	case SortScoreDesc:
		less = func(a, b models.Entry) bool { return a.SatisfactionScore > b.SatisfactionScore }
	case SortScoreAsc:
		less = func(a, b models.Entry) bool { return a.SatisfactionScore < b.SatisfactionScore }
	default:
		less = func(a, b models.Entry) bool { return dateLess(a, b, false) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func dateLess(a, b models.Entry, ascending bool) bool {
	if a.HasDate() != b.HasDate() {
		return a.HasDate()
	}
	if !a.HasDate() {
		return false
	}
	ka, kb := utils.DayKey(a.Date), utils.DayKey(b.Date)
	if ascending {
		return ka < kb
	}
	return ka > kb
}
