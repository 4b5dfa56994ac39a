package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/microdiary/internal/constants"
	"github.com/julianstephens/microdiary/internal/stats"
	"github.com/julianstephens/microdiary/internal/validation"
)

func newEntryForm(title string, f *EntryFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				CharLimit(constants.MaxEntryTextLength).
				Value(&f.Text).
				Validate(validation.ValidateText),
			huh.NewInput().
				Title(fmt.Sprintf("Satisfaction (%d-%d)", constants.MinSatisfaction, constants.MaxSatisfaction)).
				Value(&f.Score).
				Validate(func(s string) error {
					score, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("enter a whole number")
					}
					return validation.ValidateScore(score)
				}),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(true)
}

func newSearchForm(f *SearchFormModel, premium bool) *huh.Form {
	options := make([]huh.Option[stats.SortOption], 0, len(stats.SortOptions))
	for _, o := range stats.SortOptions {
		label := o.Label()
		if o.BySatisfaction() && !premium {
			label += " (premium)"
		}
		options = append(options, huh.NewOption(label, o))
	}

	queryTitle := "Search records"
	if !premium {
		queryTitle += " (premium)"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(queryTitle).
				Value(&f.Query),
			huh.NewSelect[stats.SortOption]().
				Title("Sort").
				Options(options...).
				Value(&f.Sort),
		),
	).WithTheme(huh.ThemeDracula())
}
