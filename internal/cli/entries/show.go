package entries

import (
	"fmt"
	"strings"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/stats"
	"github.com/julianstephens/microdiary/internal/utils"
)

type ShowCmd struct {
	Date string `arg:"" optional:"" default:"today" help:"Day to show (YYYY-MM-DD or 'today')."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	day := utils.StartOfDay(now)
	if c.Date != "" && c.Date != "today" {
		parsed, err := utils.ParseDateInLocation(c.Date, now.Location())
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", c.Date)
		}
		day = parsed
	}

	all, err := ctx.Journal.Entries()
	if err != nil {
		return err
	}

	entry, ok := stats.ForDay(day, all)
	if !ok {
		fmt.Printf("No entry for %s.\n", cli.FormatDay(day))
		if utils.IsSameDay(day, now) {
			fmt.Println("Write one with: microdiary write \"...\"")
		}
		return nil
	}

	printEntry(entry, ctx.Journal.CanEdit(entry))

	if ly, ok := stats.SameDayLastYear(entry.Date, all); ok {
		fmt.Println()
		fmt.Println("One year ago:")
		fmt.Printf("  %s\n", cli.FormatEntry(ly))
	}
	return nil
}

func printEntry(e models.Entry, editable bool) {
	fmt.Printf("%s\n", cli.FormatDay(e.Date))
	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("%s\n\n", e.Text)
	fmt.Printf("Satisfaction: %s %d\n", cli.ScoreBar(e.SatisfactionScore, 20), e.SatisfactionScore)
	if e.IsEdited && e.UpdatedAt != nil {
		fmt.Printf("Edited:       %s\n", e.UpdatedAt.Format("2006-01-02 15:04"))
	}
	if editable {
		fmt.Printf("ID:           %s (editable)\n", e.ID)
	} else {
		fmt.Printf("ID:           %s\n", e.ID)
	}
}
