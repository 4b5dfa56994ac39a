package insights

import (
	"fmt"

	"github.com/julianstephens/microdiary/internal/cli"
)

type TimelineCmd struct {
	Month  string `short:"m" help:"Only show this month (YYYY-MM)."`
	Months int    `default:"3" help:"Number of most recent months to show (0 for all)."`
}

func (c *TimelineCmd) Run(ctx *cli.Context) error {
	groups, err := ctx.Journal.Timeline()
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Println("No entries yet.")
		return nil
	}

	shown := 0
	for _, g := range groups {
		if c.Month != "" && g.Key != c.Month {
			continue
		}
		if c.Month == "" && c.Months > 0 && shown >= c.Months {
			break
		}
		shown++

		fmt.Printf("%s (%d)\n", g.Month.Format("January 2006"), len(g.Entries))
		for _, e := range g.Entries {
			fmt.Printf("  %s\n", cli.FormatEntry(e))
		}
		fmt.Println()
	}

	if shown == 0 {
		fmt.Printf("No entries for %s.\n", c.Month)
	}
	return nil
}
