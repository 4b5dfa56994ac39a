package entries

import (
	"errors"
	"fmt"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/journal"
	"github.com/julianstephens/microdiary/internal/stats"
)

type ListCmd struct {
	Query string `short:"q" help:"Only show entries containing this text (premium)."`
	Sort  string `default:"date-desc" enum:"date-desc,date-asc,score-desc,score-asc" help:"Sort order (score orders are premium)."`
	Limit int    `short:"n" default:"0" help:"Show at most this many entries (0 for all)."`
	IDs   bool   `help:"Show entry IDs."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	order, err := stats.ParseSortOption(c.Sort)
	if err != nil {
		return err
	}

	found, err := ctx.Journal.Search(c.Query, order)
	if err != nil {
		if errors.Is(err, journal.ErrPremiumRequired) {
			return fmt.Errorf("search and score sorting: %w", err)
		}
		return err
	}

	if len(found) == 0 {
		if c.Query != "" {
			fmt.Printf("No entries matching %q.\n", c.Query)
		} else {
			fmt.Println("No entries yet.")
		}
		return nil
	}

	if c.Limit > 0 && len(found) > c.Limit {
		found = found[:c.Limit]
	}

	fmt.Printf("Entries (%s):\n\n", order.Label())
	for _, e := range found {
		if c.IDs {
			fmt.Printf("  %s  %s\n", cli.ShortID(e.ID), cli.FormatEntry(e))
		} else {
			fmt.Printf("  %s\n", cli.FormatEntry(e))
		}
	}
	return nil
}
