package insights

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/stats"
)

type LookbackCmd struct {
	Period string `arg:"" optional:"" help:"How far back: yesterday, 3days, week, month, 3months, halfyear, year, or a day count. Defaults to the stored setting."`
	All    bool   `short:"a" help:"Show every lookback period."`
}

func (c *LookbackCmd) Run(ctx *cli.Context) error {
	if c.All {
		for _, p := range stats.LookbackPeriods {
			if err := printLookback(ctx, p); err != nil {
				return err
			}
		}
		return nil
	}

	raw := c.Period
	if raw == "" {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		raw = strconv.Itoa(settings.DefaultLookbackDays)
	}
	p, err := stats.ParseLookback(raw)
	if err != nil {
		return err
	}
	return printLookback(ctx, p)
}

func printLookback(ctx *cli.Context, p stats.Period) error {
	entry, ok, err := ctx.Journal.Lookback(p.Days)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("%-14s —\n", p.Label+":")
		return nil
	}
	fmt.Printf("%-14s %s\n", p.Label+":", cli.FormatEntry(entry))
	return nil
}
