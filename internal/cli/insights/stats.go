package insights

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/stats"
	"github.com/julianstephens/microdiary/internal/utils"
)

type StatsCmd struct {
	Period string `arg:"" optional:"" help:"Window: week, month, 3months, year, or a day count. Defaults to the stored setting."`
	Daily  bool   `short:"d" help:"List every day of the series."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	raw := c.Period
	if raw == "" {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		raw = strconv.Itoa(settings.DefaultRangeDays)
	}
	p, err := stats.ParseRange(raw)
	if err != nil {
		return err
	}

	summary, err := ctx.Journal.Stats(p.Days)
	if err != nil {
		return err
	}

	fmt.Printf("Statistics for the last %s (%s to %s)\n\n", p.Label, utils.DayKey(summary.Start), utils.DayKey(summary.End))
	fmt.Printf("Entries:              %d\n", summary.Count)
	fmt.Printf("Days recorded:        %d of %d\n", summary.DaysRecorded, summary.Days)
	if summary.Count > 0 {
		fmt.Printf("Average satisfaction: %.1f\n", summary.Average)
	} else {
		fmt.Println("Average satisfaction: —")
	}
	fmt.Printf("\n%s\n", cli.Sparkline(summary.Series))

	if c.Daily {
		fmt.Println()
		for _, pt := range summary.Series {
			if pt.HasEntry {
				fmt.Printf("  %s  %s %3d\n", utils.DayKey(pt.Date), cli.ScoreBar(pt.Score, 20), pt.Score)
			} else {
				fmt.Printf("  %s  %s   —\n", utils.DayKey(pt.Date), cli.ScoreBar(0, 20))
			}
		}
	}
	return nil
}
