package insights

import (
	"fmt"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/utils"
)

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	summary, err := ctx.Journal.Streak()
	if err != nil {
		return err
	}

	fmt.Printf("Current streak: %d day(s)\n", summary.Current)
	fmt.Printf("Longest streak: %d day(s)\n", summary.Longest)
	fmt.Printf("Total entries:  %d\n", summary.Total)
	fmt.Printf("Days recorded:  %d\n", summary.DaysRecorded)
	if !summary.LastEntryDay.IsZero() {
		fmt.Printf("Last entry:     %s\n", utils.DayKey(summary.LastEntryDay))
	}

	_, wroteToday, err := ctx.Journal.Today()
	if err != nil {
		return err
	}
	if !wroteToday && summary.Current > 0 {
		fmt.Println("\nWrite today's entry to keep the streak going.")
	}
	return nil
}
