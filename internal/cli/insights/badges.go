package insights

import (
	"fmt"

	"github.com/julianstephens/microdiary/internal/badges"
	"github.com/julianstephens/microdiary/internal/cli"
)

type BadgesCmd struct {
	Check bool `help:"Award any badges whose conditions are already met."`
}

func (c *BadgesCmd) Run(ctx *cli.Context) error {
	if c.Check {
		awarded, err := ctx.Journal.CheckBadges()
		if err != nil {
			return err
		}
		for _, b := range awarded {
			if def, ok := badges.Lookup(b.Type); ok {
				fmt.Printf("🏅 New badge: %s\n", def.Title)
			}
		}
		if len(awarded) == 0 {
			fmt.Println("No new badges.")
		}
		fmt.Println()
	}

	statuses, err := ctx.Journal.Badges()
	if err != nil {
		return err
	}

	earned := 0
	for _, s := range statuses {
		if s.Earned {
			earned++
		}
	}
	fmt.Printf("Badges (%d/%d earned):\n\n", earned, len(statuses))
	now := ctx.Now()
	for _, s := range statuses {
		fmt.Println(cli.FormatBadge(s, now))
	}
	return nil
}
