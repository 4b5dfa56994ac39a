package entries

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/julianstephens/microdiary/internal/badges"
	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/constants"
	"github.com/julianstephens/microdiary/internal/journal"
	"github.com/julianstephens/microdiary/internal/utils"
	"github.com/julianstephens/microdiary/internal/validation"
)

type WriteCmd struct {
	Text  string `arg:"" optional:"" help:"Entry text (max 100 characters). Prompts when omitted."`
	Score int    `short:"s" default:"50" help:"Satisfaction score (0-100)."`
}

func (c *WriteCmd) Run(ctx *cli.Context) error {
	text, score := c.Text, c.Score
	if strings.TrimSpace(text) == "" {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("entry text is required when not running in a terminal")
		}
		var err error
		text, score, err = promptEntry("Today's entry", "", score)
		if err != nil {
			return err
		}
	}

	entry, awarded, err := ctx.Journal.WriteToday(text, score)
	if err != nil {
		if errors.Is(err, journal.ErrEntryExists) {
			return fmt.Errorf("%w (%s)", err, utils.DayKey(entry.Date))
		}
		return err
	}

	fmt.Printf("✓ Entry saved for %s\n", utils.DayKey(entry.Date))
	for _, b := range awarded {
		if def, ok := badges.Lookup(b.Type); ok {
			fmt.Printf("🏅 New badge: %s (%s)\n", def.Title, def.Description)
		}
	}

	if summary, err := ctx.Journal.Streak(); err == nil && summary.Current > 1 {
		fmt.Printf("🔥 %d day streak\n", summary.Current)
	}
	return nil
}

// promptEntry asks for text and score with a huh form.
func promptEntry(title, text string, score int) (string, int, error) {
	scoreStr := strconv.Itoa(score)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				CharLimit(constants.MaxEntryTextLength).
				Value(&text).
				Validate(validation.ValidateText),
			huh.NewInput().
				Title(fmt.Sprintf("Satisfaction (%d-%d)", constants.MinSatisfaction, constants.MaxSatisfaction)).
				Value(&scoreStr).
				Validate(validateScoreInput),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return "", 0, err
	}

	parsed, _ := strconv.Atoi(strings.TrimSpace(scoreStr))
	return text, parsed, nil
}

func validateScoreInput(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	return validation.ValidateScore(n)
}

// remaining returns how many characters are left for an entry.
func remaining(text string) int {
	return constants.MaxEntryTextLength - utf8.RuneCountInString(text)
}
