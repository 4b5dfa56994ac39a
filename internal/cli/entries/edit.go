package entries

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/journal"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/utils"
)

type EditCmd struct {
	ID    string  `arg:"" optional:"" help:"Entry ID (defaults to today's entry)."`
	Text  *string `short:"t" help:"New entry text."`
	Score *int    `short:"s" help:"New satisfaction score (0-100)."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	entry, err := c.target(ctx)
	if err != nil {
		return err
	}

	if !ctx.Journal.CanEdit(entry) {
		return fmt.Errorf("%w (entry from %s)", journal.ErrNotEditable, cli.FormatDay(entry.Date))
	}

	text, score := entry.Text, entry.SatisfactionScore
	if c.Text == nil && c.Score == nil {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("nothing to change; pass --text or --score")
		}
		text, score, err = promptEntry("Edit entry", text, score)
		if err != nil {
			return err
		}
	}
	if c.Text != nil {
		text = *c.Text
	}
	if c.Score != nil {
		score = *c.Score
	}

	updated, err := ctx.Journal.Edit(entry.ID, text, score)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Entry updated (%d characters left)\n", remaining(updated.Text))
	fmt.Println(cli.FormatEntry(updated))
	return nil
}

func (c *EditCmd) target(ctx *cli.Context) (models.Entry, error) {
	if c.ID != "" {
		entry, err := ctx.Journal.Entry(c.ID)
		if errors.Is(err, journal.ErrEntryNotFound) {
			return models.Entry{}, fmt.Errorf("%w: %s", err, c.ID)
		}
		return entry, err
	}

	entry, ok, err := ctx.Journal.Today()
	if err != nil {
		return models.Entry{}, err
	}
	if !ok {
		return models.Entry{}, fmt.Errorf("no entry for %s yet; use 'microdiary write' first", utils.DayKey(ctx.Now()))
	}
	return entry, nil
}
