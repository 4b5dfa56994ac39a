package system

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/journal"
	"github.com/julianstephens/microdiary/internal/models"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show database path."`
	DumpEntry    *DebugDumpEntryCmd    `cmd:"" help:"Dump an entry as JSON."`
	DumpBadges   *DebugDumpBadgesCmd   `cmd:"" help:"Dump earned badges as JSON."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
}

func printJSON(v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{
		"path":   ctx.Store.GetConfigPath(),
		"source": string(ctx.Config.Source),
	})
}

type DebugDumpEntryCmd struct {
	ID string `arg:"" help:"Entry ID, or 'today'."`
}

func (cmd *DebugDumpEntryCmd) Run(ctx *cli.Context) error {
	var (
		entry models.Entry
		err   error
	)
	if cmd.ID == "today" {
		var ok bool
		entry, ok, err = ctx.Journal.Today()
		if err == nil && !ok {
			return fmt.Errorf("no entry for today")
		}
	} else {
		entry, err = ctx.Journal.Entry(cmd.ID)
		if errors.Is(err, journal.ErrEntryNotFound) {
			return fmt.Errorf("no entry found with ID: %s", cmd.ID)
		}
	}
	if err != nil {
		return err
	}
	return printJSON(entry)
}

type DebugDumpBadgesCmd struct{}

func (cmd *DebugDumpBadgesCmd) Run(ctx *cli.Context) error {
	badges, err := ctx.Store.GetAllBadges()
	if err != nil {
		return fmt.Errorf("failed to get badges: %w", err)
	}
	if badges == nil {
		badges = []models.Badge{}
	}
	return printJSON(badges)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return printJSON(settings)
}
