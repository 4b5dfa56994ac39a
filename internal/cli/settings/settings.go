package settings

import (
	"fmt"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/stats"
	"github.com/julianstephens/microdiary/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone        *string `help:"IANA timezone for deciding what 'today' is (or 'Local')."`
	DefaultLookback *string `help:"Default period for 'lookback' (e.g. week, month, 30)."`
	DefaultRange    *string `help:"Default period for 'stats' (e.g. week, month, 90)."`
	AutoBackup      *bool   `help:"Back up the SQLite database after each write."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:         %s\n", settings.Timezone)
		if ctx.Config.Timezone != "" {
			fmt.Printf("                    (overridden by flag/env: %s)\n", ctx.Config.Timezone)
		}
		fmt.Printf("  Default Lookback: %s\n", cli.PeriodName(settings.DefaultLookbackDays, stats.LookbackPeriods))
		fmt.Printf("  Default Range:    %s\n", cli.PeriodName(settings.DefaultRangeDays, stats.RangePeriods))
		fmt.Printf("  Auto Backup:      %v\n", settings.AutoBackup)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.DefaultLookback != nil {
		p, err := stats.ParseLookback(*c.DefaultLookback)
		if err != nil {
			return err
		}
		settings.DefaultLookbackDays = p.Days
		updated = true
	}
	if c.DefaultRange != nil {
		p, err := stats.ParseRange(*c.DefaultRange)
		if err != nil {
			return err
		}
		settings.DefaultRangeDays = p.Days
		updated = true
	}
	if c.AutoBackup != nil {
		settings.AutoBackup = *c.AutoBackup
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
