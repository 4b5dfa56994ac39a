package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/cli/backups"
	"github.com/julianstephens/microdiary/internal/cli/entries"
	"github.com/julianstephens/microdiary/internal/cli/insights"
	"github.com/julianstephens/microdiary/internal/cli/settings"
	"github.com/julianstephens/microdiary/internal/cli/system"
	"github.com/julianstephens/microdiary/internal/config"
	"github.com/julianstephens/microdiary/internal/constants"
	"github.com/julianstephens/microdiary/internal/errors"
	"github.com/julianstephens/microdiary/internal/keyring"
	"github.com/julianstephens/microdiary/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"SQLite database path or PostgreSQL connection string (default ~/.config/microdiary/microdiary.db). PostgreSQL credentials must NOT be embedded; use MICRODIARY_DB_CONNECTION, .pgpass, or the OS keyring." type:"string"`
	Timezone string `help:"IANA timezone that decides what 'today' is. Overrides the stored setting."`
	Debug    bool   `help:"Log debug output to stderr."`

	Write    entries.WriteCmd     `cmd:"" help:"Write today's entry."`
	Edit     entries.EditCmd      `cmd:"" help:"Edit today's entry (past entries need premium)."`
	Show     entries.ShowCmd      `cmd:"" help:"Show the entry for a day."`
	List     entries.ListCmd      `cmd:"" help:"List past records."`
	Streak   insights.StreakCmd   `cmd:"" help:"Show the current and longest streak."`
	Lookback insights.LookbackCmd `cmd:"" help:"Show what you wrote some time ago."`
	Stats    insights.StatsCmd    `cmd:"" help:"Show satisfaction statistics for a period."`
	Timeline insights.TimelineCmd `cmd:"" help:"Show entries grouped by month."`
	Badges   insights.BadgesCmd   `cmd:"" help:"Show badges and progress."`

	Init     system.InitCmd     `cmd:"" help:"Initialize microdiary storage."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd `cmd:"" help:"Check stored entries and badges for problems."`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	DebugCmd system.DebugCmd    `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability." default:"1"`
	} `cmd:"" help:"Manage the connection string in the OS keyring."`
	Premium struct {
		Status     system.PremiumStatusCmd     `cmd:"" help:"Show which premium features are unlocked." default:"1"`
		Activate   system.PremiumActivateCmd   `cmd:"" help:"Store a license key in the OS keyring."`
		Deactivate system.PremiumDeactivateCmd `cmd:"" help:"Remove the stored license key."`
	} `cmd:"" help:"Manage premium features."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A one-line-a-day diary with streaks, badges and lookbacks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	env, err := config.LoadEnv()
	if err != nil {
		errors.Fatal(err)
	}
	cfg, err := config.Resolve(config.Flags{
		Config:   CLI.Config,
		Timezone: CLI.Timezone,
		Debug:    CLI.Debug,
	}, env, keyring.GetConnectionString)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		LogDir:    cfg.LogDir,
		ConfigDir: cfg.ConfigDir,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	logger.Debug("Resolved configuration", "source", cfg.Source, "storage", cfg.ConfigDir)

	store, err := cli.NewStore(cfg.Connection)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
	}

	// init and keyring manage their own storage needs
	if needsStore(ctx.Command()) {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		if err := appCtx.Setup(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

func needsStore(command string) bool {
	return command != "init" && !strings.HasPrefix(command, "init ") && !strings.HasPrefix(command, "keyring")
}
