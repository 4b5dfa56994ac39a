package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/microdiary/internal/backup"
	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/keyring"
	"github.com/julianstephens/microdiary/internal/storage"
	"github.com/julianstephens/microdiary/internal/utils"
	"github.com/julianstephens/microdiary/internal/validation"
)

type DoctorCmd struct{}

type checkResult int

const (
	checkOK checkResult = iota
	checkFail
	checkWarn
	checkSkip
)

func report(name string, result checkResult, detail error) {
	switch result {
	case checkOK:
		fmt.Printf("✓ %s: OK\n", name)
	case checkFail:
		fmt.Printf("❌ %s: FAIL\n", name)
		fmt.Printf("   Error: %v\n", detail)
	case checkWarn:
		fmt.Printf("⚠ %s: WARNING\n", name)
		fmt.Printf("   %v\n", detail)
	case checkSkip:
		fmt.Printf("⊘ %s: SKIPPED (%v)\n", name, detail)
	}
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	fail := func(name string, err error) {
		report(name, checkFail, err)
		hasError = true
	}
	unreachable := fmt.Errorf("database not reachable")

	dbReachable := false
	if err := checkDBReachable(ctx); err != nil {
		fail("Database reachable", err)
	} else {
		report("Database reachable", checkOK, nil)
		dbReachable = true
	}

	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fail("Schema version", err)
		} else {
			report("Schema version", checkOK, nil)
		}
	} else {
		report("Schema version", checkSkip, unreachable)
	}

	if storage.IsPostgres(ctx.Store.GetConfigPath()) {
		report("Backups present", checkSkip, fmt.Errorf("PostgreSQL storage"))
	} else if err := checkBackupsPresent(ctx); err != nil {
		report("Backups present", checkWarn, err)
	} else {
		report("Backups present", checkOK, nil)
	}

	if dbReachable {
		if err := checkValidation(ctx); err != nil {
			report("Data validation", checkWarn, err)
		} else {
			report("Data validation", checkOK, nil)
		}
	} else {
		report("Data validation", checkSkip, unreachable)
	}

	if err := checkClockTimezone(ctx, dbReachable); err != nil {
		fail("Clock/timezone", err)
	} else {
		report("Clock/timezone", checkOK, nil)
	}

	if keyring.IsAvailable() {
		report("OS keyring", checkOK, nil)
	} else {
		report("OS keyring", checkWarn, fmt.Errorf("keyring unavailable; premium license and connection strings cannot be stored"))
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	inspector, ok := ctx.Store.(storage.SchemaInspector)
	if !ok {
		return nil
	}
	current, latest, err := inspector.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'microdiary backup create'")
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}
	badges, err := ctx.Store.GetAllBadges()
	if err != nil {
		return fmt.Errorf("failed to get badges: %w", err)
	}

	v := validation.New()
	problems := len(v.ValidateEntries(entries).Conflicts) + len(v.ValidateBadges(badges).Conflicts)
	if problems > 0 {
		return fmt.Errorf("%d data problem(s) found; run 'microdiary validate' for details", problems)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context, dbReachable bool) error {
	tz := ctx.Config.Timezone
	if tz == "" && dbReachable {
		if settings, err := ctx.Store.GetSettings(); err == nil {
			tz = settings.Timezone
		}
	}
	if !utils.ValidateTimezone(tz) {
		return fmt.Errorf("unknown timezone %q", tz)
	}

	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
