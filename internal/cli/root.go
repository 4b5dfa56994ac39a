package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/microdiary/internal/access"
	"github.com/julianstephens/microdiary/internal/backup"
	"github.com/julianstephens/microdiary/internal/config"
	"github.com/julianstephens/microdiary/internal/journal"
	"github.com/julianstephens/microdiary/internal/logger"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/storage"
	"github.com/julianstephens/microdiary/internal/storage/postgres"
	"github.com/julianstephens/microdiary/internal/storage/sqlite"
	"github.com/julianstephens/microdiary/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Config  config.Config
	Journal *journal.Service
	Clock   utils.Clock
	// Entitlement overrides the flag-plus-keyring default; tests set it.
	Entitlement access.Entitlement
	In          io.Reader
}

// NewStore picks the store implementation for a SQLite path or PostgreSQL URL.
func NewStore(conn string) (storage.Provider, error) {
	if storage.IsPostgres(conn) {
		if _, err := postgres.ValidateConnString(conn); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed; use the OS keyring, MICRODIARY_DB_CONNECTION or ~/.pgpass")
			}
			return nil, err
		}
		return postgres.New(conn), nil
	}
	return sqlite.NewStore(conn), nil
}

// Setup wires the clock and journal service once the store is loaded.
// The timezone comes from flag or env, then the stored setting.
func (c *Context) Setup() error {
	settings, err := c.Store.GetSettings()
	if err != nil {
		logger.Warn("Failed to read settings, using defaults", "error", err)
		settings = models.DefaultSettings()
	}

	if c.Clock == nil {
		clock, err := utils.NewSystemClock(c.Config.TimezoneOr(settings.Timezone))
		if err != nil {
			return fmt.Errorf("invalid timezone: %w", err)
		}
		c.Clock = clock
	}
	c.Store.SetLocation(c.Clock.Now().Location())

	if c.Entitlement == nil {
		c.Entitlement = access.Any(access.Static(c.Config.Premium), access.NewKeyringEntitlement())
	}

	var opts []journal.Option
	if settings.AutoBackup && !storage.IsPostgres(c.Store.GetConfigPath()) {
		opts = append(opts, journal.WithAfterWrite(c.PerformAutomaticBackup))
	}
	c.Journal = journal.New(c.Store, c.Clock, c.Entitlement, opts...)
	return nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if storage.IsPostgres(c.Store.GetConfigPath()) {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Now returns the current time in the configured timezone.
func (c *Context) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

// Confirm asks a yes/no question on stdout and reads the answer from In.
func (c *Context) Confirm(prompt string) (bool, error) {
	in := c.In
	if in == nil {
		in = os.Stdin
	}
	fmt.Printf("%s [y/N]: ", prompt)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
