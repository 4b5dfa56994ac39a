package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/julianstephens/microdiary/internal/constants"
	"github.com/julianstephens/microdiary/internal/keyring"
	"github.com/julianstephens/microdiary/internal/storage"
)

// Env holds settings read from MICRODIARY_* environment variables
type Env struct {
	DBConnection string `env:"MICRODIARY_DB_CONNECTION"`
	Timezone     string `env:"MICRODIARY_TIMEZONE"`
	Debug        bool   `env:"MICRODIARY_DEBUG"`
	Premium      bool   `env:"MICRODIARY_PREMIUM"`
	LogDir       string `env:"MICRODIARY_LOG_DIR"`
}

// LoadEnv parses the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Flags are the global command-line options
type Flags struct {
	Config   string
	Timezone string
	Debug    bool
}

// Source names where the connection string came from
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceKeyring Source = "keyring"
	SourceDefault Source = "default"
)

// Config is the effective configuration after merging flags, environment and keyring
type Config struct {
	Connection string
	Source     Source
	// Timezone is empty when neither flag nor environment set it; the stored setting applies then.
	Timezone  string
	Debug     bool
	Premium   bool
	LogDir    string
	ConfigDir string
}

// ConnectionLookup returns a stored connection string, or keyring.ErrNotFound.
type ConnectionLookup func() (string, error)

// Resolve merges flags over environment over keyring over the default SQLite path.
// A keyring that is unavailable is treated like an empty one.
func Resolve(flags Flags, e Env, lookup ConnectionLookup) (Config, error) {
	cfg := Config{
		Timezone: firstNonEmpty(flags.Timezone, e.Timezone),
		Debug:    flags.Debug || e.Debug,
		Premium:  e.Premium,
		LogDir:   e.LogDir,
	}

	switch {
	case strings.TrimSpace(flags.Config) != "":
		cfg.Connection, cfg.Source = flags.Config, SourceFlag
	case strings.TrimSpace(e.DBConnection) != "":
		cfg.Connection, cfg.Source = e.DBConnection, SourceEnv
	default:
		cfg.Connection, cfg.Source = constants.DefaultConfigPath, SourceDefault
		if lookup != nil {
			conn, err := lookup()
			switch {
			case err == nil && conn != "":
				cfg.Connection, cfg.Source = conn, SourceKeyring
			case err != nil && !errors.Is(err, keyring.ErrNotFound) && !errors.Is(err, keyring.ErrKeyringUnavailable):
				return Config{}, fmt.Errorf("failed to read connection string from keyring: %w", err)
			}
		}
	}

	if !storage.IsPostgres(cfg.Connection) {
		path, err := storage.ExpandPath(cfg.Connection)
		if err != nil {
			return Config{}, err
		}
		cfg.Connection = path
	}

	dir, err := configDir(cfg.Connection)
	if err != nil {
		return Config{}, err
	}
	cfg.ConfigDir = dir

	return cfg, nil
}

// TimezoneOr returns the configured timezone, falling back to stored and then Local.
func (c Config) TimezoneOr(stored string) string {
	return firstNonEmpty(c.Timezone, stored, constants.DefaultTimezone)
}

// configDir is the directory holding logs: next to the SQLite file, or the default config dir for PostgreSQL.
func configDir(conn string) (string, error) {
	if storage.IsPostgres(conn) {
		path, err := storage.ExpandPath(constants.DefaultConfigPath)
		if err != nil {
			return "", err
		}
		return filepath.Dir(path), nil
	}
	return filepath.Dir(conn), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
