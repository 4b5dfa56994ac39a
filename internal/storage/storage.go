package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsPostgres reports whether config is a PostgreSQL URL or key=value DSN rather than a SQLite path.
func IsPostgres(config string) bool {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		return true
	}
	for _, field := range strings.Fields(config) {
		key, _, ok := strings.Cut(field, "=")
		if ok && (key == "host" || key == "dbname") {
			return true
		}
	}
	return false
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Copy transfers settings, entries and badges from src into dst, which must be initialized.
// Entries already present in dst (by ID) are skipped. Returns the number of entries and badges copied.
func Copy(src, dst Provider) (int, int, error) {
	settings, err := src.GetSettings()
	if err == nil {
		if err := dst.SaveSettings(settings); err != nil {
			return 0, 0, fmt.Errorf("failed to save settings to destination: %w", err)
		}
	}

	entries, err := src.GetAllEntries()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get entries from source: %w", err)
	}
	copied := 0
	for _, e := range entries {
		if _, err := dst.GetEntry(e.ID); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return copied, 0, fmt.Errorf("failed to check entry %s: %w", e.ID, err)
		}
		if err := dst.AddEntry(e); err != nil {
			return copied, 0, fmt.Errorf("failed to add entry %s: %w", e.ID, err)
		}
		copied++
	}

	badges, err := src.GetAllBadges()
	if err != nil {
		return copied, 0, fmt.Errorf("failed to get badges from source: %w", err)
	}
	awarded := 0
	for _, b := range badges {
		created, err := dst.AddBadge(b)
		if err != nil {
			return copied, awarded, fmt.Errorf("failed to add badge %s: %w", b.Type, err)
		}
		if created {
			awarded++
		}
	}
	return copied, awarded, nil
}
