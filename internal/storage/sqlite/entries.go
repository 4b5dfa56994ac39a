package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/storage"
	"github.com/julianstephens/microdiary/internal/utils"
)

func (s *Store) AddEntry(entry models.Entry) error {
	row := storage.NewEntryRow(entry)
	_, err := s.db.Exec(`
		INSERT INTO entries (`+storage.EntryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.Day, row.Text, row.SatisfactionScore, row.CreatedAt, row.UpdatedAt, row.IsEdited,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

func (s *Store) GetEntry(id string) (models.Entry, error) {
	var row storage.EntryRow
	err := s.db.QueryRow("SELECT "+storage.EntryColumns+" FROM entries WHERE id = ?", id).Scan(row.ScanDest()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, fmt.Errorf("entry %s: %w", id, storage.ErrNotFound)
		}
		return models.Entry{}, err
	}
	return row.Entry(s.loc)
}

func (s *Store) GetEntriesForDay(day time.Time) ([]models.Entry, error) {
	return s.queryEntries("SELECT "+storage.EntryColumns+" FROM entries WHERE day = ? ORDER BY seq", utils.DayKey(day))
}

func (s *Store) GetEntriesInRange(start, end time.Time) ([]models.Entry, error) {
	return s.queryEntries(
		"SELECT "+storage.EntryColumns+" FROM entries WHERE day >= ? AND day <= ? ORDER BY seq",
		utils.DayKey(start), utils.DayKey(end),
	)
}

func (s *Store) GetAllEntries() ([]models.Entry, error) {
	return s.queryEntries("SELECT " + storage.EntryColumns + " FROM entries ORDER BY seq")
}

func (s *Store) UpdateEntry(entry models.Entry) error {
	row := storage.NewEntryRow(entry)
	result, err := s.db.Exec(`
		UPDATE entries
		SET text = ?, satisfaction_score = ?, updated_at = ?, is_edited = (is_edited OR ?)
		WHERE id = ?`,
		row.Text, row.SatisfactionScore, row.UpdatedAt, row.IsEdited, row.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("entry %s: %w", entry.ID, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) queryEntries(query string, args ...interface{}) ([]models.Entry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var row storage.EntryRow
		if err := rows.Scan(row.ScanDest()...); err != nil {
			return nil, err
		}
		entry, err := row.Entry(s.loc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
