package postgres

import (
	"fmt"

	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/storage"
)

func (s *Store) GetAllBadges() ([]models.Badge, error) {
	rows, err := s.db.Query("SELECT id, type, earned_at FROM badges ORDER BY earned_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badges []models.Badge
	for rows.Next() {
		var id, badgeType, earnedAt string
		if err := rows.Scan(&id, &badgeType, &earnedAt); err != nil {
			return nil, err
		}
		b, err := storage.BadgeRow(id, badgeType, earnedAt, s.loc)
		if err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

func (s *Store) AddBadge(badge models.Badge) (bool, error) {
	result, err := s.db.Exec(`
		INSERT INTO badges (id, type, earned_at) VALUES ($1, $2, $3)
		ON CONFLICT (type) DO NOTHING`,
		badge.ID, string(badge.Type), storage.FormatTimestamp(badge.EarnedAt),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert badge: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}
