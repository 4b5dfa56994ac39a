package badges

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/julianstephens/microdiary/internal/logger"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/utils"
)

// Store is the persistence the awarder needs.
// AddBadge must ignore a badge whose type already exists and report whether a row was created.
type Store interface {
	GetAllBadges() ([]models.Badge, error)
	AddBadge(models.Badge) (bool, error)
}

// Awarder persists newly qualifying badges exactly once per type
type Awarder struct {
	mu    sync.Mutex
	store Store
	clock utils.Clock
}

func NewAwarder(store Store, clock utils.Clock) *Awarder {
	return &Awarder{store: store, clock: clock}
}

// Award evaluates the catalog and creates a record for each newly met badge.
// Calls are serialized; the store's type uniqueness covers other processes.
func (a *Awarder) Award(streak, total int) ([]models.Badge, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	existing, err := a.store.GetAllBadges()
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}

	var awarded []models.Badge
	for _, t := range Evaluate(streak, total, EarnedSet(existing)) {
		badge := models.Badge{
			ID:       uuid.New().String(),
			Type:     t,
			EarnedAt: a.clock.Now(),
		}
		created, err := a.store.AddBadge(badge)
		if err != nil {
			return awarded, fmt.Errorf("failed to save badge %s: %w", t, err)
		}
		if !created {
			logger.Debug("Badge already earned elsewhere", "type", t)
			continue
		}
		logger.Info("Badge earned", "type", t, "streak", streak, "total", total)
		awarded = append(awarded, badge)
	}
	return awarded, nil
}
