package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/microdiary/internal/access"
	"github.com/julianstephens/microdiary/internal/badges"
	"github.com/julianstephens/microdiary/internal/logger"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/stats"
	"github.com/julianstephens/microdiary/internal/storage"
	"github.com/julianstephens/microdiary/internal/streak"
	"github.com/julianstephens/microdiary/internal/utils"
	"github.com/julianstephens/microdiary/internal/validation"
)

var (
	ErrEntryExists     = errors.New("today's entry already exists")
	ErrNotEditable     = errors.New("only today's entry can be edited without premium")
	ErrPremiumRequired = errors.New("this feature requires premium")
	ErrEntryNotFound   = errors.New("entry not found")
)

// Store is the subset of storage.Provider the service reads and writes
type Store interface {
	AddEntry(models.Entry) error
	GetEntry(id string) (models.Entry, error)
	GetEntriesForDay(day time.Time) ([]models.Entry, error)
	GetEntriesInRange(start, end time.Time) ([]models.Entry, error)
	GetAllEntries() ([]models.Entry, error)
	UpdateEntry(models.Entry) error
	GetAllBadges() ([]models.Badge, error)
	AddBadge(models.Badge) (bool, error)
}

// Service runs diary operations against a store using the configured clock and entitlement.
// Reads take a snapshot of all entries and hand it to the pure calculators.
type Service struct {
	store      Store
	clock      utils.Clock
	policy     access.Policy
	awarder    *badges.Awarder
	afterWrite func()
}

type Option func(*Service)

// WithAfterWrite registers a hook run after each successful write or edit.
func WithAfterWrite(fn func()) Option {
	return func(s *Service) {
		s.afterWrite = fn
	}
}

func New(store Store, clock utils.Clock, entitlement access.Entitlement, opts ...Option) *Service {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	s := &Service{
		store:   store,
		clock:   clock,
		policy:  access.NewPolicy(entitlement),
		awarder: badges.NewAwarder(store, clock),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Now() time.Time {
	return s.clock.Now()
}

func (s *Service) Policy() access.Policy {
	return s.policy
}

// CanEdit reports whether entry may be edited right now.
func (s *Service) CanEdit(entry models.Entry) bool {
	return s.policy.CanEdit(entry, s.clock.Now())
}

// WriteToday records today's entry and awards any badges it unlocks.
func (s *Service) WriteToday(text string, score int) (models.Entry, []models.Badge, error) {
	if err := validation.ValidateEntryInput(text, score); err != nil {
		return models.Entry{}, nil, err
	}

	now := s.clock.Now()
	today := utils.StartOfDay(now)
	existing, err := s.store.GetEntriesForDay(today)
	if err != nil {
		return models.Entry{}, nil, fmt.Errorf("failed to check today's entry: %w", err)
	}
	if len(existing) > 0 {
		return existing[0], nil, ErrEntryExists
	}

	entry := models.Entry{
		ID:                uuid.New().String(),
		Date:              today,
		Text:              text,
		SatisfactionScore: score,
		CreatedAt:         now,
	}
	if err := s.store.AddEntry(entry); err != nil {
		return models.Entry{}, nil, fmt.Errorf("failed to save entry: %w", err)
	}
	logger.Info("Entry written", "id", entry.ID, "day", utils.DayKey(today))
	s.wrote()

	// The entry is saved either way; a failed check is retried by the next CheckBadges.
	awarded, err := s.CheckBadges()
	if err != nil {
		logger.Warn("Badge check failed after write", "error", err)
		return entry, nil, nil
	}
	return entry, awarded, nil
}

// Edit rewrites an entry's text and score, marking it edited.
func (s *Service) Edit(id, text string, score int) (models.Entry, error) {
	entry, err := s.Entry(id)
	if err != nil {
		return models.Entry{}, err
	}

	now := s.clock.Now()
	if !s.policy.CanEdit(entry, now) {
		return models.Entry{}, ErrNotEditable
	}
	if err := validation.ValidateEntryInput(text, score); err != nil {
		return models.Entry{}, err
	}

	entry.Text = text
	entry.SatisfactionScore = score
	entry.IsEdited = true
	entry.UpdatedAt = &now
	if err := s.store.UpdateEntry(entry); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Entry{}, ErrEntryNotFound
		}
		return models.Entry{}, fmt.Errorf("failed to update entry: %w", err)
	}
	logger.Info("Entry edited", "id", entry.ID)
	s.wrote()
	return entry, nil
}

func (s *Service) wrote() {
	if s.afterWrite != nil {
		s.afterWrite()
	}
}

func (s *Service) Entry(id string) (models.Entry, error) {
	entry, err := s.store.GetEntry(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Entry{}, ErrEntryNotFound
		}
		return models.Entry{}, fmt.Errorf("failed to load entry: %w", err)
	}
	return entry, nil
}

// Entries returns every entry in arrival order.
func (s *Service) Entries() ([]models.Entry, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}

// Today returns today's entry, if written.
func (s *Service) Today() (models.Entry, bool, error) {
	entries, err := s.store.GetEntriesForDay(utils.StartOfDay(s.clock.Now()))
	if err != nil {
		return models.Entry{}, false, fmt.Errorf("failed to load today's entry: %w", err)
	}
	if len(entries) == 0 {
		return models.Entry{}, false, nil
	}
	return entries[0], true, nil
}

func (s *Service) Streak() (streak.Summary, error) {
	entries, err := s.Entries()
	if err != nil {
		return streak.Summary{}, err
	}
	return streak.Summarize(entries, s.clock.Now()), nil
}

// CheckBadges awards every badge whose condition currently holds and returns the new ones.
func (s *Service) CheckBadges() ([]models.Badge, error) {
	summary, err := s.Streak()
	if err != nil {
		return nil, err
	}
	return s.awarder.Award(summary.Current, summary.Total)
}

// Badges returns the catalog with earned state and progress.
func (s *Service) Badges() ([]badges.Status, error) {
	summary, err := s.Streak()
	if err != nil {
		return nil, err
	}
	earned, err := s.store.GetAllBadges()
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}
	return badges.Statuses(earned, summary.Current, summary.Total), nil
}

// Lookback returns the entry written exactly days ago.
func (s *Service) Lookback(days int) (models.Entry, bool, error) {
	entries, err := s.Entries()
	if err != nil {
		return models.Entry{}, false, err
	}
	entry, ok := stats.PointLookback(s.clock.Now(), days, entries)
	return entry, ok, nil
}

// Stats summarizes the last days calendar days, today included.
// Only entries inside the window are read from the store.
func (s *Service) Stats(days int) (stats.Summary, error) {
	if days < 1 {
		return stats.Summary{}, nil
	}

	now := s.clock.Now()
	end := utils.StartOfDay(now)
	start := utils.AddDays(end, -(days - 1))
	entries, err := s.store.GetEntriesInRange(start, end)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("failed to load entries in range: %w", err)
	}
	return stats.Range(now, days, entries), nil
}

func (s *Service) Timeline() ([]stats.MonthGroup, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}
	return stats.GroupByMonth(entries), nil
}

// Search filters and orders past records. A text query and the satisfaction
// orders are premium features; listing by date is open to everyone.
func (s *Service) Search(query string, order stats.SortOption) ([]models.Entry, error) {
	if query != "" && !s.policy.CanSearch() {
		return nil, ErrPremiumRequired
	}
	if order.BySatisfaction() && !s.policy.CanSortBySatisfaction() {
		return nil, ErrPremiumRequired
	}

	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}
	return stats.Sort(stats.Search(entries, query), order), nil
}

// LastYear returns the entry written one year before entry's day.
func (s *Service) LastYear(entry models.Entry) (models.Entry, bool, error) {
	if !entry.HasDate() {
		return models.Entry{}, false, nil
	}
	entries, err := s.Entries()
	if err != nil {
		return models.Entry{}, false, err
	}
	found, ok := stats.SameDayLastYear(entry.Date, entries)
	return found, ok, nil
}
