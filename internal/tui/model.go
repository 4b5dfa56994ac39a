package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/constants"
	"github.com/julianstephens/microdiary/internal/journal"
	"github.com/julianstephens/microdiary/internal/logger"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/stats"
	"github.com/julianstephens/microdiary/internal/tui/components/badges"
	"github.com/julianstephens/microdiary/internal/tui/components/records"
	"github.com/julianstephens/microdiary/internal/tui/components/timeline"
	"github.com/julianstephens/microdiary/internal/tui/components/today"
)

type EntryFormModel struct {
	Text  string
	Score string
}

type SearchFormModel struct {
	Query string
	Sort  stats.SortOption
}

type Model struct {
	journal       *journal.Service
	settings      models.Settings
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	todayModel    today.Model
	recordsModel  records.Model
	badgesModel   badges.Model
	timelineModel timeline.Model
	form          *huh.Form
	entryForm     *EntryFormModel
	searchForm    *SearchFormModel
	editingID     string // empty when the entry form writes today's entry
	query         string
	sortOption    stats.SortOption
	quitting      bool
	width         int
	height        int
	message       string // result of the last action, shown under the tabs
	formError     string
}

func NewModel(j *journal.Service, settings models.Settings) Model {
	models.ApplyDefaultSettings(&settings)
	m := Model{
		journal:       j,
		settings:      settings,
		state:         constants.StateToday,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		todayModel:    today.New(today.Data{}, 0, 0),
		recordsModel:  records.New(nil, 0, 0),
		badgesModel:   badges.New(nil, j.Now(), 0, 0),
		timelineModel: timeline.New(nil, 0, 0),
		sortOption:    stats.SortDateDesc,
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateToday:
		keys = append(keys, m.keys.Write, m.keys.Edit)
	case constants.StateRecords:
		keys = append(keys, m.keys.Edit, m.keys.Search)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateToday:
		actions = []key.Binding{m.keys.Write, m.keys.Edit}
	case constants.StateRecords:
		actions = []key.Binding{m.keys.Edit, m.keys.Search}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads every tab from the journal
func (m *Model) refresh() {
	now := m.journal.Now()

	data := today.Data{}
	entry, ok, err := m.journal.Today()
	if err != nil {
		logger.Warn("Failed to load today's entry", "error", err)
	}
	if ok {
		data.Entry, data.HasEntry = entry, true
		data.Editable = m.journal.CanEdit(entry)
		data.LastYear, data.HasLastYear, _ = m.journal.LastYear(entry)
	}
	if summary, err := m.journal.Streak(); err == nil {
		data.Streak = summary
	}
	lookbackDays := m.settings.DefaultLookbackDays
	data.LookbackLabel = cli.PeriodName(lookbackDays, stats.LookbackPeriods)
	data.Lookback, data.HasLookback, _ = m.journal.Lookback(lookbackDays)
	if recent, err := m.journal.Stats(m.settings.DefaultRangeDays); err == nil {
		data.Recent = recent
	}
	m.todayModel.SetData(data)

	m.loadRecords()

	if statuses, err := m.journal.Badges(); err == nil {
		m.badgesModel.SetStatuses(statuses, now)
	}
	if groups, err := m.journal.Timeline(); err == nil {
		m.timelineModel.SetGroups(groups)
	}
}

// loadRecords applies the current search; a gated search falls back to all records.
func (m *Model) loadRecords() {
	entries, err := m.journal.Search(m.query, m.sortOption)
	if err != nil {
		m.formError = err.Error()
		m.query, m.sortOption = "", stats.SortDateDesc
		entries, err = m.journal.Search("", stats.SortDateDesc)
		if err != nil {
			logger.Warn("Failed to load records", "error", err)
			return
		}
	}
	m.recordsModel.SetEntries(entries)

	title := m.sortOption.Label()
	if m.query != "" {
		title = fmt.Sprintf("Search %q · %s · %d found", m.query, title, len(entries))
	}
	m.recordsModel.SetTitle(title)
}
