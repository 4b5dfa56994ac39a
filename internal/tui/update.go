package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/microdiary/internal/badges"
	"github.com/julianstephens/microdiary/internal/constants"
	"github.com/julianstephens/microdiary/internal/journal"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/tui/components/records"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Writing and Editing States
	if m.state == constants.StateWriting || m.state == constants.StateEditing {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = m.previousState
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if err := m.saveEntry(); err != nil {
				// Stay in the form so the user can fix the input or cancel
				m.formError = err.Error()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.formError = ""
			m.refresh()
			m.state = m.previousState
		case huh.StateAborted:
			m.formError = ""
			m.state = m.previousState
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Searching State
	if m.state == constants.StateSearching {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateRecords
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			m.formError = ""
			m.query = strings.TrimSpace(m.searchForm.Query)
			m.sortOption = m.searchForm.Sort
			m.loadRecords()
			m.state = constants.StateRecords
		case huh.StateAborted:
			m.state = constants.StateRecords
		}
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Adjust height for tabs, status line and help
		listHeight := msg.Height - 5

		h, v := docStyle.GetFrameSize()
		m.todayModel.SetSize(msg.Width-h, listHeight-v)
		m.recordsModel.SetSize(msg.Width-h, listHeight-v)
		m.badgesModel.SetSize(msg.Width-h, listHeight-v)
		m.timelineModel.SetSize(msg.Width-h, listHeight-v)

	case records.EditEntryMsg:
		return m.startEdit(msg.Entry)

	case records.SearchMsg:
		m.searchForm = &SearchFormModel{Query: m.query, Sort: m.sortOption}
		m.form = newSearchForm(m.searchForm, m.journal.Policy().CanSearch())
		m.state = constants.StateSearching
		return m, m.form.Init()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab, m.keys.Right):
			m.state = (m.state + 1) % constants.TabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab, m.keys.Left):
			m.state = (m.state - 1 + constants.TabCount) % constants.TabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.message = ""
			m.formError = ""
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Write):
			return m.startWrite()
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateToday:
		if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Edit) {
			entry, ok, err := m.journal.Today()
			if err != nil || !ok {
				m.message = "Nothing written yet today"
				return m, nil
			}
			return m.startEdit(entry)
		}
		m.todayModel, cmd = m.todayModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateRecords:
		m.recordsModel, cmd = m.recordsModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateBadges:
		m.badgesModel, cmd = m.badgesModel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateTimeline:
		m.timelineModel, cmd = m.timelineModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) startWrite() (tea.Model, tea.Cmd) {
	if entry, ok, err := m.journal.Today(); err == nil && ok {
		return m.startEdit(entry)
	}

	m.editingID = ""
	m.entryForm = &EntryFormModel{Score: strconv.Itoa(constants.DefaultSatisfaction)}
	m.form = newEntryForm("Today's entry", m.entryForm)
	m.previousState = m.state
	m.state = constants.StateWriting
	return m, m.form.Init()
}

func (m Model) startEdit(entry models.Entry) (tea.Model, tea.Cmd) {
	if !m.journal.CanEdit(entry) {
		m.message = "Editing past entries requires premium"
		return m, nil
	}

	m.editingID = entry.ID
	m.entryForm = &EntryFormModel{Text: entry.Text, Score: strconv.Itoa(entry.SatisfactionScore)}
	m.form = newEntryForm(fmt.Sprintf("Edit entry for %s", entry.Date.Format(constants.DateFormat)), m.entryForm)
	m.previousState = m.state
	m.state = constants.StateEditing
	return m, m.form.Init()
}

// saveEntry writes or edits from the entry form and sets the status message
func (m *Model) saveEntry() error {
	score, err := strconv.Atoi(strings.TrimSpace(m.entryForm.Score))
	if err != nil {
		return fmt.Errorf("satisfaction must be a whole number")
	}

	if m.editingID != "" {
		if _, err := m.journal.Edit(m.editingID, m.entryForm.Text, score); err != nil {
			return err
		}
		m.message = "✓ Entry updated"
		return nil
	}

	_, awarded, err := m.journal.WriteToday(m.entryForm.Text, score)
	if err != nil {
		if errors.Is(err, journal.ErrEntryExists) {
			return fmt.Errorf("today's entry already exists")
		}
		return err
	}
	m.message = "✓ Entry saved"
	for _, b := range awarded {
		if def, ok := badges.Lookup(b.Type); ok {
			m.message += fmt.Sprintf("  🏅 %s", def.Title)
		}
	}
	return nil
}
