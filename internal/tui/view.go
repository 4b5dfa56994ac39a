package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/microdiary/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateToday:
		content = docStyle.Render(m.todayModel.View())
	case constants.StateRecords:
		content = docStyle.Render(m.recordsModel.View())
	case constants.StateBadges:
		content = docStyle.Render(m.badgesModel.View())
	case constants.StateTimeline:
		content = docStyle.Render(m.timelineModel.View())
	case constants.StateWriting, constants.StateEditing, constants.StateSearching:
		content = docStyle.Render(m.form.View())
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatus(),
		content,
		m.help.View(m),
	)
	return ui
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "Records", "Badges", "Timeline"}
	active := m.state
	if m.state >= constants.TabCount {
		active = m.previousState
		if m.state == constants.StateSearching {
			active = constants.StateRecords
		}
	}
	for i, title := range tabTitles {
		if active == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	switch {
	case m.formError != "":
		return dangerStyle.Render(m.formError)
	case m.message == "":
		return ""
	case strings.HasPrefix(m.message, "✓"):
		return successStyle.Render(m.message)
	default:
		return warningStyle.Render(m.message)
	}
}
