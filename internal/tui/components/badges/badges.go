package badges

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/microdiary/internal/badges"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	earnedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	statuses []badges.Status
	now      time.Time
	width    int
	height   int
	viewport viewport.Model
}

func New(statuses []badges.Status, now time.Time, width, height int) Model {
	m := Model{
		statuses: statuses,
		now:      now,
		width:    width,
		height:   height,
		viewport: viewport.New(width, height),
	}
	m.updateViewportContent()
	return m
}

func (m *Model) SetStatuses(statuses []badges.Status, now time.Time) {
	m.statuses = statuses
	m.now = now
	m.updateViewportContent()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.updateViewportContent()
}

func (m *Model) updateViewportContent() {
	earned := 0
	for _, s := range m.statuses {
		if s.Earned {
			earned++
		}
	}

	sections := []string{titleStyle.Render(fmt.Sprintf("Badges (%d/%d)", earned, len(m.statuses)))}
	for _, s := range m.statuses {
		if s.Earned {
			line := fmt.Sprintf("🏅 %-12s %s", s.Title, s.Description)
			sections = append(sections, earnedStyle.Render(line)+
				lockedStyle.Render("  earned "+humanize.RelTime(s.EarnedAt, m.now, "ago", "from now")))
			continue
		}
		filled := int(s.Progress * 10)
		bar := strings.Repeat("■", filled) + strings.Repeat("□", 10-filled)
		sections = append(sections, lockedStyle.Render(
			fmt.Sprintf("   %-12s %s  %s %d%%", s.Title, s.Description, bar, int(s.Progress*100))))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(lipgloss.NewStyle().Padding(0, 2).Render(content))
}
