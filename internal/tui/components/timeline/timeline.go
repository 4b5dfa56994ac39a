package timeline

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/stats"
)

var (
	monthStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginTop(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	groups   []stats.MonthGroup
	width    int
	height   int
	viewport viewport.Model
}

func New(groups []stats.MonthGroup, width, height int) Model {
	m := Model{
		groups:   groups,
		width:    width,
		height:   height,
		viewport: viewport.New(width, height),
	}
	m.updateViewportContent()
	return m
}

func (m *Model) SetGroups(groups []stats.MonthGroup) {
	m.groups = groups
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
	var sections []string
	if len(m.groups) == 0 {
		sections = append(sections, emptyStyle.Render("No dated entries yet."))
	}
	for _, g := range m.groups {
		sections = append(sections, monthStyle.Render(fmt.Sprintf("%s (%d)", g.Month.Format("January 2006"), len(g.Entries))))
		for _, e := range g.Entries {
			sections = append(sections, fmt.Sprintf("  %s  %s  %s",
				e.Date.Format("02 Mon"), cli.ScoreBar(e.SatisfactionScore, 10), e.Text))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(lipgloss.NewStyle().Padding(0, 2).Render(content))
}
