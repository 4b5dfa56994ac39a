package today

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/stats"
	"github.com/julianstephens/microdiary/internal/streak"
)

// Data is everything the Today tab shows
type Data struct {
	Entry       models.Entry
	HasEntry    bool
	Editable    bool
	Streak      streak.Summary
	LastYear    models.Entry
	HasLastYear bool
	// Lookback is the entry from the configured lookback period, if any
	Lookback      models.Entry
	HasLookback   bool
	LookbackLabel string
	Recent        stats.Summary
}

type Model struct {
	data     Data
	width    int
	height   int
	viewport viewport.Model
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1)
)

func New(data Data, width, height int) Model {
	m := Model{
		data:     data,
		width:    width,
		height:   height,
		viewport: viewport.New(width, height),
	}
	m.updateViewportContent()
	return m
}

func (m *Model) SetData(data Data) {
	m.data = data
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
	d := m.data
	var sections []string

	sections = append(sections, titleStyle.Render("Today"))
	if d.HasEntry {
		sections = append(sections, textStyle.Render(d.Entry.Text))
		line := fmt.Sprintf("Satisfaction %s %d", cli.ScoreBar(d.Entry.SatisfactionScore, 20), d.Entry.SatisfactionScore)
		if d.Entry.IsEdited {
			line += "  (edited)"
		}
		sections = append(sections, line)
		if d.Editable {
			sections = append(sections, mutedStyle.Render("Press 'e' to edit today's entry"))
		}
	} else {
		sections = append(sections, mutedStyle.Render("Nothing written yet today. Press 'w' to write."))
	}

	streakLine := fmt.Sprintf("🔥 Current streak: %d   Longest: %d   Entries: %d",
		d.Streak.Current, d.Streak.Longest, d.Streak.Total)
	sections = append(sections, sectionStyle.Render(streakLine))

	if d.HasLastYear {
		sections = append(sections, sectionStyle.Render(
			fmt.Sprintf("One year ago: %s (%d)", d.LastYear.Text, d.LastYear.SatisfactionScore)))
	}
	if d.HasLookback {
		sections = append(sections, sectionStyle.Render(
			fmt.Sprintf("%s: %s (%d)", d.LookbackLabel, d.Lookback.Text, d.Lookback.SatisfactionScore)))
	}

	if d.Recent.Days > 0 {
		summary := fmt.Sprintf("Last %d days: %s  avg %.1f over %d entries",
			d.Recent.Days, cli.Sparkline(d.Recent.Series), d.Recent.Average, d.Recent.Count)
		sections = append(sections, sectionStyle.Render(summary))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(lipgloss.NewStyle().Padding(0, 2).Render(content))
}
