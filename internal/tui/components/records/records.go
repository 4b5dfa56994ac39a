package records

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/models"
)

type EditEntryMsg struct {
	Entry models.Entry
}

type SearchMsg struct{}

type Item struct {
	Entry models.Entry
}

func (i Item) Title() string {
	return i.Entry.Text
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %s %d", cli.FormatDay(i.Entry.Date), cli.ScoreBar(i.Entry.SatisfactionScore, 10), i.Entry.SatisfactionScore)
	if i.Entry.IsEdited {
		desc += " | edited"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.Text }

type KeyMap struct {
	Edit   key.Binding
	Search key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	title string
}

func New(entries []models.Entry, width, height int) Model {
	l := list.New(toItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Records"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	// search runs through the journal so premium gating applies
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit, keys.Search}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit, keys.Search}
	}

	return Model{list: l, keys: keys}
}

func toItems(entries []models.Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	return items
}

func (m *Model) SetEntries(entries []models.Entry) {
	m.list.SetItems(toItems(entries))
	m.list.ResetSelected()
}

// SetTitle sets the line shown above the list, such as the active search.
func (m *Model) SetTitle(title string) {
	m.title = title
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditEntryMsg(i) }
			}
			return m, nil
		case key.Matches(msg, m.keys.Search):
			return m, func() tea.Msg { return SearchMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := ""
	if m.title != "" {
		header = m.title + "\n\n"
	}
	if len(m.list.Items()) == 0 {
		return header + "\n  No entries found.\n  Press 'w' to write today's entry."
	}
	return header + m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-2)
}
