package trackerlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aminakh/trk/internal/models"
	"github.com/aminakh/trk/internal/validation"
)

type AddTrackerMsg struct{}

type ToggleTrackerMsg struct {
	ID string
}

type DeleteTrackerMsg struct {
	ID string
}

type Item struct {
	Tracker  models.Tracker
	Category string
	Done     bool
}

func (i Item) Title() string {
	mark := "○"
	if i.Done {
		mark = "✓"
	}
	return mark + " " + i.Tracker.Emoji + " " + i.Tracker.Title
}

func (i Item) Description() string {
	desc := i.Category
	if i.Tracker.IsEvent() {
		return desc + " · event"
	}
	return desc + " · " + validation.FormatWeekdays(i.Tracker.Schedule)
}

func (i Item) FilterValue() string { return i.Tracker.Title }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Trackers"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

// SetTrackers replaces the list contents with a visible-category snapshot.
func (m *Model) SetTrackers(categories []models.TrackerCategory, done map[string]bool) {
	var items []list.Item
	for _, category := range categories {
		for _, tracker := range category.Trackers {
			items = append(items, Item{
				Tracker:  tracker,
				Category: category.Title,
				Done:     done[tracker.ID],
			})
		}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddTrackerMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleTrackerMsg{ID: i.Tracker.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteTrackerMsg{ID: i.Tracker.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  What are we going to track?\n  Press 'a' to add a tracker."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
