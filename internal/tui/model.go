package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/aminakh/trk/internal/constants"
	"github.com/aminakh/trk/internal/models"
	"github.com/aminakh/trk/internal/tracking"
	"github.com/aminakh/trk/internal/tui/components/statistics"
	"github.com/aminakh/trk/internal/tui/components/trackerlist"
)

type SessionState int

const (
	StateTrackers SessionState = iota
	StateStatistics
	StateWelcome
	StateAddTracker
	StateConfirmDelete
)

type TrackerFormModel struct {
	Title    string
	Category string
	Schedule string
	Color    string
	Emoji    string
}

type Model struct {
	service *tracking.Service

	state       SessionState
	keys        KeyMap
	help        help.Model
	trackerList trackerlist.Model
	statsModel  statistics.Model

	form        *huh.Form
	trackerForm *TrackerFormModel
	formError   string

	trackerToDeleteID string

	date     time.Time
	filter   models.Filter
	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(service *tracking.Service) Model {
	m := Model{
		service:     service,
		state:       StateTrackers,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		trackerList: trackerlist.New(0, 0),
		statsModel:  statistics.New(),
		date:        models.StartOfDay(time.Now()),
	}

	m.refresh()

	// First launch gets the welcome screen
	if seen, err := service.HasSeenWelcome(); err == nil && !seen {
		m.state = StateWelcome
	}

	return m
}

// refresh reloads the visible trackers and statistics for the current date.
func (m *Model) refresh() {
	view, err := m.service.ViewOn(m.date)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.date = view.Date
	m.filter = view.Filter

	records, err := m.service.Records()
	if err != nil {
		m.status = err.Error()
		return
	}

	day := models.Day(m.date)
	done := make(map[string]bool)
	for _, r := range records {
		if r.Day == day {
			done[r.TrackerID] = true
		}
	}
	m.trackerList.SetTrackers(view.Categories, done)

	stats, err := m.service.Statistics()
	if err != nil {
		m.status = err.Error()
		return
	}
	m.statsModel.SetStats(stats)
	m.status = ""
}

// changeDate moves the reference date and drops the filter back to All so the
// new day always starts unfiltered.
func (m *Model) changeDate(to time.Time) {
	m.date = models.StartOfDay(to)
	if err := m.service.ResetFilter(); err != nil {
		m.status = err.Error()
	}
	m.refresh()
}

func (m *Model) newTrackerForm() {
	m.trackerForm = &TrackerFormModel{
		Color: constants.ColorTokens[0],
		Emoji: constants.Emojis[0],
	}

	colorOptions := make([]huh.Option[string], 0, len(constants.ColorTokens))
	for _, token := range constants.ColorTokens {
		colorOptions = append(colorOptions, huh.NewOption(token, token))
	}
	emojiOptions := make([]huh.Option[string], 0, len(constants.Emojis))
	for _, emoji := range constants.Emojis {
		emojiOptions = append(emojiOptions, huh.NewOption(emoji, emoji))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.trackerForm.Title),
			huh.NewInput().
				Title("Category").
				Value(&m.trackerForm.Category),
			huh.NewInput().
				Title("Schedule").
				Description("Weekdays (mon,wed,fri) or 'daily'. Leave empty for a one-off event.").
				Value(&m.trackerForm.Schedule),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&m.trackerForm.Color),
			huh.NewSelect[string]().
				Title("Emoji").
				Options(emojiOptions...).
				Value(&m.trackerForm.Emoji),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateTrackers {
		keys = append(keys, m.keys.Add, m.keys.Enter, m.keys.Filter, m.keys.PrevDay, m.keys.NextDay)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.PrevDay, m.keys.NextDay, m.keys.Today}

	var actions []key.Binding
	if m.state == StateTrackers {
		actions = []key.Binding{m.keys.Add, m.keys.Enter, m.keys.Filter, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func nowDay() time.Time {
	return models.StartOfDay(time.Now())
}
