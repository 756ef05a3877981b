package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/aminakh/trk/internal/tui/components/trackerlist"
	"github.com/aminakh/trk/internal/validation"
)

// StoreChangedMsg signals that a mutation was committed to storage; the
// screens recompute from a fresh snapshot.
type StoreChangedMsg struct{}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StoreChangedMsg:
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.trackerList.SetSize(msg.Width-4, msg.Height-7)
		return m, nil

	case trackerlist.AddTrackerMsg:
		m.newTrackerForm()
		m.formError = ""
		m.state = StateAddTracker
		return m, m.form.Init()

	case trackerlist.ToggleTrackerMsg:
		if err := m.service.ToggleCompletion(msg.ID, m.date); err != nil {
			m.status = err.Error()
		} else {
			m.refresh()
		}
		return m, nil

	case trackerlist.DeleteTrackerMsg:
		m.trackerToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case StateWelcome:
		return m.updateWelcome(msg)
	case StateAddTracker:
		return m.updateAddTracker(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == StateTrackers {
				m.state = StateStatistics
			} else {
				m.state = StateTrackers
			}
			return m, nil
		}

		if m.state == StateTrackers {
			switch {
			case key.Matches(msg, m.keys.PrevDay):
				m.changeDate(m.date.AddDate(0, 0, -1))
				return m, nil
			case key.Matches(msg, m.keys.NextDay):
				m.changeDate(m.date.AddDate(0, 0, 1))
				return m, nil
			case key.Matches(msg, m.keys.Today):
				m.changeDate(nowDay())
				return m, nil
			case key.Matches(msg, m.keys.Filter):
				if _, err := m.service.CycleFilter(); err != nil {
					m.status = err.Error()
				}
				m.refresh()
				return m, nil
			}
		}
	}

	if m.state == StateTrackers {
		var cmd tea.Cmd
		m.trackerList, cmd = m.trackerList.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if err := m.service.MarkWelcomeSeen(); err != nil {
			m.status = err.Error()
		}
		m.state = StateTrackers
	}
	return m, nil
}

func (m Model) updateAddTracker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		schedule, err := validation.ParseWeekdays(m.trackerForm.Schedule)
		if err != nil {
			// Invalid weekdays; keep the user in the form to correct the value
			m.formError = fmt.Sprintf("Invalid schedule: %v", err)
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		category := m.trackerForm.Category
		if category == "" {
			category = "General"
		}

		_, err = m.service.CreateTracker(
			m.trackerForm.Title, m.trackerForm.Color, m.trackerForm.Emoji, schedule, category)
		if err != nil {
			m.formError = fmt.Sprintf("Failed to add tracker: %v", err)
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		m.formError = ""
		m.state = StateTrackers
		m.refresh()
	case huh.StateAborted:
		m.formError = ""
		m.state = StateTrackers
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			if err := m.service.DeleteTracker(m.trackerToDeleteID); err != nil {
				m.status = err.Error()
			}
			m.trackerToDeleteID = ""
			m.state = StateTrackers
			m.refresh()
		case "n", "N", "esc", "q":
			m.trackerToDeleteID = ""
			m.state = StateTrackers
		}
	}
	return m, nil
}
