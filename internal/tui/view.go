package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/aminakh/trk/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateWelcome:
		return m.viewWelcome()
	case StateAddTracker:
		content := m.form.View()
		if m.formError != "" {
			content = lipgloss.JoinVertical(lipgloss.Left,
				statusStyle.Render(m.formError), content)
		}
		return docStyle.Render(content)
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	var content string
	switch m.state {
	case StateTrackers:
		content = docStyle.Render(m.trackerList.View())
	case StateStatistics:
		content = docStyle.Render(m.statsModel.View())
	}

	sections := []string{m.viewTabs(), m.viewHeader(), content}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Trackers", "Statistics"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHeader() string {
	if m.state != StateTrackers {
		return ""
	}

	header := headerStyle.Render(m.date.Format("Mon, 02 Jan 2006"))
	if m.filter != models.FilterAll {
		header = lipgloss.JoinHorizontal(lipgloss.Top,
			header, filterStyle.Render(fmt.Sprintf("[%s]", m.filter)))
	}
	return header
}

func (m Model) viewWelcome() string {
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			welcomeStyle.Render("Track only what you want to track"),
			"",
			"Habits recur on the weekdays you pick;",
			"one-off events stick around until you complete them.",
			"",
			"Press any key to start.",
		),
	)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this tracker and its history?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
