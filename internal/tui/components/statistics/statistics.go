package statistics

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/aminakh/trk/internal/tracking"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2).
			Width(22)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

type Model struct {
	stats tracking.Statistics
	empty bool
}

func New() Model {
	return Model{empty: true}
}

func (m *Model) SetStats(stats tracking.Statistics) {
	m.stats = stats
	m.empty = stats.Completed == 0
}

func (m Model) View() string {
	if m.empty {
		return "\n  Nothing to analyze yet.\n  Mark a tracker done first."
	}

	cards := []string{
		card(m.stats.BestStreak, "Best streak"),
		card(m.stats.PerfectDays, "Perfect days"),
		card(m.stats.Completed, "Completed"),
		card(m.stats.AveragePerDay, "Average per day"),
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3])
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func card(value int, label string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		valueStyle.Render(fmt.Sprintf("%d", value)),
		labelStyle.Render(label),
	)
	return cardStyle.Render(content)
}
