package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aminakh/trk/internal/backup"
	"github.com/aminakh/trk/internal/config"
	"github.com/aminakh/trk/internal/constants"
	"github.com/aminakh/trk/internal/logger"
	"github.com/aminakh/trk/internal/models"
	"github.com/aminakh/trk/internal/storage"
	"github.com/aminakh/trk/internal/tracking"
)

type Context struct {
	Config  *config.Config
	Store   storage.Provider
	Service *tracking.Service
}

// PerformAutomaticBackup backs up the database quietly. Failures are logged,
// never fatal.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath(), ctx.Config.Backup.MaxBackups)
	path, err := mgr.Create()
	if err != nil {
		logger.Warn("automatic backup failed", "error", err)
		return
	}
	logger.Debug("automatic backup created", "path", path)
}

// parseDate resolves a date argument. Accepts YYYY-MM-DD plus the shorthands
// "today" and "yesterday".
func parseDate(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return models.StartOfDay(time.Now()), nil
	case "yesterday":
		return models.StartOfDay(time.Now().AddDate(0, 0, -1)), nil
	}

	// Explicit dates are calendar days in the user's zone, not UTC instants.
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD, 'today' or 'yesterday': %w", err)
	}
	return t, nil
}

// findTracker resolves a tracker by exact title (case-insensitive) or by ID
// prefix. Ambiguous queries are an error.
func findTracker(categories []models.TrackerCategory, query string) (models.Tracker, error) {
	query = strings.TrimSpace(query)
	lowered := strings.ToLower(query)

	var matches []models.Tracker
	for _, category := range categories {
		for _, tracker := range category.Trackers {
			if strings.ToLower(tracker.Title) == lowered || strings.HasPrefix(tracker.ID, query) {
				matches = append(matches, tracker)
			}
		}
	}

	switch len(matches) {
	case 0:
		return models.Tracker{}, fmt.Errorf("no tracker matches %q", query)
	case 1:
		return matches[0], nil
	default:
		var titles []string
		for _, m := range matches {
			titles = append(titles, fmt.Sprintf("%s (%s)", m.Title, shortID(m.ID)))
		}
		return models.Tracker{}, fmt.Errorf("%q matches multiple trackers: %s", query, strings.Join(titles, ", "))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// renderTracker formats one tracker line for terminal output.
func renderTracker(tracker models.Tracker, done bool) string {
	mark := "·"
	if done {
		mark = "✓"
	}

	title := tracker.Title
	if hex, ok := constants.Colors[tracker.Color]; ok {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(title)
	}

	return fmt.Sprintf("  %s %s %s", mark, tracker.Emoji, title)
}
