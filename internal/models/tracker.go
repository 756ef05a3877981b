package models

import "time"

// DayFormat is the canonical calendar-day layout (YYYY-MM-DD). Completion
// records store days in this form, so two records can never differ only by
// time of day.
const DayFormat = "2006-01-02"

// Tracker is a single habit or event being tracked. A tracker with a
// non-empty schedule recurs on those weekdays; one with an empty schedule is
// a one-off event.
type Tracker struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Color     string    `json:"color"`
	Emoji     string    `json:"emoji"`
	Schedule  Schedule  `json:"schedule"`
	CreatedAt time.Time `json:"created_at"`
}

// IsEvent reports whether the tracker is a one-off event rather than a
// recurring habit.
func (t Tracker) IsEvent() bool {
	return len(t.Schedule) == 0
}

// Schedule is the set of weekdays a habit recurs on.
type Schedule []time.Weekday

// Contains reports whether the schedule includes the given weekday.
func (s Schedule) Contains(wd time.Weekday) bool {
	for _, d := range s {
		if d == wd {
			return true
		}
	}
	return false
}

// TrackerCategory groups trackers under a unique title.
type TrackerCategory struct {
	Title    string    `json:"title"`
	Trackers []Tracker `json:"trackers"`
}

// TrackerRecord marks a tracker as completed on one calendar day.
type TrackerRecord struct {
	TrackerID string `json:"tracker_id"`
	Day       string `json:"day"` // YYYY-MM-DD format
}

// Day returns the calendar day of t in t's location.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD day string into the midnight instant of that
// day in UTC.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(DayFormat, day)
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
