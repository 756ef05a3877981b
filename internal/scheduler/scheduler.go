package scheduler

import (
	"time"

	"github.com/aminakh/trk/internal/models"
)

// Scheduler projects trackers onto upcoming calendar days: which habits fall
// on which weekdays, and which events are still waiting to be completed.
type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

// Entry is one tracker due on a particular day.
type Entry struct {
	Tracker  models.Tracker
	Category string
	Done     bool
}

// DayPlan lists the trackers due on a single day, in store order.
type DayPlan struct {
	Date    time.Time
	Entries []Entry
}

// Plan builds day plans for `days` consecutive days starting at from. A habit
// is due on the days its schedule names; an event with no completion record is
// due on every day until it is completed, then drops off the plan. Days with
// nothing due are still included so callers can render gaps.
func (s *Scheduler) Plan(categories []models.TrackerCategory, records []models.TrackerRecord, from time.Time, days int) []DayPlan {
	if days < 1 {
		days = 1
	}
	start := models.StartOfDay(from)

	completed := make(map[string]map[string]bool)
	for _, r := range records {
		if completed[r.TrackerID] == nil {
			completed[r.TrackerID] = make(map[string]bool)
		}
		completed[r.TrackerID][r.Day] = true
	}

	plans := make([]DayPlan, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		day := models.Day(date)

		plan := DayPlan{Date: date}
		for _, category := range categories {
			for _, tracker := range category.Trackers {
				if !dueOn(tracker, date, completed[tracker.ID]) {
					continue
				}
				plan.Entries = append(plan.Entries, Entry{
					Tracker:  tracker,
					Category: category.Title,
					Done:     completed[tracker.ID][day],
				})
			}
		}
		plans = append(plans, plan)
	}
	return plans
}

// NextOccurrence returns the first day on or after from that the tracker is
// due. For an already-completed event there is no next occurrence.
func (s *Scheduler) NextOccurrence(tracker models.Tracker, records []models.TrackerRecord, from time.Time) (time.Time, bool) {
	start := models.StartOfDay(from)

	if tracker.IsEvent() {
		for _, r := range records {
			if r.TrackerID == tracker.ID {
				return time.Time{}, false
			}
		}
		return start, true
	}

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		if tracker.Schedule.Contains(date.Weekday()) {
			return date, true
		}
	}
	return time.Time{}, false
}

func dueOn(tracker models.Tracker, date time.Time, done map[string]bool) bool {
	if tracker.IsEvent() {
		// Pending events carry over day to day until completed.
		return len(done) == 0 || done[models.Day(date)]
	}
	return tracker.Schedule.Contains(date.Weekday())
}
