package tracking

import (
	"time"

	"github.com/aminakh/trk/internal/models"
)

// recordIndex answers membership questions about a record snapshot.
type recordIndex struct {
	byTracker map[string]map[string]bool // tracker id -> set of days
}

func indexRecords(records []models.TrackerRecord) recordIndex {
	idx := recordIndex{byTracker: make(map[string]map[string]bool)}
	for _, r := range records {
		days := idx.byTracker[r.TrackerID]
		if days == nil {
			days = make(map[string]bool)
			idx.byTracker[r.TrackerID] = days
		}
		days[r.Day] = true
	}
	return idx
}

func (idx recordIndex) completedOn(trackerID, day string) bool {
	return idx.byTracker[trackerID][day]
}

func (idx recordIndex) hasAny(trackerID string) bool {
	return len(idx.byTracker[trackerID]) > 0
}

// visibleOnDay reports whether a tracker belongs on the given day's screen,
// before any filter narrowing. A habit shows on its scheduled weekdays; an
// event shows everywhere until completed, then only on the day it was
// completed.
func visibleOnDay(tracker models.Tracker, idx recordIndex, refDate time.Time) bool {
	if tracker.IsEvent() {
		return !idx.hasAny(tracker.ID) || idx.completedOn(tracker.ID, models.Day(refDate))
	}
	return tracker.Schedule.Contains(refDate.Weekday())
}

// VisibleOn narrows a category snapshot to what the given day's screen should
// show under the given filter. Categories left without trackers are omitted.
// FilterToday is a date choice, not a narrowing; it behaves like FilterAll
// here.
func VisibleOn(categories []models.TrackerCategory, records []models.TrackerRecord, refDate time.Time, filter models.Filter) []models.TrackerCategory {
	idx := indexRecords(records)
	day := models.Day(refDate)

	var visible []models.TrackerCategory
	for _, category := range categories {
		var trackers []models.Tracker
		for _, tracker := range category.Trackers {
			if !visibleOnDay(tracker, idx, refDate) {
				continue
			}
			switch filter {
			case models.FilterCompleted:
				if !idx.completedOn(tracker.ID, day) {
					continue
				}
			case models.FilterIncomplete:
				if idx.completedOn(tracker.ID, day) {
					continue
				}
			}
			trackers = append(trackers, tracker)
		}
		if len(trackers) == 0 {
			continue
		}
		visible = append(visible, models.TrackerCategory{Title: category.Title, Trackers: trackers})
	}
	return visible
}

// IsEmpty reports whether a visible snapshot has no trackers at all.
func IsEmpty(categories []models.TrackerCategory) bool {
	for _, category := range categories {
		if len(category.Trackers) > 0 {
			return false
		}
	}
	return true
}

// CompletedOn reports whether the tracker has a completion record on the
// given day.
func CompletedOn(records []models.TrackerRecord, trackerID string, day string) bool {
	for _, r := range records {
		if r.TrackerID == trackerID && r.Day == day {
			return true
		}
	}
	return false
}

// CompletionCount counts the completion records on the given day.
func CompletionCount(records []models.TrackerRecord, day string) int {
	count := 0
	for _, r := range records {
		if r.Day == day {
			count++
		}
	}
	return count
}
