package tracking

import (
	"math"
	"sort"

	"github.com/aminakh/trk/internal/models"
)

// Statistics summarizes a full completion-record history.
type Statistics struct {
	// BestStreak is the longest run of consecutive calendar days with at
	// least one completion.
	BestStreak int
	// PerfectDays counts days on which every tracker that has ever been
	// completed was completed.
	PerfectDays int
	// Completed is the total number of completion records.
	Completed int
	// AveragePerDay is Completed divided by the number of days with at least
	// one completion, rounded to the nearest integer.
	AveragePerDay int
}

// Calculate derives all statistics from a record snapshot. Days never
// completed on do not count against streaks or averages.
func Calculate(records []models.TrackerRecord) Statistics {
	if len(records) == 0 {
		return Statistics{}
	}

	perDay := make(map[string]int)
	trackers := make(map[string]bool)
	for _, r := range records {
		perDay[r.Day]++
		trackers[r.TrackerID] = true
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	perfect := 0
	for _, day := range days {
		if perDay[day] == len(trackers) {
			perfect++
		}
	}

	return Statistics{
		BestStreak:    bestStreak(days),
		PerfectDays:   perfect,
		Completed:     len(records),
		AveragePerDay: int(math.Round(float64(len(records)) / float64(len(days)))),
	}
}

// bestStreak walks sorted distinct days and finds the longest run of
// consecutive calendar days. A single day is a streak of 1.
func bestStreak(sortedDays []string) int {
	best, current := 0, 0
	var prev string

	for _, day := range sortedDays {
		parsed, err := models.ParseDay(day)
		if err != nil {
			continue
		}
		if current > 0 {
			prevParsed, _ := models.ParseDay(prev)
			if prevParsed.AddDate(0, 0, 1).Equal(parsed) {
				current++
			} else {
				current = 1
			}
		} else {
			current = 1
		}
		if current > best {
			best = current
		}
		prev = day
	}

	return best
}
