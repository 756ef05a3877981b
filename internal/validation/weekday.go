package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aminakh/trk/internal/models"
)

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekdays parses a comma-separated weekday list ("mon,wed,fri") into a
// schedule. The shorthands "daily", "weekdays" and "weekends" expand to the
// obvious sets. An empty string yields an empty schedule (a one-off event).
func ParseWeekdays(spec string) (models.Schedule, error) {
	spec = strings.TrimSpace(strings.ToLower(spec))
	if spec == "" {
		return nil, nil
	}

	switch spec {
	case "daily":
		return models.Schedule{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		}, nil
	case "weekdays":
		return models.Schedule{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		}, nil
	case "weekends":
		return models.Schedule{time.Saturday, time.Sunday}, nil
	}

	var schedule models.Schedule
	seen := make(map[time.Weekday]bool)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		wd, ok := weekdayNames[part]
		if !ok {
			return nil, fmt.Errorf("unknown weekday: %q", part)
		}
		if seen[wd] {
			continue
		}
		seen[wd] = true
		schedule = append(schedule, wd)
	}

	sort.Slice(schedule, func(i, j int) bool { return schedule[i] < schedule[j] })
	return schedule, nil
}

// FormatWeekdays renders a schedule as "Mon, Wed, Fri", or "-" for an event.
func FormatWeekdays(schedule models.Schedule) string {
	if len(schedule) == 0 {
		return "-"
	}

	names := make([]string, 0, len(schedule))
	for _, wd := range schedule {
		names = append(names, wd.String()[:3])
	}
	return strings.Join(names, ", ")
}
