package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/aminakh/trk/internal/models"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-08-24")
	if err != nil {
		t.Fatalf("parseDate() error = %v", err)
	}
	if models.Day(got) != "2026-08-24" {
		t.Errorf("parseDate() = %s, want day 2026-08-24", got)
	}
	// Explicit dates are calendar days in the user's zone, so the future
	// guard compares them against the local clock.
	if got.Location() != time.Local {
		t.Errorf("parseDate() location = %v, want local", got.Location())
	}

	today, err := parseDate("today")
	if err != nil {
		t.Fatalf("parseDate(today) error = %v", err)
	}
	if models.Day(today) != models.Day(time.Now()) {
		t.Errorf("parseDate(today) = %s", models.Day(today))
	}

	yesterday, err := parseDate("Yesterday")
	if err != nil {
		t.Fatalf("parseDate(yesterday) error = %v", err)
	}
	if models.Day(yesterday) != models.Day(time.Now().AddDate(0, 0, -1)) {
		t.Errorf("parseDate(yesterday) = %s", models.Day(yesterday))
	}

	if _, err := parseDate("24/08/2026"); err == nil {
		t.Error("parseDate with slashes should fail")
	}
}

func TestFindTracker(t *testing.T) {
	categories := []models.TrackerCategory{
		{Title: "Health", Trackers: []models.Tracker{
			{ID: "aaaa1111", Title: "Run"},
			{ID: "bbbb2222", Title: "Read"},
		}},
		{Title: "Work", Trackers: []models.Tracker{
			{ID: "cccc3333", Title: "Standup"},
		}},
	}

	tracker, err := findTracker(categories, "run")
	if err != nil {
		t.Fatalf("findTracker(run) error = %v", err)
	}
	if tracker.ID != "aaaa1111" {
		t.Errorf("findTracker(run) = %q, want aaaa1111", tracker.ID)
	}

	tracker, err = findTracker(categories, "cccc")
	if err != nil {
		t.Fatalf("findTracker(cccc) error = %v", err)
	}
	if tracker.Title != "Standup" {
		t.Errorf("findTracker(cccc) = %q, want Standup", tracker.Title)
	}

	if _, err := findTracker(categories, "nothing"); err == nil {
		t.Error("findTracker with no match should fail")
	}

	dup := append(categories, models.TrackerCategory{
		Title:    "Other",
		Trackers: []models.Tracker{{ID: "dddd4444", Title: "Run"}},
	})
	_, err = findTracker(dup, "Run")
	if err == nil || !strings.Contains(err.Error(), "multiple") {
		t.Errorf("findTracker with duplicate titles error = %v, want ambiguity", err)
	}
}
