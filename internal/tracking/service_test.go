package tracking

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aminakh/trk/internal/models"
	"github.com/aminakh/trk/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "trk.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	service := NewService(store)
	service.now = func() time.Time { return monday }
	return service
}

func mustCreateTracker(t *testing.T, service *Service, title string, schedule models.Schedule) models.Tracker {
	t.Helper()

	tracker, err := service.CreateTracker(title, "", "", schedule, "Health")
	if err != nil {
		t.Fatalf("CreateTracker(%q) error = %v", title, err)
	}
	return tracker
}

func TestCreateTrackerAutoCreatesCategory(t *testing.T) {
	service := newTestService(t)

	tracker, err := service.CreateTracker("Run", "selection2", "🙂", models.Schedule{time.Monday}, "Brand new")
	if err != nil {
		t.Fatalf("CreateTracker() error = %v", err)
	}
	if tracker.ID == "" {
		t.Error("CreateTracker() should assign an ID")
	}

	categories, err := service.Categories()
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if len(categories) != 1 || categories[0].Title != "Brand new" {
		t.Fatalf("categories = %+v, want single Brand new", categories)
	}
	if len(categories[0].Trackers) != 1 {
		t.Errorf("Brand new has %d trackers, want 1", len(categories[0].Trackers))
	}
}

func TestCreateTrackerRejectsBadInput(t *testing.T) {
	service := newTestService(t)

	if _, err := service.CreateTracker("", "", "", nil, "Health"); err == nil {
		t.Error("CreateTracker with empty title should fail")
	}
	if _, err := service.CreateTracker("Run", "magenta", "", nil, "Health"); err == nil {
		t.Error("CreateTracker with off-palette color should fail")
	}
}

func TestToggleCompletion(t *testing.T) {
	service := newTestService(t)
	tracker := mustCreateTracker(t, service, "Run", models.Schedule{time.Monday})

	if err := service.ToggleCompletion(tracker.ID, monday); err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}
	records, err := service.Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 || records[0].Day != models.Day(monday) {
		t.Fatalf("records = %+v, want one on %s", records, models.Day(monday))
	}

	// Second toggle on the same day undoes the first
	if err := service.ToggleCompletion(tracker.ID, monday); err != nil {
		t.Fatalf("second ToggleCompletion() error = %v", err)
	}
	records, err = service.Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records after undo = %+v, want none", records)
	}
}

func TestToggleCompletionFutureIsNoOp(t *testing.T) {
	service := newTestService(t)
	tracker := mustCreateTracker(t, service, "Run", models.Schedule{time.Monday})

	tomorrow := monday.AddDate(0, 0, 1)
	if err := service.ToggleCompletion(tracker.ID, tomorrow); err != nil {
		t.Fatalf("ToggleCompletion(future) error = %v", err)
	}

	records, err := service.Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("future toggle wrote records: %+v", records)
	}

	// Later on the same calendar day is still toggleable
	lateToday := monday.Add(23 * time.Hour)
	if err := service.ToggleCompletion(tracker.ID, lateToday); err != nil {
		t.Fatalf("ToggleCompletion(today) error = %v", err)
	}
	records, _ = service.Records()
	if len(records) != 1 {
		t.Errorf("same-day toggle did not write a record")
	}
}

func TestToggleCompletionSameCalendarDayAcrossZones(t *testing.T) {
	service := newTestService(t)
	tracker := mustCreateTracker(t, service, "Run", models.Schedule{time.Monday})

	// Clock reads Monday morning in a zone ten hours ahead of UTC; the toggle
	// date is the same calendar day parsed at UTC midnight, which as an
	// instant is still hours away in that zone.
	aest := time.FixedZone("UTC+10", 10*60*60)
	service.now = func() time.Time { return time.Date(2026, 8, 24, 9, 0, 0, 0, aest) }

	if err := service.ToggleCompletion(tracker.ID, monday); err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}
	records, err := service.Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 || records[0].Day != models.Day(monday) {
		t.Fatalf("same calendar day treated as future: records = %+v", records)
	}

	// The next calendar day is still rejected.
	if err := service.ToggleCompletion(tracker.ID, monday.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("ToggleCompletion(tomorrow) error = %v", err)
	}
	records, _ = service.Records()
	if len(records) != 1 {
		t.Errorf("future toggle wrote records: %+v", records)
	}
}

func TestToggleCompletionEventKeepsSingleRecord(t *testing.T) {
	service := newTestService(t)
	event, err := service.CreateTracker("Taxes", "", "", nil, "Chores")
	if err != nil {
		t.Fatalf("CreateTracker() error = %v", err)
	}

	sunday := monday.AddDate(0, 0, -1)
	if err := service.ToggleCompletion(event.ID, sunday); err != nil {
		t.Fatalf("ToggleCompletion(sunday) error = %v", err)
	}

	// Completing the event again on a different day is a no-op.
	if err := service.ToggleCompletion(event.ID, monday); err != nil {
		t.Fatalf("ToggleCompletion(monday) error = %v", err)
	}
	records, err := service.Records()
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 || records[0].Day != models.Day(sunday) {
		t.Fatalf("completed event gained a second record: %+v", records)
	}

	// The completed day itself still toggles back off.
	if err := service.ToggleCompletion(event.ID, sunday); err != nil {
		t.Fatalf("ToggleCompletion(undo) error = %v", err)
	}
	records, _ = service.Records()
	if len(records) != 0 {
		t.Errorf("records after undo = %+v, want none", records)
	}
}

func TestToggleCompletionUnknownTracker(t *testing.T) {
	service := newTestService(t)

	err := service.ToggleCompletion("missing", monday)
	if !errors.Is(err, storage.ErrTrackerNotFound) {
		t.Errorf("ToggleCompletion(missing) error = %v, want ErrTrackerNotFound", err)
	}
}

func TestViewOnAppliesFilter(t *testing.T) {
	service := newTestService(t)
	run := mustCreateTracker(t, service, "Run", models.Schedule{time.Monday})
	mustCreateTracker(t, service, "Read", models.Schedule{time.Monday})

	if err := service.ToggleCompletion(run.ID, monday); err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}
	if err := service.SetFilter(models.FilterCompleted); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}

	view, err := service.ViewOn(monday)
	if err != nil {
		t.Fatalf("ViewOn() error = %v", err)
	}
	if view.Filter != models.FilterCompleted {
		t.Errorf("view.Filter = %q, want completed", view.Filter)
	}
	if len(view.Categories) != 1 || len(view.Categories[0].Trackers) != 1 {
		t.Fatalf("view = %+v, want only the completed tracker", view.Categories)
	}
	if view.Categories[0].Trackers[0].ID != run.ID {
		t.Errorf("visible tracker = %q, want %q", view.Categories[0].Trackers[0].ID, run.ID)
	}
}

func TestViewOnTodayPinsDate(t *testing.T) {
	service := newTestService(t)
	mustCreateTracker(t, service, "Run", models.Schedule{time.Monday})

	if err := service.SetFilter(models.FilterToday); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}

	// Asking for Saturday still resolves to today (Monday)
	saturday := monday.AddDate(0, 0, 5)
	view, err := service.ViewOn(saturday)
	if err != nil {
		t.Fatalf("ViewOn() error = %v", err)
	}
	if !view.Date.Equal(monday) {
		t.Errorf("view.Date = %s, want %s", view.Date, monday)
	}
	if view.IsEmpty() {
		t.Error("Monday habit should be visible under FilterToday")
	}
}

func TestCycleFilterPersists(t *testing.T) {
	service := newTestService(t)

	next, err := service.CycleFilter()
	if err != nil {
		t.Fatalf("CycleFilter() error = %v", err)
	}
	if next != models.FilterToday {
		t.Errorf("CycleFilter() = %q, want today", next)
	}

	selected, err := service.SelectedFilter()
	if err != nil {
		t.Fatalf("SelectedFilter() error = %v", err)
	}
	if selected != models.FilterToday {
		t.Errorf("persisted filter = %q, want today", selected)
	}
}

func TestResetFilter(t *testing.T) {
	service := newTestService(t)

	if err := service.SetFilter(models.FilterIncomplete); err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}
	if err := service.ResetFilter(); err != nil {
		t.Fatalf("ResetFilter() error = %v", err)
	}

	selected, err := service.SelectedFilter()
	if err != nil {
		t.Fatalf("SelectedFilter() error = %v", err)
	}
	if selected != models.FilterAll {
		t.Errorf("filter after reset = %q, want all", selected)
	}
}

func TestStatisticsFromService(t *testing.T) {
	service := newTestService(t)
	run := mustCreateTracker(t, service, "Run", models.Schedule{time.Monday})

	for _, day := range []time.Time{monday.AddDate(0, 0, -2), monday.AddDate(0, 0, -1), monday} {
		if err := service.ToggleCompletion(run.ID, day); err != nil {
			t.Fatalf("ToggleCompletion(%s) error = %v", models.Day(day), err)
		}
	}

	stats, err := service.Statistics()
	if err != nil {
		t.Fatalf("Statistics() error = %v", err)
	}
	if stats.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3", stats.BestStreak)
	}
	if stats.Completed != 3 {
		t.Errorf("Completed = %d, want 3", stats.Completed)
	}
}

func TestSubscribeSeesMutations(t *testing.T) {
	service := newTestService(t)

	var scopes []storage.Scope
	id := service.Subscribe(func(e storage.Event) {
		scopes = append(scopes, e.Scope)
	})

	tracker := mustCreateTracker(t, service, "Run", models.Schedule{time.Monday})
	if err := service.ToggleCompletion(tracker.ID, monday); err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}

	want := []storage.Scope{storage.ScopeCategories, storage.ScopeTrackers, storage.ScopeRecords}
	if len(scopes) != len(want) {
		t.Fatalf("scopes = %v, want %v", scopes, want)
	}
	for i := range want {
		if scopes[i] != want[i] {
			t.Fatalf("scopes = %v, want %v", scopes, want)
		}
	}

	service.Unsubscribe(id)
	if err := service.ToggleCompletion(tracker.ID, monday); err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}
	if len(scopes) != len(want) {
		t.Errorf("listener fired after Unsubscribe: %v", scopes)
	}
}

func TestWelcomeFlag(t *testing.T) {
	service := newTestService(t)

	seen, err := service.HasSeenWelcome()
	if err != nil {
		t.Fatalf("HasSeenWelcome() error = %v", err)
	}
	if seen {
		t.Error("HasSeenWelcome() = true before MarkWelcomeSeen")
	}

	if err := service.MarkWelcomeSeen(); err != nil {
		t.Fatalf("MarkWelcomeSeen() error = %v", err)
	}
	seen, err = service.HasSeenWelcome()
	if err != nil {
		t.Fatalf("HasSeenWelcome() error = %v", err)
	}
	if !seen {
		t.Error("HasSeenWelcome() = false after MarkWelcomeSeen")
	}
}
