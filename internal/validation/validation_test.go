package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/aminakh/trk/internal/models"
)

func TestValidateTitle_Empty(t *testing.T) {
	validator := New()

	result := validator.ValidateTitle("   ")
	if !result.HasConflicts() {
		t.Fatal("Expected conflict for blank title")
	}
	if result.Conflicts[0].Type != ConflictEmptyTitle {
		t.Errorf("conflict type = %q, want %q", result.Conflicts[0].Type, ConflictEmptyTitle)
	}
}

func TestValidateTitle_TooLong(t *testing.T) {
	validator := New()

	result := validator.ValidateTitle(strings.Repeat("x", 39))
	if !result.HasConflicts() {
		t.Fatal("Expected conflict for 39-character title")
	}
	if result.Conflicts[0].Type != ConflictTitleTooLong {
		t.Errorf("conflict type = %q, want %q", result.Conflicts[0].Type, ConflictTitleTooLong)
	}

	result = validator.ValidateTitle(strings.Repeat("x", 38))
	if result.HasConflicts() {
		t.Errorf("38-character title should be valid, got %v", result.Conflicts)
	}
}

func TestValidateTracker_UnknownPalette(t *testing.T) {
	validator := New()

	tracker := models.Tracker{
		ID:    "1",
		Title: "Run",
		Color: "magenta",
		Emoji: "🚀",
	}

	result := validator.ValidateTracker(tracker)
	if !result.HasConflicts() {
		t.Fatal("Expected conflicts for off-palette color and emoji")
	}

	types := make(map[ConflictType]bool)
	for _, conflict := range result.Conflicts {
		types[conflict.Type] = true
	}
	if !types[ConflictUnknownColor] {
		t.Error("Expected ConflictUnknownColor")
	}
	if !types[ConflictUnknownEmoji] {
		t.Error("Expected ConflictUnknownEmoji")
	}
}

func TestValidateTracker_DuplicateWeekday(t *testing.T) {
	validator := New()

	tracker := models.Tracker{
		ID:       "1",
		Title:    "Run",
		Schedule: models.Schedule{time.Monday, time.Monday},
	}

	result := validator.ValidateTracker(tracker)
	if !result.HasConflicts() {
		t.Fatal("Expected conflict for duplicate weekday")
	}
	if result.Conflicts[0].Type != ConflictDuplicateWeekday {
		t.Errorf("conflict type = %q, want %q", result.Conflicts[0].Type, ConflictDuplicateWeekday)
	}
}

func TestValidateTracker_Clean(t *testing.T) {
	validator := New()

	tracker := models.Tracker{
		ID:       "1",
		Title:    "Run",
		Color:    "selection3",
		Emoji:    "🙂",
		Schedule: models.Schedule{time.Monday, time.Wednesday},
	}

	result := validator.ValidateTracker(tracker)
	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got %v", result.Conflicts)
	}
	if err := result.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestValidateCategories_DuplicateTrackerID(t *testing.T) {
	validator := New()

	categories := []models.TrackerCategory{
		{Title: "Health", Trackers: []models.Tracker{{ID: "1", Title: "Run"}}},
		{Title: "Work", Trackers: []models.Tracker{{ID: "1", Title: "Standup"}}},
	}

	result := validator.ValidateCategories(categories)
	if !result.HasConflicts() {
		t.Fatal("Expected conflict for tracker ID shared across categories")
	}
	if result.Conflicts[0].Type != ConflictDuplicateTrackerID {
		t.Errorf("conflict type = %q, want %q", result.Conflicts[0].Type, ConflictDuplicateTrackerID)
	}
}

func TestFormatReport(t *testing.T) {
	validator := New()

	clean := validator.ValidateTitle("Run")
	if got := clean.FormatReport(); got != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", got)
	}

	dirty := validator.ValidateTitle("")
	if got := dirty.FormatReport(); !strings.Contains(got, "Title must not be empty") {
		t.Errorf("FormatReport() = %q, want empty-title description", got)
	}
}
