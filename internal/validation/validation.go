package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/aminakh/trk/internal/constants"
	"github.com/aminakh/trk/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyTitle         ConflictType = "empty_title"
	ConflictTitleTooLong       ConflictType = "title_too_long"
	ConflictUnknownColor       ConflictType = "unknown_color"
	ConflictUnknownEmoji       ConflictType = "unknown_emoji"
	ConflictDuplicateWeekday   ConflictType = "duplicate_weekday"
	ConflictInvalidWeekday     ConflictType = "invalid_weekday"
	ConflictDuplicateCategory  ConflictType = "duplicate_category"
	ConflictDuplicateTrackerID ConflictType = "duplicate_tracker_id"
)

// Conflict represents a detected problem in a tracker or category
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Tracker/category titles involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Err returns the result as a single error, or nil when clean.
func (vr *ValidationResult) Err() error {
	if !vr.HasConflicts() {
		return nil
	}
	return fmt.Errorf("%s", vr.Conflicts[0].Description)
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates trackers and categories
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateTitle checks a category or tracker title.
func (v *Validator) ValidateTitle(title string) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEmptyTitle,
			Description: "Title must not be empty",
		})
		return result
	}

	if runes := []rune(trimmed); len(runes) > constants.MaxTitleLength {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictTitleTooLong,
			Description: fmt.Sprintf("Title %q exceeds %d characters", trimmed, constants.MaxTitleLength),
			Items:       []string{trimmed},
		})
	}

	return result
}

// ValidateTracker checks a single tracker for conflicts.
func (v *Validator) ValidateTracker(tracker models.Tracker) ValidationResult {
	result := v.ValidateTitle(tracker.Title)

	if tracker.Color != "" {
		if _, ok := constants.Colors[tracker.Color]; !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownColor,
				Description: fmt.Sprintf("Tracker %q has unknown color %q", tracker.Title, tracker.Color),
				Items:       []string{tracker.Title},
			})
		}
	}

	if tracker.Emoji != "" && !knownEmoji(tracker.Emoji) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictUnknownEmoji,
			Description: fmt.Sprintf("Tracker %q has unknown emoji %q", tracker.Title, tracker.Emoji),
			Items:       []string{tracker.Title},
		})
	}

	seen := make(map[time.Weekday]bool)
	for _, wd := range tracker.Schedule {
		if wd < time.Sunday || wd > time.Saturday {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidWeekday,
				Description: fmt.Sprintf("Tracker %q has invalid weekday %d", tracker.Title, wd),
				Items:       []string{tracker.Title},
			})
			continue
		}
		if seen[wd] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateWeekday,
				Description: fmt.Sprintf("Tracker %q lists %s more than once", tracker.Title, wd),
				Items:       []string{tracker.Title},
			})
		}
		seen[wd] = true
	}

	return result
}

// ValidateCategories checks a full category snapshot for duplicate category
// titles and duplicate tracker IDs across categories.
func (v *Validator) ValidateCategories(categories []models.TrackerCategory) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	titleCount := make(map[string]int)
	idOwner := make(map[string]string)
	for _, category := range categories {
		titleCount[category.Title]++
		for _, tracker := range category.Trackers {
			if owner, ok := idOwner[tracker.ID]; ok {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type: ConflictDuplicateTrackerID,
					Description: fmt.Sprintf("Tracker ID %s appears in both %q and %q",
						tracker.ID, owner, category.Title),
					Items: []string{owner, category.Title},
				})
				continue
			}
			idOwner[tracker.ID] = category.Title
		}
	}

	for title, count := range titleCount {
		if count > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateCategory,
				Description: fmt.Sprintf("Duplicate category title: %q", title),
				Items:       []string{title},
			})
		}
	}

	return result
}

func knownEmoji(emoji string) bool {
	for _, e := range constants.Emojis {
		if e == emoji {
			return true
		}
	}
	return false
}
