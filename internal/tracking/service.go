package tracking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aminakh/trk/internal/constants"
	"github.com/aminakh/trk/internal/models"
	"github.com/aminakh/trk/internal/storage"
	"github.com/aminakh/trk/internal/validation"
)

// Service wires the storage provider and the pure engines into the operations
// the CLI and TUI call. All date handling goes through the injected clock so
// the future-toggle guard is testable.
type Service struct {
	store     storage.Provider
	validator *validation.Validator
	now       func() time.Time
}

func NewService(store storage.Provider) *Service {
	return &Service{
		store:     store,
		validator: validation.New(),
		now:       time.Now,
	}
}

// View is one day's screen: the visible categories after schedule and filter
// narrowing.
type View struct {
	Date       time.Time
	Filter     models.Filter
	Categories []models.TrackerCategory
}

// IsEmpty reports whether the view shows no trackers.
func (v View) IsEmpty() bool {
	return IsEmpty(v.Categories)
}

// ViewOn resolves the screen for the given reference date under the persisted
// filter. FilterToday pins the date to today regardless of refDate.
func (s *Service) ViewOn(refDate time.Time) (View, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return View{}, err
	}

	if settings.SelectedFilter == models.FilterToday {
		refDate = s.now()
	}
	refDate = models.StartOfDay(refDate)

	categories, err := s.store.GetAllCategories()
	if err != nil {
		return View{}, err
	}
	records, err := s.store.GetAllRecords()
	if err != nil {
		return View{}, err
	}

	return View{
		Date:       refDate,
		Filter:     settings.SelectedFilter,
		Categories: VisibleOn(categories, records, refDate, settings.SelectedFilter),
	}, nil
}

// Statistics computes the all-time summary over every completion record.
func (s *Service) Statistics() (Statistics, error) {
	records, err := s.store.GetAllRecords()
	if err != nil {
		return Statistics{}, err
	}
	return Calculate(records), nil
}

// Records returns the raw completion history, day ascending.
func (s *Service) Records() ([]models.TrackerRecord, error) {
	return s.store.GetAllRecords()
}

// ToggleCompletion flips a tracker's completion on the given day. Days after
// today are not toggleable; the call is a no-op then. A second toggle on the
// same day undoes the first.
func (s *Service) ToggleCompletion(trackerID string, date time.Time) error {
	tracker, err := s.store.GetTracker(trackerID)
	if err != nil {
		return err
	}

	// Calendar-day comparison: each side renders its day in its own location,
	// so a UTC-parsed date and a local clock never disagree about "today".
	if models.Day(date) > models.Day(s.now()) {
		return nil
	}

	day := models.Day(date)

	// A one-off event holds at most one completion. Once it is done on some
	// day, toggling any other day is a no-op; only the completed day itself
	// can be undone.
	if tracker.IsEvent() {
		records, err := s.store.GetAllRecords()
		if err != nil {
			return err
		}
		for _, r := range records {
			if r.TrackerID == trackerID && r.Day != day {
				return nil
			}
		}
	}
	has, err := s.store.HasRecord(trackerID, day)
	if err != nil {
		return err
	}
	if has {
		err := s.store.RemoveRecord(trackerID, day)
		if errors.Is(err, storage.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.store.AddRecord(trackerID, day)
}

// Categories

func (s *Service) CreateCategory(title string) error {
	title = strings.TrimSpace(title)
	if result := s.validator.ValidateTitle(title); result.HasConflicts() {
		return result.Err()
	}
	return s.store.AddCategory(title)
}

func (s *Service) RenameCategory(oldTitle, newTitle string) error {
	newTitle = strings.TrimSpace(newTitle)
	if result := s.validator.ValidateTitle(newTitle); result.HasConflicts() {
		return result.Err()
	}
	return s.store.RenameCategory(strings.TrimSpace(oldTitle), newTitle)
}

// DeleteCategory removes a category and everything under it, trackers and
// records included.
func (s *Service) DeleteCategory(title string) error {
	return s.store.DeleteCategory(strings.TrimSpace(title))
}

func (s *Service) Categories() ([]models.TrackerCategory, error) {
	return s.store.GetAllCategories()
}

// Trackers

// CreateTracker builds and stores a new tracker. The category is created on
// the fly when it does not exist yet. Empty color or emoji fall back to the
// first palette entry.
func (s *Service) CreateTracker(title, color, emoji string, schedule models.Schedule, categoryTitle string) (models.Tracker, error) {
	categoryTitle = strings.TrimSpace(categoryTitle)
	if result := s.validator.ValidateTitle(categoryTitle); result.HasConflicts() {
		return models.Tracker{}, result.Err()
	}

	if color == "" {
		color = constants.ColorTokens[0]
	}
	if emoji == "" {
		emoji = constants.Emojis[0]
	}

	tracker := models.Tracker{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		Color:     color,
		Emoji:     emoji,
		Schedule:  schedule,
		CreatedAt: s.now().UTC(),
	}
	if result := s.validator.ValidateTracker(tracker); result.HasConflicts() {
		return models.Tracker{}, result.Err()
	}

	if err := s.store.AddCategory(categoryTitle); err != nil && !errors.Is(err, storage.ErrCategoryExists) {
		return models.Tracker{}, err
	}

	if err := s.store.AddTracker(tracker, categoryTitle); err != nil {
		return models.Tracker{}, err
	}
	return tracker, nil
}

func (s *Service) Tracker(id string) (models.Tracker, error) {
	return s.store.GetTracker(id)
}

func (s *Service) UpdateTracker(tracker models.Tracker) error {
	tracker.Title = strings.TrimSpace(tracker.Title)
	if result := s.validator.ValidateTracker(tracker); result.HasConflicts() {
		return result.Err()
	}
	return s.store.UpdateTracker(tracker)
}

// MoveTracker reassigns a tracker to another category, creating the
// destination when needed.
func (s *Service) MoveTracker(id, toCategory string) error {
	toCategory = strings.TrimSpace(toCategory)
	if result := s.validator.ValidateTitle(toCategory); result.HasConflicts() {
		return result.Err()
	}
	if err := s.store.AddCategory(toCategory); err != nil && !errors.Is(err, storage.ErrCategoryExists) {
		return err
	}
	return s.store.MoveTracker(id, toCategory)
}

func (s *Service) DeleteTracker(id string) error {
	return s.store.DeleteTracker(id)
}

// Filter

func (s *Service) SelectedFilter() (models.Filter, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return models.FilterAll, err
	}
	return settings.SelectedFilter, nil
}

func (s *Service) SetFilter(filter models.Filter) error {
	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}
	if settings.SelectedFilter == filter {
		return nil
	}
	settings.SelectedFilter = filter
	return s.store.SaveSettings(settings)
}

// CycleFilter advances to the next filter in display order and persists it.
func (s *Service) CycleFilter() (models.Filter, error) {
	current, err := s.SelectedFilter()
	if err != nil {
		return models.FilterAll, err
	}
	next := current.Next()
	return next, s.SetFilter(next)
}

// ResetFilter drops the persisted filter back to All. Called when the user
// moves to a different reference date, so a stale Completed/Incomplete view
// never hides the new day's trackers.
func (s *Service) ResetFilter() error {
	return s.SetFilter(models.FilterAll)
}

// Welcome

func (s *Service) HasSeenWelcome() (bool, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return false, err
	}
	return settings.HasSeenWelcome, nil
}

func (s *Service) MarkWelcomeSeen() error {
	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}
	if settings.HasSeenWelcome {
		return nil
	}
	settings.HasSeenWelcome = true
	return s.store.SaveSettings(settings)
}

// Subscribe registers a listener for storage change events.
func (s *Service) Subscribe(fn func(storage.Event)) int {
	return s.store.Subscribe(fn)
}

func (s *Service) Unsubscribe(id int) {
	s.store.Unsubscribe(id)
}
