package storage

import "github.com/aminakh/trk/internal/models"

// Settings holds the small amount of per-user state that survives across
// sessions.
type Settings struct {
	SelectedFilter models.Filter `json:"selected_filter"`
	HasSeenWelcome bool          `json:"has_seen_welcome"`
}

// Provider is the persistence gateway the engines and screens are built
// against. Implementations own the categories/trackers/records collections;
// callers receive snapshots and never mutate them in place.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Categories. GetAllCategories returns categories ordered by title
	// ascending, each with its trackers in creation order.
	AddCategory(title string) error
	RenameCategory(oldTitle, newTitle string) error
	DeleteCategory(title string) error
	GetAllCategories() ([]models.TrackerCategory, error)

	// Trackers
	AddTracker(tracker models.Tracker, categoryTitle string) error
	GetTracker(id string) (models.Tracker, error)
	UpdateTracker(tracker models.Tracker) error
	MoveTracker(id, toCategory string) error
	DeleteTracker(id string) error

	// Completion records, at most one per (tracker, day). GetAllRecords
	// returns records ordered by day ascending.
	AddRecord(trackerID, day string) error
	RemoveRecord(trackerID, day string) error
	HasRecord(trackerID, day string) (bool, error)
	GetAllRecords() ([]models.TrackerRecord, error)

	// Change notifications, fired after every successful mutation.
	Subscribe(fn func(Event)) int
	Unsubscribe(id int)

	// Utils
	GetConfigPath() string
}
