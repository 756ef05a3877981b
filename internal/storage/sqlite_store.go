package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aminakh/trk/internal/migration"
	"github.com/aminakh/trk/internal/models"
	"github.com/aminakh/trk/migrations"
)

// SQLiteStore is the Provider implementation backed by a local SQLite file.
type SQLiteStore struct {
	path     string
	db       *sql.DB
	notifier notifier
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	runner := migration.NewRunner(s.db, migrations.FS)
	if _, err := runner.Apply(nil); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed default settings on first init
	if _, err := s.GetSettings(); err != nil {
		defaults := Settings{SelectedFilter: models.FilterAll}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'trk init' first")
	}

	if err := s.open(); err != nil {
		return err
	}

	return migration.NewRunner(s.db, migrations.FS).ValidateVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// Cascading deletes depend on this pragma being set per connection.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) Subscribe(fn func(Event)) int {
	return s.notifier.subscribe(fn)
}

func (s *SQLiteStore) Unsubscribe(id int) {
	s.notifier.unsubscribe(id)
}

// Settings

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{SelectedFilter: models.FilterAll}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "selected_filter":
			if f, err := models.ParseFilter(value); err == nil {
				settings.SelectedFilter = f
			}
		case "has_seen_welcome":
			settings.HasSeenWelcome = value == "true"
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return Settings{}, err
	}

	if count == 0 {
		return Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("selected_filter", string(settings.SelectedFilter)); err != nil {
		return err
	}
	welcome := "false"
	if settings.HasSeenWelcome {
		welcome = "true"
	}
	if _, err := stmt.Exec("has_seen_welcome", welcome); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.notifier.publish(Event{Scope: ScopeSettings})
	return nil
}

// Categories

func (s *SQLiteStore) AddCategory(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}

	exists, err := s.categoryExists(title)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrCategoryExists, title)
	}

	_, err = s.db.Exec(
		"INSERT INTO categories (title, created_at) VALUES (?, ?)",
		title, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}

	s.notifier.publish(Event{Scope: ScopeCategories})
	return nil
}

func (s *SQLiteStore) RenameCategory(oldTitle, newTitle string) error {
	if newTitle == "" {
		return ErrEmptyTitle
	}
	if oldTitle == newTitle {
		return nil
	}

	exists, err := s.categoryExists(newTitle)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrCategoryExists, newTitle)
	}

	// Tracker rows follow via ON UPDATE CASCADE.
	result, err := s.db.Exec("UPDATE categories SET title = ? WHERE title = ?", newTitle, oldTitle)
	if err != nil {
		return fmt.Errorf("failed to rename category: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, oldTitle)
	}

	s.notifier.publish(Event{Scope: ScopeCategories})
	return nil
}

func (s *SQLiteStore) DeleteCategory(title string) error {
	result, err := s.db.Exec("DELETE FROM categories WHERE title = ?", title)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, title)
	}

	s.notifier.publish(Event{Scope: ScopeCategories})
	return nil
}

func (s *SQLiteStore) GetAllCategories() ([]models.TrackerCategory, error) {
	rows, err := s.db.Query("SELECT title FROM categories ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.TrackerCategory
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		categories = append(categories, models.TrackerCategory{Title: title})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trackerRows, err := s.db.Query(`
		SELECT id, title, color, emoji, schedule, category_title, created_at
		FROM trackers ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer trackerRows.Close()

	byCategory := make(map[string][]models.Tracker)
	for trackerRows.Next() {
		tracker, categoryTitle, err := scanTracker(trackerRows)
		if err != nil {
			return nil, err
		}
		byCategory[categoryTitle] = append(byCategory[categoryTitle], tracker)
	}
	if err := trackerRows.Err(); err != nil {
		return nil, err
	}

	for i := range categories {
		categories[i].Trackers = byCategory[categories[i].Title]
	}

	return categories, nil
}

// Trackers

func (s *SQLiteStore) AddTracker(tracker models.Tracker, categoryTitle string) error {
	exists, err := s.categoryExists(categoryTitle)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryTitle)
	}

	scheduleJSON, err := marshalSchedule(tracker.Schedule)
	if err != nil {
		return err
	}

	createdAt := tracker.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.Exec(`
		INSERT INTO trackers (id, title, color, emoji, schedule, category_title, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tracker.ID, tracker.Title, tracker.Color, tracker.Emoji,
		scheduleJSON, categoryTitle, createdAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to add tracker: %w", err)
	}

	s.notifier.publish(Event{Scope: ScopeTrackers})
	return nil
}

func (s *SQLiteStore) GetTracker(id string) (models.Tracker, error) {
	row := s.db.QueryRow(`
		SELECT id, title, color, emoji, schedule, category_title, created_at
		FROM trackers WHERE id = ?`, id)

	tracker, _, err := scanTracker(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tracker{}, fmt.Errorf("%w: %s", ErrTrackerNotFound, id)
		}
		return models.Tracker{}, err
	}
	return tracker, nil
}

func (s *SQLiteStore) UpdateTracker(tracker models.Tracker) error {
	scheduleJSON, err := marshalSchedule(tracker.Schedule)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(`
		UPDATE trackers SET title = ?, color = ?, emoji = ?, schedule = ?
		WHERE id = ?`,
		tracker.Title, tracker.Color, tracker.Emoji, scheduleJSON, tracker.ID)
	if err != nil {
		return fmt.Errorf("failed to update tracker: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrTrackerNotFound, tracker.ID)
	}

	s.notifier.publish(Event{Scope: ScopeTrackers})
	return nil
}

func (s *SQLiteStore) MoveTracker(id, toCategory string) error {
	exists, err := s.categoryExists(toCategory)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, toCategory)
	}

	// Moving re-stamps created_at so the tracker appends to the destination
	// category's display order.
	result, err := s.db.Exec(
		"UPDATE trackers SET category_title = ?, created_at = ? WHERE id = ?",
		toCategory, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to move tracker: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrTrackerNotFound, id)
	}

	s.notifier.publish(Event{Scope: ScopeTrackers})
	return nil
}

func (s *SQLiteStore) DeleteTracker(id string) error {
	// Completion records follow via ON DELETE CASCADE.
	result, err := s.db.Exec("DELETE FROM trackers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete tracker: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrTrackerNotFound, id)
	}

	s.notifier.publish(Event{Scope: ScopeTrackers})
	return nil
}

// Records

func (s *SQLiteStore) AddRecord(trackerID, day string) error {
	// INSERT OR IGNORE keeps the at-most-one-per-day invariant even if two
	// identical toggles race through the UI.
	result, err := s.db.Exec(
		"INSERT OR IGNORE INTO records (tracker_id, day) VALUES (?, ?)",
		trackerID, day)
	if err != nil {
		return fmt.Errorf("failed to add record: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n > 0 {
		s.notifier.publish(Event{Scope: ScopeRecords})
	}
	return nil
}

func (s *SQLiteStore) RemoveRecord(trackerID, day string) error {
	result, err := s.db.Exec(
		"DELETE FROM records WHERE tracker_id = ? AND day = ?",
		trackerID, day)
	if err != nil {
		return fmt.Errorf("failed to remove record: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrRecordNotFound
	}

	s.notifier.publish(Event{Scope: ScopeRecords})
	return nil
}

func (s *SQLiteStore) HasRecord(trackerID, day string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM records WHERE tracker_id = ? AND day = ?)",
		trackerID, day).Scan(&exists)
	return exists, err
}

func (s *SQLiteStore) GetAllRecords() ([]models.TrackerRecord, error) {
	rows, err := s.db.Query("SELECT tracker_id, day FROM records ORDER BY day, tracker_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.TrackerRecord
	for rows.Next() {
		var r models.TrackerRecord
		if err := rows.Scan(&r.TrackerID, &r.Day); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// helpers

func (s *SQLiteStore) categoryExists(title string) (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM categories WHERE title = ?)", title).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTracker(row rowScanner) (models.Tracker, string, error) {
	var t models.Tracker
	var scheduleJSON, categoryTitle, createdAt string

	if err := row.Scan(&t.ID, &t.Title, &t.Color, &t.Emoji, &scheduleJSON, &categoryTitle, &createdAt); err != nil {
		return models.Tracker{}, "", err
	}

	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Tracker{}, "", fmt.Errorf("failed to parse created_at for tracker %s: %w", t.ID, err)
	}

	var weekdays []int
	if err := json.Unmarshal([]byte(scheduleJSON), &weekdays); err != nil {
		return models.Tracker{}, "", fmt.Errorf("failed to parse schedule for tracker %s: %w", t.ID, err)
	}
	for _, w := range weekdays {
		t.Schedule = append(t.Schedule, time.Weekday(w))
	}

	return t, categoryTitle, nil
}

func marshalSchedule(schedule models.Schedule) (string, error) {
	weekdays := make([]int, 0, len(schedule))
	for _, w := range schedule {
		weekdays = append(weekdays, int(w))
	}
	data, err := json.Marshal(weekdays)
	if err != nil {
		return "", fmt.Errorf("failed to marshal schedule: %w", err)
	}
	return string(data), nil
}
