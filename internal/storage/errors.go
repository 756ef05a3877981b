package storage

import "errors"

var (
	// ErrEmptyTitle is returned when a category or tracker title is blank.
	ErrEmptyTitle = errors.New("title must not be empty")
	// ErrCategoryExists is returned when a category title collides with an
	// existing one.
	ErrCategoryExists = errors.New("category already exists")
	// ErrCategoryNotFound is returned when operating on an unknown category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrTrackerNotFound is returned when operating on an unknown tracker id.
	ErrTrackerNotFound = errors.New("tracker not found")
	// ErrRecordNotFound is returned when removing a completion record that
	// does not exist.
	ErrRecordNotFound = errors.New("completion record not found")
)
