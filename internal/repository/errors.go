package repository

import "errors"

var (
	// ErrNotFound is returned when the referenced row does not exist or is
	// excluded by the soft-delete filter.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a business uniqueness check fails among
	// non-deleted rows.
	ErrConflict = errors.New("record already exists")
)
