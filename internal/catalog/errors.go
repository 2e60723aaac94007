package catalog

import "errors"

var (
	// ErrNotFound is returned when a record ID does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an insert or replace would violate a
	// uniqueness constraint (duplicate ID, or duplicate email for people).
	ErrConflict = errors.New("record already exists")
)
