package course

import "errors"

var (
	// ErrInvalidInput is returned when a required course name is empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a course to remove is not indexed.
	ErrNotFound = errors.New("not found")
)
