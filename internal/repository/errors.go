package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the requested id or key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("record already exists")
)
