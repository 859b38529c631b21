package repository

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("not found")
	// ErrVersionConflict is returned when a progress save lost a race with
	// another writer
	ErrVersionConflict = errors.New("version conflict")
)
