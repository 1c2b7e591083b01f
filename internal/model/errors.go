package model

import "errors"

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on a unique constraint violation
	ErrConflict = errors.New("already exists")
	// ErrReference is returned when a referenced record does not exist
	// or a record is still referenced by others
	ErrReference = errors.New("reference violation")
)
