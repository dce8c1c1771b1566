package repositories

import "errors"

var (
	// ErrNotFound is returned when no record exists for the given key.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when a create collides with an
	// existing key. The record is never overwritten.
	ErrAlreadyExists = errors.New("record already exists")
)
