package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when a unique constraint is violated,
	// e.g. registering a phone number twice.
	ErrDuplicate = errors.New("entity already exists")
)
