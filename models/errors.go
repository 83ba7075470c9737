package models

import "errors"

var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict indicates a concurrent modification could not be applied.
	ErrConflict = errors.New("concurrent modification")
)
