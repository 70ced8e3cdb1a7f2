package store

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist or is inactive.
	ErrNotFound = errors.New("record not found")

	// ErrSingletonExists indicates a singleton configuration row already
	// exists and a second insert was refused.
	ErrSingletonExists = errors.New("active configuration row already exists")
)
