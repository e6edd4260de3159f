package model

import "errors"

var (
	// ErrNoCurrentUser is returned by store operations that require a
	// signed-in user while the store is anonymous.
	ErrNoCurrentUser = errors.New("no current user")
	// ErrNotFound is returned when no row matches the requested id under
	// the current user, and by storage drivers for a missing key.
	ErrNotFound = errors.New("not found")
)
