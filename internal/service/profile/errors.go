package profile

import "errors"

var (
	// ErrNotFound is returned when a creator profile does not exist.
	ErrNotFound = errors.New("profile not found")
)
