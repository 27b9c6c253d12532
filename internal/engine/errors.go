package engine

import "errors"

var (
	// ErrInvalidFollowerCount is returned when a follower count is negative,
	// or zero where it would be used as a divisor.
	ErrInvalidFollowerCount = errors.New("invalid follower count")

	// ErrMissingTemplateField is returned by the pitch composer when a
	// required field is absent. The template is never rendered with empty
	// placeholders.
	ErrMissingTemplateField = errors.New("missing required template field")
)
