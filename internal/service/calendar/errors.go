package calendar

import "errors"

// Sentinel errors for the calendar service layer.
var (
	ErrNotFound    = errors.New("post not found")
	ErrPastSlot    = errors.New("scheduled time is in the past")
	ErrNoInspiration = errors.New("no inspiration feeds configured for niche")
)
