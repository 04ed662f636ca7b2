package types

import "errors"

// Sentinel errors for core type validation.
var (
	// ErrInvalidInterval is returned when an interval's end is not after its start.
	ErrInvalidInterval = errors.New("interval end must be after start")

	// ErrInvalidCalendar is returned when calendar bounds or granularity are invalid.
	ErrInvalidCalendar = errors.New("invalid calendar")
)
