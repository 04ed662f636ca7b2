package shiftboard

import (
	"errors"

	"github.com/rmontanezjr/shiftboard/types"
)

// Sentinel errors returned by the library.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPatternRequired is returned when a shift assignment is created
	// without a shift pattern.
	ErrPatternRequired = errors.New("shift pattern is required")

	// ErrUnknownShift is returned when a shift name has no definition in the
	// configuration.
	ErrUnknownShift = errors.New("unknown shift name")
)

// Re-export validation errors from the types subpackage.
var (
	// ErrInvalidInterval is returned when an interval's end is not after its start.
	ErrInvalidInterval = types.ErrInvalidInterval

	// ErrInvalidCalendar is returned when calendar bounds or granularity are invalid.
	ErrInvalidCalendar = types.ErrInvalidCalendar
)
