package types

import (
	"fmt"
	"time"
)

// Interval represents a half-open time range [Start, End).
//
// Intervals are immutable value types: copies are fully independent and no
// method mutates the receiver.
type Interval struct {
	// Start is the inclusive lower bound of the range.
	Start time.Time

	// End is the exclusive upper bound of the range.
	End time.Time
}

// NewInterval creates an Interval after validating its bounds.
//
// Parameters:
//   - start: Inclusive lower bound
//   - end: Exclusive upper bound, must be after start
//
// Returns:
//   - Interval: The validated interval
//   - error: ErrInvalidInterval if end is not after start
func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, fmt.Errorf("%w: start=%v end=%v", ErrInvalidInterval, start, end)
	}

	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether the two half-open ranges share any instant.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether t falls within [Start, End).
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Equal reports whether both intervals denote the same instant range.
//
// Comparison uses time.Time.Equal, so intervals in different locations that
// denote the same instants compare equal.
func (iv Interval) Equal(other Interval) bool {
	return iv.Start.Equal(other.Start) && iv.End.Equal(other.End)
}

// IsZero reports whether the interval is the zero value.
func (iv Interval) IsZero() bool {
	return iv.Start.IsZero() && iv.End.IsZero()
}

// String returns a human-readable representation for diagnostics.
func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.Start.Format(time.RFC3339), iv.End.Format(time.RFC3339))
}
