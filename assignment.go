package shiftboard

import (
	"fmt"
	"time"

	"github.com/rmontanezjr/shiftboard/types"
)

// ShiftAssignment binds one shift pattern to one interval of the project
// timeline.
//
// The pattern is a shared reference to an externally owned, per-scenario
// shift definition; the interval is owned by the assignment. A
// ShiftAssignment is immutable after construction.
type ShiftAssignment struct {
	pattern  types.ShiftPattern
	interval types.Interval
}

// NewShiftAssignment creates an assignment of pattern to the given interval.
//
// Parameters:
//   - pattern: Shift pattern reference (shared, never copied)
//   - iv: Interval the pattern applies to
//
// Returns:
//   - *ShiftAssignment: The assignment
//   - error: ErrPatternRequired when pattern is nil, ErrInvalidInterval
//     (wrapped) when the interval is empty or inverted
func NewShiftAssignment(pattern types.ShiftPattern, iv types.Interval) (*ShiftAssignment, error) {
	if pattern == nil {
		return nil, ErrPatternRequired
	}
	if !iv.End.After(iv.Start) {
		return nil, fmt.Errorf("%w: %s", types.ErrInvalidInterval, iv)
	}

	return &ShiftAssignment{pattern: pattern, interval: iv}, nil
}

// Pattern returns the shared shift pattern reference.
func (a *ShiftAssignment) Pattern() types.ShiftPattern {
	return a.pattern
}

// Interval returns the assignment's interval.
func (a *ShiftAssignment) Interval() types.Interval {
	return a.interval
}

// Overlaps reports whether the assignment's interval overlaps iv.
func (a *ShiftAssignment) Overlaps(iv types.Interval) bool {
	return a.interval.Overlaps(iv)
}

// Assigned reports whether date falls within the assignment's interval.
func (a *ShiftAssignment) Assigned(date time.Time) bool {
	return a.interval.Contains(date)
}

// OnShift reports whether the pattern is within working hours at date.
func (a *ShiftAssignment) OnShift(date time.Time) bool {
	return a.pattern.OnShift(date)
}

// OnVacation reports whether the pattern reports leave at date.
func (a *ShiftAssignment) OnVacation(date time.Time) bool {
	return a.pattern.OnVacation(date)
}

// Replace reports whether the pattern overrides global vacation settings at
// date. Unlike OnShift and OnVacation, this additionally requires date to be
// within the assignment's interval.
func (a *ShiftAssignment) Replace(date time.Time) bool {
	return a.interval.Contains(date) && a.pattern.Replace(date)
}

// Copy returns a new, independent assignment with a cloned interval and the
// same shared pattern reference. Used when duplicating a whole set for
// scenario inheritance.
func (a *ShiftAssignment) Copy() *ShiftAssignment {
	return &ShiftAssignment{pattern: a.pattern, interval: a.interval}
}

// Equal reports whether both assignments reference the same pattern instance
// and cover equal intervals.
func (a *ShiftAssignment) Equal(other *ShiftAssignment) bool {
	if other == nil {
		return false
	}

	return a.pattern == other.pattern && a.interval.Equal(other.interval)
}

// String returns a human-readable representation for diagnostics.
func (a *ShiftAssignment) String() string {
	return fmt.Sprintf("%s@%s", a.pattern.Name(), a.interval)
}
