package types

import (
	"fmt"
	"time"
)

// Calendar holds the project-level time axis parameters read by scoreboards.
//
// The axis covers the half-open window [Start, End) discretized into slots of
// ScheduleGranularity width. The last slot may extend past End when the window
// is not an exact multiple of the granularity.
type Calendar struct {
	// Start is the inclusive beginning of the project window.
	Start time.Time `yaml:"start"`

	// End is the exclusive end of the project window.
	End time.Time `yaml:"end"`

	// ScheduleGranularity is the slot width of the discretized axis.
	// Typical values: 1h for hourly scheduling, 24h for daily.
	ScheduleGranularity time.Duration `yaml:"scheduleGranularity"`
}

// Validate checks the calendar parameters.
//
// Returns:
//   - error: ErrInvalidCalendar (wrapped) if End <= Start or the granularity
//     is not positive, nil otherwise
func (c Calendar) Validate() error {
	if !c.End.After(c.Start) {
		return fmt.Errorf("%w: end (%v) must be after start (%v)", ErrInvalidCalendar, c.End, c.Start)
	}
	if c.ScheduleGranularity <= 0 {
		return fmt.Errorf("%w: schedule granularity must be positive, got %v", ErrInvalidCalendar, c.ScheduleGranularity)
	}

	return nil
}

// SlotCount returns the number of slots needed to cover [Start, End),
// rounding up when the window is not a multiple of the granularity.
func (c Calendar) SlotCount() int {
	window := c.End.Sub(c.Start)

	return int((window + c.ScheduleGranularity - 1) / c.ScheduleGranularity)
}

// Window returns the project window as an Interval.
func (c Calendar) Window() Interval {
	return Interval{Start: c.Start, End: c.End}
}

// Equal reports whether both calendars describe the same axis.
func (c Calendar) Equal(other Calendar) bool {
	return c.Start.Equal(other.Start) &&
		c.End.Equal(other.End) &&
		c.ScheduleGranularity == other.ScheduleGranularity
}

// IsZero reports whether the calendar is unset.
func (c Calendar) IsZero() bool {
	return c.Start.IsZero() && c.End.IsZero() && c.ScheduleGranularity == 0
}
