package pattern

import (
	"time"

	"github.com/rmontanezjr/shiftboard/types"
)

// Window is a working-hours range within a single day, expressed as offsets
// from midnight. Half-open: a window {9h, 17h} covers 09:00:00 up to but not
// including 17:00:00.
type Window struct {
	From time.Duration
	To   time.Duration
}

// Weekly is a recurring weekly shift pattern.
//
// A Weekly is immutable after construction and safe for concurrent use, as
// required by types.ShiftPattern: query results are memoized per slot by the
// assignment sets referencing it.
type Weekly struct {
	name      string
	hours     [7][]Window
	vacations []types.Interval
	replace   bool
}

// Compile-time assertion that Weekly implements ShiftPattern.
var _ types.ShiftPattern = (*Weekly)(nil)

// Option configures a Weekly pattern at construction time.
type Option func(*Weekly)

// WithHours adds working-hour windows for a weekday.
//
// Parameters:
//   - day: Weekday the windows apply to
//   - windows: Working-hour windows as offsets from midnight
//
// Example:
//
//	p := pattern.NewWeekly("day-shift",
//	    pattern.WithHours(time.Monday, pattern.Window{From: 9 * time.Hour, To: 17 * time.Hour}),
//	)
func WithHours(day time.Weekday, windows ...Window) Option {
	return func(w *Weekly) {
		w.hours[day] = append(w.hours[day], windows...)
	}
}

// WithWorkweek adds the same working-hour windows for Monday through Friday.
func WithWorkweek(windows ...Window) Option {
	return func(w *Weekly) {
		for day := time.Monday; day <= time.Friday; day++ {
			w.hours[day] = append(w.hours[day], windows...)
		}
	}
}

// WithVacation adds a leave interval during which the pattern reports vacation.
func WithVacation(iv types.Interval) Option {
	return func(w *Weekly) {
		w.vacations = append(w.vacations, iv)
	}
}

// WithReplace makes the pattern override global vacation settings.
func WithReplace() Option {
	return func(w *Weekly) {
		w.replace = true
	}
}

// NewWeekly creates a weekly pattern with the given name and options.
//
// A pattern with no hour windows reports off-shift everywhere.
func NewWeekly(name string, opts ...Option) *Weekly {
	w := &Weekly{name: name}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// OnShift reports whether date falls inside one of the weekday's working-hour
// windows.
func (w *Weekly) OnShift(date time.Time) bool {
	offset := dayOffset(date)
	for _, win := range w.hours[date.Weekday()] {
		if offset >= win.From && offset < win.To {
			return true
		}
	}

	return false
}

// OnVacation reports whether date falls inside any configured leave interval.
func (w *Weekly) OnVacation(date time.Time) bool {
	for _, iv := range w.vacations {
		if iv.Contains(date) {
			return true
		}
	}

	return false
}

// Replace reports whether the pattern overrides global vacation settings.
// The answer is date-independent for weekly patterns.
func (w *Weekly) Replace(_ /* date */ time.Time) bool {
	return w.replace
}

// Name returns the pattern's identifying label.
func (w *Weekly) Name() string {
	return w.name
}

// dayOffset returns the duration since midnight in date's location.
func dayOffset(date time.Time) time.Duration {
	return time.Duration(date.Hour())*time.Hour +
		time.Duration(date.Minute())*time.Minute +
		time.Duration(date.Second())*time.Second +
		time.Duration(date.Nanosecond())
}
