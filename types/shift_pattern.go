package types

import "time"

// ShiftPattern describes a recurring working/off-hours and vacation rule set.
//
// Patterns are externally owned, per-scenario definitions. Assignment sets
// hold shared references to them and never copy or mutate them; the same
// pattern instance may back many assignments across many sets.
//
// Implementations must be pure: answers for a given date must not change for
// the lifetime of the pattern, since query results are memoized per slot.
type ShiftPattern interface {
	// OnShift reports whether the pattern is within working hours at date.
	OnShift(date time.Time) bool

	// OnVacation reports whether date falls on pattern-level leave.
	OnVacation(date time.Time) bool

	// Replace reports whether the pattern overrides global vacation settings
	// at date.
	Replace(date time.Time) bool

	// Name returns an identifying label for diagnostics.
	Name() string
}
