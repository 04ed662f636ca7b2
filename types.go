package shiftboard

import "github.com/rmontanezjr/shiftboard/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `shiftboard`
// package, while still providing a convenient `shiftboard.Interval`,
// `shiftboard.Logger`, etc. for users.
type (
	Interval   = types.Interval
	Calendar   = types.Calendar
	SlotStatus = types.SlotStatus
)

// Re-export interfaces from the types subpackage for convenience.
type (
	ShiftPattern     = types.ShiftPattern
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export SlotStatus bit constants from the types subpackage.
const (
	StatusAssigned = types.StatusAssigned
	StatusOffHours = types.StatusOffHours
	StatusVacation = types.StatusVacation
	StatusReplace  = types.StatusReplace
)
