package types

import "strings"

// SlotStatus is the packed availability status of one scoreboard slot.
//
// Bit layout:
//   - bit 0: assigned — some shift assignment covers this slot
//   - bit 1: off-hours — the covering pattern reports not on shift
//   - bits 2-5: vacation code (0 = none, 1 = regular leave; higher codes
//     reserved for finer-grained leave categories)
//   - bit 7: the covering assignment overrides global vacation settings
//
// The zero value means "unassigned, on shift, no vacation, no override".
type SlotStatus uint8

const (
	// StatusAssigned marks a slot covered by a shift assignment.
	StatusAssigned SlotStatus = 1 << 0

	// StatusOffHours marks a slot outside the covering pattern's working hours.
	StatusOffHours SlotStatus = 1 << 1

	// StatusVacation marks a slot as regular leave (vacation code 1).
	StatusVacation SlotStatus = 1 << 2

	// StatusReplace marks a slot whose assignment overrides global vacations.
	StatusReplace SlotStatus = 1 << 7

	// statusVacationMask selects the vacation code bits 2-5.
	statusVacationMask SlotStatus = 0x3c
)

// Assigned reports whether some assignment covers the slot.
func (s SlotStatus) Assigned() bool {
	return s&StatusAssigned != 0
}

// OnShift reports whether the off-hours bit is clear.
//
// Note: this is true for unassigned slots as well as for slots covered by a
// pattern that is genuinely working. The predicate cannot by itself
// distinguish "not covered by any shift" from "covered and working"; callers
// needing the narrower meaning must combine it with Assigned.
func (s SlotStatus) OnShift() bool {
	return s&StatusOffHours == 0
}

// TimeOff reports whether the slot is off-hours or any vacation code is set.
func (s SlotStatus) TimeOff() bool {
	return s&(StatusOffHours|statusVacationMask) != 0
}

// OnVacation reports whether any vacation code is set.
func (s SlotStatus) OnVacation() bool {
	return s&statusVacationMask != 0
}

// Replace reports whether the covering assignment overrides global vacations.
func (s SlotStatus) Replace() bool {
	return s&StatusReplace != 0
}

// String returns a compact flag list for diagnostics, e.g. "assigned|off-hours".
func (s SlotStatus) String() string {
	if s == 0 {
		return "unassigned"
	}

	var flags []string
	if s.Assigned() {
		flags = append(flags, "assigned")
	}
	if !s.OnShift() {
		flags = append(flags, "off-hours")
	}
	if s.OnVacation() {
		flags = append(flags, "vacation")
	}
	if s.Replace() {
		flags = append(flags, "replace")
	}

	return strings.Join(flags, "|")
}
