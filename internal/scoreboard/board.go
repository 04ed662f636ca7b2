// Package scoreboard implements the discretized calendar axis backing
// shift-assignment availability queries.
//
// A Board covers the half-open project window [Calendar.Start, Calendar.End)
// with fixed-width slots. Each slot holds an optional packed status byte that
// is computed at most once by the owning assignment set and never
// recomputed. Boards are never shrunk or resized after creation; a board may
// be shared by many structurally identical assignment sets through the
// shared-scoreboard registry.
package scoreboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/rmontanezjr/shiftboard/types"
)

// computedFlag marks a slot whose status byte has been filled in.
// Stored above the status bits so a packed status of 0 is distinguishable
// from "unknown".
const computedFlag uint16 = 1 << 8

// Board is the memoizing packed-status array over all slots in the project
// window.
//
// Status reads and writes are serialized under a single mutex: two sets
// sharing a board may race to compute the same slot, and while slot
// computation is idempotent, the flag-and-byte write must stay atomic.
type Board struct {
	cal types.Calendar

	mu    sync.Mutex
	slots []uint16
}

// New allocates a board sized from the calendar's window and granularity.
//
// The calendar must be valid; an invalid axis is a configuration error and
// New panics rather than producing a silently corrupt board.
//
// Parameters:
//   - cal: Project calendar defining the axis
//
// Returns:
//   - *Board: Board with all slots in the unknown state
func New(cal types.Calendar) *Board {
	if err := cal.Validate(); err != nil {
		panic(fmt.Sprintf("scoreboard: %v", err))
	}

	return &Board{
		cal:   cal,
		slots: make([]uint16, cal.SlotCount()),
	}
}

// Calendar returns the axis parameters the board was sized from.
func (b *Board) Calendar() types.Calendar {
	return b.cal
}

// SlotCount returns the number of slots on the axis.
func (b *Board) SlotCount() int {
	return len(b.slots)
}

// Index maps a timestamp to its slot index.
//
// Returns:
//   - int: Slot index in [0, SlotCount)
//   - bool: false when t falls outside the project window
func (b *Board) Index(t time.Time) (int, bool) {
	if t.Before(b.cal.Start) || !t.Before(b.cal.End) {
		return 0, false
	}

	return int(t.Sub(b.cal.Start) / b.cal.ScheduleGranularity), true
}

// SlotStart returns the start instant of the given slot.
//
// idx may equal SlotCount, in which case the end of the last slot is
// returned; this can extend past Calendar.End when the window is not a
// multiple of the granularity.
func (b *Board) SlotStart(idx int) time.Time {
	return b.cal.Start.Add(time.Duration(idx) * b.cal.ScheduleGranularity)
}

// Status returns the memoized status of a slot.
//
// Returns:
//   - types.SlotStatus: The packed status (zero when not yet computed)
//   - bool: true on a cache hit, false when the slot is still unknown
func (b *Board) Status(idx int) (types.SlotStatus, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := b.slots[idx]
	if v&computedFlag == 0 {
		return 0, false
	}

	return types.SlotStatus(v), true //nolint:gosec // computedFlag sits above the status byte
}

// SetStatus stores the computed status of a slot.
//
// A slot is only ever written with the same value for fixed assignment
// content, so concurrent writers produce last-write-wins on identical bytes.
func (b *Board) SetStatus(idx int, status types.SlotStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.slots[idx] = uint16(status) | computedFlag
}

// Scan returns the maximal runs of contiguous slots whose status satisfies
// match, intersected with iv and filtered to runs lasting at least
// minDuration.
//
// Slot statuses are obtained through statusAt so callers can route the scan
// through their memoized computation. The first and last run are clipped to
// iv's bounds, and the clipped duration is what minDuration is compared
// against. A run of exactly minDuration is included.
//
// Parameters:
//   - iv: Interval to intersect the scan with
//   - minDuration: Minimum clipped run duration (0 keeps every run)
//   - statusAt: Status source, invoked once per scanned slot
//   - match: Predicate over the packed slot status
//
// Returns:
//   - []types.Interval: Matching runs in ascending time order
func (b *Board) Scan(
	iv types.Interval,
	minDuration time.Duration,
	statusAt func(time.Time) types.SlotStatus,
	match func(types.SlotStatus) bool,
) []types.Interval {
	from := iv.Start
	if from.Before(b.cal.Start) {
		from = b.cal.Start
	}
	until := iv.End
	if until.After(b.cal.End) {
		until = b.cal.End
	}
	if !until.After(from) {
		return nil
	}

	var runs []types.Interval
	runStart := -1

	closeRun := func(endIdx int) {
		start := b.SlotStart(runStart)
		if start.Before(from) {
			start = from
		}
		end := b.SlotStart(endIdx)
		if end.After(until) {
			end = until
		}
		if end.Sub(start) >= minDuration {
			runs = append(runs, types.Interval{Start: start, End: end})
		}
		runStart = -1
	}

	first, _ := b.Index(from)
	idx := first
	for idx < len(b.slots) && b.SlotStart(idx).Before(until) {
		if match(statusAt(b.SlotStart(idx))) {
			if runStart < 0 {
				runStart = idx
			}
		} else if runStart >= 0 {
			closeRun(idx)
		}
		idx++
	}
	if runStart >= 0 {
		closeRun(idx)
	}

	return runs
}
