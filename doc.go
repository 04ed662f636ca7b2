// Package shiftboard answers point-in-time and interval-range availability
// queries for project scheduling: whether a moment is covered by a work/off
// shift pattern, whether it is vacation, and whether a shift-specific rule
// overrides the global vacation calendar.
//
// The core structure is the ShiftAssignmentSet: an ordered, non-overlapping
// collection of (shift pattern, interval) assignments backed by a lazily
// computed, memoizing scoreboard over the project's discretized time axis.
// Structurally identical sets transparently share one scoreboard through a
// reference-counted Registry to bound memory use.
//
// # Quick Start
//
//	cal := shiftboard.Calendar{
//	    Start:               projectStart,
//	    End:                 projectEnd,
//	    ScheduleGranularity: time.Hour,
//	}
//
//	reg := shiftboard.NewRegistry()
//	set, err := shiftboard.NewShiftAssignmentSet(
//	    shiftboard.WithProject(cal),
//	    shiftboard.WithRegistry(reg),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer set.Release()
//
//	a, _ := shiftboard.NewShiftAssignment(dayShift, shiftboard.Interval{Start: from, End: until})
//	if !set.AddAssignment(a) {
//	    // interval overlaps an existing assignment; the set is unchanged
//	}
//
//	working := set.OnShift(date)
//	off := set.CollectTimeOffIntervals(window, 4*time.Hour)
//
// # Key Properties
//
//   - Non-overlap invariant: AddAssignment rejects overlapping intervals
//     without mutating the set
//   - Memoization: each slot's packed status is computed at most once
//   - Cache sharing: sets with equal project and same-order equal assignments
//     resolve to the same scoreboard instance via the Registry
//   - Reference counting: Release detaches a set; a registry entry is pruned
//     when its last owner detaches
//
// The Registry is an explicit object rather than process-global state: create
// one per scheduling run (or per test) and pass it to the sets that should
// share scoreboards.
package shiftboard
