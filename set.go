package shiftboard

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmontanezjr/shiftboard/internal/hash"
	"github.com/rmontanezjr/shiftboard/internal/logging"
	"github.com/rmontanezjr/shiftboard/internal/metrics"
	"github.com/rmontanezjr/shiftboard/internal/scoreboard"
	"github.com/rmontanezjr/shiftboard/types"
)

// ShiftAssignmentSet is an ordered collection of non-overlapping shift
// assignments with a memoizing scoreboard cache.
//
// Availability queries route through a per-slot packed status that is
// computed on demand and never recomputed. When the set is created with a
// Registry, structurally identical sets share one scoreboard; the set must
// then be detached with Release at the end of its lifetime.
//
// The zero value is not usable; create sets with NewShiftAssignmentSet.
// A set is not safe for concurrent use; shared scoreboard slot writes are
// serialized internally, but the set's own mutation and query state is not.
type ShiftAssignmentSet struct {
	id          uuid.UUID
	calendar    types.Calendar
	assignments []*ShiftAssignment

	registry *Registry
	board    *scoreboard.Board
	boardKey uint64
	released bool

	logger  types.Logger
	metrics types.MetricsCollector
}

// NewShiftAssignmentSet creates an empty assignment set.
//
// Parameters:
//   - opts: Functional options (WithProject, WithRegistry, WithLogger, WithMetrics)
//
// Returns:
//   - *ShiftAssignmentSet: The empty set
//   - error: Calendar validation error when WithProject supplied an invalid calendar
func NewShiftAssignmentSet(opts ...Option) (*ShiftAssignmentSet, error) {
	options := setOptions{
		logger:  logging.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.hasCalendar {
		if err := options.calendar.Validate(); err != nil {
			return nil, err
		}
	}

	return &ShiftAssignmentSet{
		id:       uuid.New(),
		calendar: options.calendar,
		registry: options.registry,
		logger:   options.logger,
		metrics:  options.metrics,
	}, nil
}

// ID returns the set's opaque identity used for registry ownership tracking.
func (s *ShiftAssignmentSet) ID() uuid.UUID {
	return s.id
}

// Project returns the bound project calendar (zero when unbound).
func (s *ShiftAssignmentSet) Project() types.Calendar {
	return s.calendar
}

// SetProject binds the owning project's calendar parameters.
//
// Supports two-phase initialization: a set may be built and populated before
// its project is fully assembled, as long as the calendar is bound before the
// first availability query. Rebinding to a different calendar detaches the
// current scoreboard so the next query resolves a fresh one.
//
// Parameters:
//   - cal: Project calendar (start, end, schedule granularity)
//
// Returns:
//   - error: ErrInvalidCalendar (wrapped) when the calendar is invalid
func (s *ShiftAssignmentSet) SetProject(cal types.Calendar) error {
	if err := cal.Validate(); err != nil {
		return err
	}
	if s.calendar.Equal(cal) {
		return nil
	}

	s.detachBoard()
	s.calendar = cal

	return nil
}

// Len returns the number of assignments in the set.
func (s *ShiftAssignmentSet) Len() int {
	return len(s.assignments)
}

// Assignments returns a copy of the assignment list in insertion order.
func (s *ShiftAssignmentSet) Assignments() []*ShiftAssignment {
	result := make([]*ShiftAssignment, len(s.assignments))
	copy(result, s.assignments)

	return result
}

// AddAssignment appends an assignment to the set.
//
// The set's invariant is that assignments are pairwise non-overlapping: an
// assignment whose interval overlaps any existing one is rejected and the
// set is left unmodified. Rejection is an ordinary negative outcome, not a
// fault.
//
// On success the scoreboard reference is detached, since the shared-cache
// key depends on the full assignment content; the next query re-resolves it.
//
// Parameters:
//   - a: Assignment to add
//
// Returns:
//   - bool: true when added, false when rejected for overlap
func (s *ShiftAssignmentSet) AddAssignment(a *ShiftAssignment) bool {
	for _, existing := range s.assignments {
		if existing.Overlaps(a.interval) {
			s.logger.Debug("assignment rejected: interval overlap",
				"pattern", a.pattern.Name(),
				"interval", a.interval.String(),
				"conflict", existing.String(),
			)

			return false
		}
	}

	s.assignments = append(s.assignments, a)
	s.detachBoard()

	return true
}

// Assigned reports whether some assignment covers date.
func (s *ShiftAssignmentSet) Assigned(date time.Time) bool {
	return s.statusAt(date).Assigned()
}

// OnShift reports whether the off-hours bit is clear at date.
//
// Note: this is true for dates not covered by any assignment as well as for
// covered, working dates; see types.SlotStatus.OnShift.
func (s *ShiftAssignmentSet) OnShift(date time.Time) bool {
	return s.statusAt(date).OnShift()
}

// TimeOff reports whether date is off-hours or vacation.
func (s *ShiftAssignmentSet) TimeOff(date time.Time) bool {
	return s.statusAt(date).TimeOff()
}

// OnVacation reports whether date carries any vacation code.
func (s *ShiftAssignmentSet) OnVacation(date time.Time) bool {
	return s.statusAt(date).OnVacation()
}

// CollectTimeOffIntervals returns every maximal contiguous run of off-time
// slots (off-hours or vacation) intersected with iv whose clipped duration
// is at least minDuration.
//
// Parameters:
//   - iv: Interval to restrict the scan to
//   - minDuration: Minimum run duration; a run of exactly minDuration is included
//
// Returns:
//   - []types.Interval: Off-time runs in ascending time order
func (s *ShiftAssignmentSet) CollectTimeOffIntervals(iv types.Interval, minDuration time.Duration) []types.Interval {
	return s.scoreboard().Scan(iv, minDuration, s.statusAt, types.SlotStatus.TimeOff)
}

// Copy returns a deep copy of the set for scenario inheritance.
//
// Each assignment is copied (the shared pattern references are re-shared,
// not cloned) and the copy gets a fresh identity with no scoreboard; the
// scoreboard is re-resolved through the registry on the copy's first query,
// which for an unmodified copy yields the original's shared instance.
func (s *ShiftAssignmentSet) Copy() *ShiftAssignmentSet {
	cp := &ShiftAssignmentSet{
		id:       uuid.New(),
		calendar: s.calendar,
		registry: s.registry,
		logger:   s.logger,
		metrics:  s.metrics,
	}
	cp.assignments = make([]*ShiftAssignment, 0, len(s.assignments))
	for _, a := range s.assignments {
		cp.assignments = append(cp.assignments, a.Copy())
	}

	return cp
}

// Equal reports structural equality: same project calendar, same number of
// assignments, and assignments pairwise equal in insertion order.
//
// Order matters for equality and for the shared-cache key even though the
// non-overlap invariant makes it semantically irrelevant for valid sets;
// this order sensitivity is deliberate and must not be canonicalized away,
// as it defines the cache-sharing granularity.
func (s *ShiftAssignmentSet) Equal(other *ShiftAssignmentSet) bool {
	if other == nil {
		return false
	}
	if !s.calendar.Equal(other.calendar) {
		return false
	}
	if len(s.assignments) != len(other.assignments) {
		return false
	}
	for i, a := range s.assignments {
		if !a.Equal(other.assignments[i]) {
			return false
		}
	}

	return true
}

// Release detaches the set from its shared scoreboard and removes its
// registry ownership share, pruning the registry entry when the set was the
// last owner.
//
// Release is idempotent and must be called exactly once per set lifetime
// when the set was created with a registry (defer it next to construction).
// The set must not be used afterwards; a query on a released set panics.
func (s *ShiftAssignmentSet) Release() {
	if s.released {
		return
	}
	s.released = true
	s.detachBoard()
}

// detachBoard drops the current scoreboard reference, releasing the
// registry ownership share when the board was shared.
func (s *ShiftAssignmentSet) detachBoard() {
	if s.board == nil {
		return
	}
	if s.registry != nil {
		s.registry.release(s.boardKey, s)
	}
	s.board = nil
	s.boardKey = 0
}

// scoreboard returns the set's scoreboard, resolving one on first use.
//
// An unbound project calendar at query time is a programming error and
// panics rather than returning silently wrong availability.
func (s *ShiftAssignmentSet) scoreboard() *scoreboard.Board {
	if s.board != nil {
		return s.board
	}
	if s.released {
		panic("shiftboard: assignment set used after Release")
	}
	if err := s.calendar.Validate(); err != nil {
		panic(fmt.Sprintf("shiftboard: project calendar not bound: %v", err))
	}

	if s.registry == nil {
		s.board = scoreboard.New(s.calendar)
		s.metrics.RecordScoreboardAllocated(s.board.SlotCount())
		s.logger.Debug("exclusive scoreboard allocated", "slots", s.board.SlotCount())
	} else {
		s.board, s.boardKey = s.registry.acquire(s)
	}

	return s.board
}

// statusAt returns the packed status for date, memoized per slot.
//
// Dates outside the project window have no slot and are computed directly
// without caching.
func (s *ShiftAssignmentSet) statusAt(date time.Time) types.SlotStatus {
	board := s.scoreboard()

	idx, ok := board.Index(date)
	if !ok {
		return s.computeStatus(date)
	}

	if status, hit := board.Status(idx); hit {
		s.metrics.RecordSlotHit()

		return status
	}

	status := s.computeStatus(date)
	board.SetStatus(idx, status)
	s.metrics.RecordSlotComputed()

	return status
}

// computeStatus derives the packed status for date by scanning assignments
// in insertion order. The first assignment covering date wins; this is
// unambiguous under the non-overlap invariant.
func (s *ShiftAssignmentSet) computeStatus(date time.Time) types.SlotStatus {
	for _, a := range s.assignments {
		if !a.Assigned(date) {
			continue
		}

		status := types.StatusAssigned
		if !a.OnShift(date) {
			status |= types.StatusOffHours
		}
		if a.OnVacation(date) {
			status |= types.StatusVacation
		}
		if a.Replace(date) {
			status |= types.StatusReplace
		}

		return status
	}

	// Uncovered: unassigned, on shift, no vacation, no override.
	return 0
}

// fingerprint folds the set's structural content into the registry's
// first-level cache key. Collisions are resolved by Equal, so the pattern's
// label (rather than its identity) is sufficient here.
func (s *ShiftAssignmentSet) fingerprint() uint64 {
	d := hash.New(0)
	d.FoldTime(s.calendar.Start).
		FoldTime(s.calendar.End).
		FoldDuration(s.calendar.ScheduleGranularity)
	for _, a := range s.assignments {
		d.FoldString(a.pattern.Name())
		d.FoldTime(a.interval.Start).FoldTime(a.interval.End)
	}

	return d.Sum64()
}
