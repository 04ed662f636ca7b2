package shiftboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rmontanezjr/shiftboard/internal/logging"
	"github.com/rmontanezjr/shiftboard/types"
)

func buildSharedSet(t *testing.T, reg *Registry, p types.ShiftPattern, assignments ...types.Interval) *ShiftAssignmentSet {
	t.Helper()

	set := mustSet(t, WithProject(dailyCalendar()), WithRegistry(reg))
	for _, iv := range assignments {
		a, err := NewShiftAssignment(p, iv)
		require.NoError(t, err)
		require.True(t, set.AddAssignment(a))
	}

	return set
}

func TestRegistry_SharesStructurallyEqualSets(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(WithRegistryLogger(logging.NewTest(t)))
	p := &stubPattern{name: "day-shift"}

	iv1 := types.Interval{Start: day(0), End: day(3)}
	iv2 := types.Interval{Start: day(5), End: day(7)}

	set1 := buildSharedSet(t, reg, p, iv1, iv2)
	set2 := buildSharedSet(t, reg, p, iv1, iv2)
	defer set1.Release()
	defer set2.Release()

	require.Same(t, set1.scoreboard(), set2.scoreboard(), "equal sets must resolve to one scoreboard instance")
	require.Equal(t, 1, reg.Len())
}

func TestRegistry_SharedMemoizationIsVisibleToAllOwners(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	p := &stubPattern{name: "day-shift"}
	iv := types.Interval{Start: day(0), End: day(10)}

	set1 := buildSharedSet(t, reg, p, iv)
	set2 := buildSharedSet(t, reg, p, iv)
	defer set1.Release()
	defer set2.Release()

	require.True(t, set1.OnShift(day(3)))
	queries := p.shiftQueries.Load()

	// The second owner hits the slot set1 already computed.
	require.True(t, set2.OnShift(day(3)))
	require.Equal(t, queries, p.shiftQueries.Load())
}

func TestRegistry_OrderChangesSharingClass(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	p := &stubPattern{name: "day-shift"}

	iv1 := types.Interval{Start: day(0), End: day(3)}
	iv2 := types.Interval{Start: day(5), End: day(7)}

	forward := buildSharedSet(t, reg, p, iv1, iv2)
	backward := buildSharedSet(t, reg, p, iv2, iv1)
	defer forward.Release()
	defer backward.Release()

	require.NotSame(t, forward.scoreboard(), backward.scoreboard(),
		"assignment order is part of the cache key even though it is semantically irrelevant")
	require.Equal(t, 2, reg.Len())
}

func TestRegistry_ContentChangesSharingClass(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	day1 := &stubPattern{name: "day-shift"}
	night := &stubPattern{name: "night-shift"}
	iv := types.Interval{Start: day(0), End: day(3)}

	set1 := buildSharedSet(t, reg, day1, iv)
	set2 := buildSharedSet(t, reg, night, iv)
	defer set1.Release()
	defer set2.Release()

	require.NotSame(t, set1.scoreboard(), set2.scoreboard())
	require.Equal(t, 2, reg.Len())
}

func TestRegistry_ProjectChangesSharingClass(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	p := &stubPattern{name: "day-shift"}
	iv := types.Interval{Start: day(0), End: day(3)}

	set1 := buildSharedSet(t, reg, p, iv)
	defer set1.Release()

	set2 := mustSet(t,
		WithProject(types.Calendar{Start: day(0), End: day(20), ScheduleGranularity: 24 * time.Hour}),
		WithRegistry(reg),
	)
	defer set2.Release()
	a, err := NewShiftAssignment(p, iv)
	require.NoError(t, err)
	require.True(t, set2.AddAssignment(a))

	require.NotSame(t, set1.scoreboard(), set2.scoreboard())
	require.Equal(t, 2, reg.Len())
}

func TestRegistry_ReferenceCountedCleanup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	p := &stubPattern{name: "day-shift"}
	iv := types.Interval{Start: day(0), End: day(3)}

	set1 := buildSharedSet(t, reg, p, iv)
	set2 := buildSharedSet(t, reg, p, iv)
	set3 := buildSharedSet(t, reg, p, iv)

	require.Same(t, set1.scoreboard(), set2.scoreboard())
	require.Same(t, set2.scoreboard(), set3.scoreboard())
	require.Equal(t, 1, reg.Len())

	set1.Release()
	require.Equal(t, 1, reg.Len(), "entry survives while owners remain")

	set2.Release()
	set3.Release()
	require.Equal(t, 0, reg.Len(), "last release prunes the entry")

	// A fresh structurally equal set gets a fresh scoreboard.
	set4 := buildSharedSet(t, reg, p, iv)
	defer set4.Release()
	require.NotNil(t, set4.scoreboard())
	require.Equal(t, 1, reg.Len())
}

func TestRegistry_MutationDetachesFromSharedEntry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	p := &stubPattern{name: "day-shift"}
	iv := types.Interval{Start: day(0), End: day(3)}

	set1 := buildSharedSet(t, reg, p, iv)
	set2 := buildSharedSet(t, reg, p, iv)
	defer set1.Release()
	defer set2.Release()

	shared := set1.scoreboard()
	require.Same(t, shared, set2.scoreboard())

	// Adding an assignment changes set2's content; it must leave the shared
	// entry and resolve a new scoreboard on its next query.
	a, err := NewShiftAssignment(p, types.Interval{Start: day(5), End: day(7)})
	require.NoError(t, err)
	require.True(t, set2.AddAssignment(a))

	require.NotSame(t, shared, set2.scoreboard())
	require.Same(t, shared, set1.scoreboard(), "the remaining owner keeps the original scoreboard")
	require.Equal(t, 2, reg.Len())
}

func TestRegistry_CopyResolvesToSharedScoreboard(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	p := &stubPattern{name: "day-shift"}
	iv := types.Interval{Start: day(0), End: day(3)}

	original := buildSharedSet(t, reg, p, iv)
	defer original.Release()
	require.True(t, original.Assigned(day(1)))

	cp := original.Copy()
	defer cp.Release()

	require.Same(t, original.scoreboard(), cp.scoreboard(),
		"an unmodified copy joins the original's sharing class")
	require.Equal(t, 1, reg.Len())
}

func TestRegistry_ExclusiveBoardWithoutRegistry(t *testing.T) {
	t.Parallel()

	p := &stubPattern{name: "day-shift"}
	iv := types.Interval{Start: day(0), End: day(3)}

	set1 := mustSet(t, WithProject(dailyCalendar()))
	set2 := mustSet(t, WithProject(dailyCalendar()))
	a1, err := NewShiftAssignment(p, iv)
	require.NoError(t, err)
	a2, err := NewShiftAssignment(p, iv)
	require.NoError(t, err)
	require.True(t, set1.AddAssignment(a1))
	require.True(t, set2.AddAssignment(a2))

	require.NotSame(t, set1.scoreboard(), set2.scoreboard(),
		"sets without a registry get exclusive scoreboards")
}
