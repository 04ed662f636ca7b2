package shiftboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rmontanezjr/shiftboard/types"
)

func hourlyCalendar() types.Calendar {
	return types.Calendar{Start: day(0), End: day(7), ScheduleGranularity: time.Hour}
}

// nineToFive is off-shift outside 09:00-17:00 every day.
func nineToFive(name string) *stubPattern {
	return &stubPattern{
		name: name,
		onShift: func(at time.Time) bool {
			return at.Hour() >= 9 && at.Hour() < 17
		},
	}
}

func TestCollectTimeOffIntervals_OvernightRuns(t *testing.T) {
	t.Parallel()

	set := mustSet(t, WithProject(hourlyCalendar()))
	require.True(t, set.AddAssignment(mustAssignment(t, nineToFive("day-shift"), day(0), day(7))))

	window := types.Interval{Start: day(1), End: day(3)}
	runs := set.CollectTimeOffIntervals(window, 0)

	// 00:00-09:00, 17:00-09:00 (overnight), 17:00-00:00 clipped at window end.
	require.Len(t, runs, 3)
	require.Equal(t, day(1), runs[0].Start)
	require.Equal(t, day(1).Add(9*time.Hour), runs[0].End)
	require.Equal(t, day(1).Add(17*time.Hour), runs[1].Start)
	require.Equal(t, day(2).Add(9*time.Hour), runs[1].End)
	require.Equal(t, day(2).Add(17*time.Hour), runs[2].Start)
	require.Equal(t, day(3), runs[2].End)
}

func TestCollectTimeOffIntervals_MinDurationBoundary(t *testing.T) {
	t.Parallel()

	set := mustSet(t, WithProject(hourlyCalendar()))
	require.True(t, set.AddAssignment(mustAssignment(t, nineToFive("day-shift"), day(0), day(7))))

	window := types.Interval{Start: day(1), End: day(3)}

	// The overnight run is exactly 16 hours; a 9-hour head run also matches.
	runs := set.CollectTimeOffIntervals(window, 16*time.Hour)
	require.Len(t, runs, 1)
	require.Equal(t, 16*time.Hour, runs[0].Duration())

	// One slot longer excludes every run.
	require.Empty(t, set.CollectTimeOffIntervals(window, 17*time.Hour))

	// A run of exactly minDuration is included.
	runs = set.CollectTimeOffIntervals(window, 9*time.Hour)
	require.Len(t, runs, 2)
}

func TestCollectTimeOffIntervals_VacationCountsAsTimeOff(t *testing.T) {
	t.Parallel()

	leave := types.Interval{Start: day(2), End: day(4)}
	p := &stubPattern{
		name:       "on-leave",
		onVacation: leave.Contains,
	}
	set := mustSet(t, WithProject(dailyCalendar()))
	require.True(t, set.AddAssignment(mustAssignment(t, p, day(0), day(10))))

	runs := set.CollectTimeOffIntervals(types.Interval{Start: day(0), End: day(10)}, 0)
	require.Len(t, runs, 1)
	require.True(t, runs[0].Equal(leave))
}

func TestCollectTimeOffIntervals_UnassignedSlotsAreNotTimeOff(t *testing.T) {
	t.Parallel()

	// Pattern always off, but only days 2-5 are assigned; uncovered slots
	// report on-shift and must not appear in the scan.
	p := &stubPattern{name: "always-off", onShift: func(time.Time) bool { return false }}
	set := mustSet(t, WithProject(dailyCalendar()))
	require.True(t, set.AddAssignment(mustAssignment(t, p, day(2), day(5))))

	runs := set.CollectTimeOffIntervals(types.Interval{Start: day(0), End: day(10)}, 0)
	require.Len(t, runs, 1)
	require.Equal(t, day(2), runs[0].Start)
	require.Equal(t, day(5), runs[0].End)
}

func TestCollectTimeOffIntervals_EmptyIntersection(t *testing.T) {
	t.Parallel()

	set := mustSet(t, WithProject(hourlyCalendar()))
	require.True(t, set.AddAssignment(mustAssignment(t, nineToFive("day-shift"), day(0), day(7))))

	outside := types.Interval{Start: day(8), End: day(9)}
	require.Empty(t, set.CollectTimeOffIntervals(outside, 0))
}
