package shiftboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
calendar:
  start: 2024-01-01T00:00:00Z
  end: 2024-03-01T00:00:00Z
  scheduleGranularity: 1h
shifts:
  - name: day-shift
    workweek:
      - "09:00-12:00"
      - "13:00-17:30"
  - name: weekend-support
    hours:
      saturday:
        - "10:00-14:00"
      sunday:
        - "10:00-14:00"
    replace: true
  - name: on-leave
    workweek:
      - "09:00-17:00"
    vacations:
      - from: 2024-02-01T00:00:00Z
        to: 2024-02-15T00:00:00Z
`

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	cal, err := cfg.Calendar.Calendar()
	require.NoError(t, err)
	require.Equal(t, time.Hour, cal.ScheduleGranularity)
	require.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), cal.Start)
	require.Len(t, cfg.Shifts, 3)
}

func TestParseConfig_DefaultGranularity(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(`
calendar:
  start: 2024-01-01T00:00:00Z
  end: 2024-03-01T00:00:00Z
`))
	require.NoError(t, err)
	require.Equal(t, "1h", cfg.Calendar.ScheduleGranularity)
}

func TestParseConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "not yaml",
			doc:  "calendar: [",
		},
		{
			name: "end before start",
			doc: `
calendar:
  start: 2024-03-01T00:00:00Z
  end: 2024-01-01T00:00:00Z
  scheduleGranularity: 1h
`,
		},
		{
			name: "malformed granularity",
			doc: `
calendar:
  start: 2024-01-01T00:00:00Z
  end: 2024-03-01T00:00:00Z
  scheduleGranularity: fortnightly
`,
		},
		{
			name: "empty shift name",
			doc: `
calendar:
  start: 2024-01-01T00:00:00Z
  end: 2024-03-01T00:00:00Z
shifts:
  - workweek: ["09:00-17:00"]
`,
		},
		{
			name: "duplicate shift name",
			doc: `
calendar:
  start: 2024-01-01T00:00:00Z
  end: 2024-03-01T00:00:00Z
shifts:
  - name: day-shift
  - name: day-shift
`,
		},
		{
			name: "malformed hour range",
			doc: `
calendar:
  start: 2024-01-01T00:00:00Z
  end: 2024-03-01T00:00:00Z
shifts:
  - name: day-shift
    workweek: ["nine-to-five"]
`,
		},
		{
			name: "inverted hour range",
			doc: `
calendar:
  start: 2024-01-01T00:00:00Z
  end: 2024-03-01T00:00:00Z
shifts:
  - name: day-shift
    workweek: ["17:00-09:00"]
`,
		},
		{
			name: "unknown weekday",
			doc: `
calendar:
  start: 2024-01-01T00:00:00Z
  end: 2024-03-01T00:00:00Z
shifts:
  - name: day-shift
    hours:
      caturday: ["10:00-14:00"]
`,
		},
		{
			name: "inverted vacation",
			doc: `
calendar:
  start: 2024-01-01T00:00:00Z
  end: 2024-03-01T00:00:00Z
shifts:
  - name: day-shift
    vacations:
      - from: 2024-02-15T00:00:00Z
        to: 2024-02-01T00:00:00Z
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseConfig([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestConfig_BuildPatterns(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	patterns, err := cfg.BuildPatterns()
	require.NoError(t, err)
	require.Len(t, patterns, 3)

	// 2024-01-01 is a Monday.
	monday := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	saturday := monday.AddDate(0, 0, 5)

	dayShift := patterns["day-shift"]
	require.True(t, dayShift.OnShift(monday))
	require.False(t, dayShift.OnShift(monday.Add(2*time.Hour)), "lunch break")
	require.False(t, dayShift.OnShift(saturday))
	require.False(t, dayShift.Replace(monday))

	weekend := patterns["weekend-support"]
	require.True(t, weekend.OnShift(saturday.Add(time.Hour)))
	require.False(t, weekend.OnShift(monday))
	require.True(t, weekend.Replace(saturday))

	onLeave := patterns["on-leave"]
	require.True(t, onLeave.OnVacation(time.Date(2024, time.February, 5, 10, 0, 0, 0, time.UTC)))
	require.False(t, onLeave.OnVacation(monday))
}

func TestConfig_Pattern(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	p, err := cfg.Pattern("day-shift")
	require.NoError(t, err)
	require.Equal(t, "day-shift", p.Name())

	_, err = cfg.Pattern("graveyard")
	require.ErrorIs(t, err, ErrUnknownShift)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "shiftboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Shifts, 3)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfigDrivenAssembly(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	cal, err := cfg.Calendar.Calendar()
	require.NoError(t, err)

	p, err := cfg.Pattern("day-shift")
	require.NoError(t, err)

	reg := NewRegistry()
	set := mustSet(t, WithProject(cal), WithRegistry(reg))
	defer set.Release()

	a, err := NewShiftAssignment(p, cal.Window())
	require.NoError(t, err)
	require.True(t, set.AddAssignment(a))

	monday := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	require.True(t, set.OnShift(monday))
	require.True(t, set.TimeOff(monday.Add(10*time.Hour)))
}
