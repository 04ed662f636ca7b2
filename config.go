package shiftboard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rmontanezjr/shiftboard/pattern"
	"github.com/rmontanezjr/shiftboard/types"
)

// CalendarConfig is the yaml shape of the project calendar.
//
// The granularity is a Go duration string so configuration files can write
// "1h" or "24h" instead of nanosecond counts.
type CalendarConfig struct {
	// Start is the inclusive beginning of the project window (RFC 3339).
	Start time.Time `yaml:"start"`

	// End is the exclusive end of the project window (RFC 3339).
	End time.Time `yaml:"end"`

	// ScheduleGranularity is the slot width as a Go duration string (e.g. "1h").
	ScheduleGranularity string `yaml:"scheduleGranularity"`
}

// Calendar converts the config into a validated types.Calendar.
//
// Returns:
//   - types.Calendar: The calendar axis parameters
//   - error: ErrInvalidConfig (wrapped) on a malformed granularity,
//     ErrInvalidCalendar (wrapped) on invalid bounds
func (c CalendarConfig) Calendar() (types.Calendar, error) {
	granularity, err := time.ParseDuration(c.ScheduleGranularity)
	if err != nil {
		return types.Calendar{}, fmt.Errorf("%w: scheduleGranularity %q: %v", ErrInvalidConfig, c.ScheduleGranularity, err)
	}

	cal := types.Calendar{
		Start:               c.Start,
		End:                 c.End,
		ScheduleGranularity: granularity,
	}
	if err := cal.Validate(); err != nil {
		return types.Calendar{}, err
	}

	return cal, nil
}

// VacationConfig is one leave interval of a shift definition.
type VacationConfig struct {
	// From is the inclusive start of the leave (RFC 3339).
	From time.Time `yaml:"from"`

	// To is the exclusive end of the leave (RFC 3339).
	To time.Time `yaml:"to"`
}

// ShiftConfig defines one named weekly shift pattern.
type ShiftConfig struct {
	// Name identifies the shift; assignment intervals bind to it by name.
	Name string `yaml:"name"`

	// Workweek lists working-hour ranges ("HH:MM-HH:MM") applied Monday
	// through Friday.
	Workweek []string `yaml:"workweek"`

	// Hours maps weekday names ("monday" .. "sunday") to working-hour
	// ranges, adding to any Workweek windows for that day.
	Hours map[string][]string `yaml:"hours"`

	// Vacations lists pattern-level leave intervals.
	Vacations []VacationConfig `yaml:"vacations"`

	// Replace makes assignments of this shift override global vacations.
	Replace bool `yaml:"replace"`
}

// Config is the declarative configuration for a scheduling run: the project
// calendar plus the named shift definitions assignment sets bind to.
type Config struct {
	// Calendar holds the project window and slot granularity.
	Calendar CalendarConfig `yaml:"calendar"`

	// Shifts lists the named shift definitions.
	Shifts []ShiftConfig `yaml:"shifts"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Calendar: CalendarConfig{
			ScheduleGranularity: "1h",
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Calendar.ScheduleGranularity == "" {
		cfg.Calendar.ScheduleGranularity = defaults.Calendar.ScheduleGranularity
	}
}

// Validate checks configuration constraints and returns an error for invalid
// values.
//
// Rules:
//   - Calendar bounds and granularity must form a valid axis
//   - Shift names must be non-empty and unique
//   - Hour ranges must parse as "HH:MM-HH:MM" with from < to
//   - Weekday keys must be valid day names
//   - Vacation intervals must have To after From
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if _, err := cfg.Calendar.Calendar(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(cfg.Shifts))
	for _, shift := range cfg.Shifts {
		if shift.Name == "" {
			return fmt.Errorf("%w: shift name must not be empty", ErrInvalidConfig)
		}
		if _, dup := seen[shift.Name]; dup {
			return fmt.Errorf("%w: duplicate shift name %q", ErrInvalidConfig, shift.Name)
		}
		seen[shift.Name] = struct{}{}

		for _, rangeSpec := range shift.Workweek {
			if _, err := parseWindow(rangeSpec); err != nil {
				return fmt.Errorf("shift %q: %w", shift.Name, err)
			}
		}
		for day, ranges := range shift.Hours {
			if _, err := parseWeekday(day); err != nil {
				return fmt.Errorf("shift %q: %w", shift.Name, err)
			}
			for _, rangeSpec := range ranges {
				if _, err := parseWindow(rangeSpec); err != nil {
					return fmt.Errorf("shift %q: %w", shift.Name, err)
				}
			}
		}
		for _, vac := range shift.Vacations {
			if !vac.To.After(vac.From) {
				return fmt.Errorf("%w: shift %q: vacation to (%v) must be after from (%v)",
					ErrInvalidConfig, shift.Name, vac.To, vac.From)
			}
		}
	}

	return nil
}

// BuildPatterns constructs the weekly patterns declared by the config,
// keyed by shift name.
//
// Returns:
//   - map[string]*pattern.Weekly: One pattern per shift definition
//   - error: Validation error when the config is invalid
func (cfg *Config) BuildPatterns() (map[string]*pattern.Weekly, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	patterns := make(map[string]*pattern.Weekly, len(cfg.Shifts))
	for _, shift := range cfg.Shifts {
		opts := make([]pattern.Option, 0, 4)

		if len(shift.Workweek) > 0 {
			windows := make([]pattern.Window, 0, len(shift.Workweek))
			for _, rangeSpec := range shift.Workweek {
				win, _ := parseWindow(rangeSpec)
				windows = append(windows, win)
			}
			opts = append(opts, pattern.WithWorkweek(windows...))
		}

		for day, ranges := range shift.Hours {
			weekday, _ := parseWeekday(day)
			windows := make([]pattern.Window, 0, len(ranges))
			for _, rangeSpec := range ranges {
				win, _ := parseWindow(rangeSpec)
				windows = append(windows, win)
			}
			opts = append(opts, pattern.WithHours(weekday, windows...))
		}

		for _, vac := range shift.Vacations {
			opts = append(opts, pattern.WithVacation(types.Interval{Start: vac.From, End: vac.To}))
		}

		if shift.Replace {
			opts = append(opts, pattern.WithReplace())
		}

		patterns[shift.Name] = pattern.NewWeekly(shift.Name, opts...)
	}

	return patterns, nil
}

// Pattern builds the single named pattern from the config.
//
// Returns:
//   - *pattern.Weekly: The pattern
//   - error: ErrUnknownShift when no shift with that name is defined,
//     or a validation error when the config is invalid
func (cfg *Config) Pattern(name string) (*pattern.Weekly, error) {
	patterns, err := cfg.BuildPatterns()
	if err != nil {
		return nil, err
	}

	p, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShift, name)
	}

	return p, nil
}

// ParseConfig decodes yaml configuration, applies defaults, and validates.
//
// Parameters:
//   - data: Raw yaml document
//
// Returns:
//   - Config: The decoded configuration
//   - error: Decode or validation error
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a yaml configuration file.
//
// Parameters:
//   - path: File path of the yaml document
//
// Returns:
//   - Config: The decoded configuration
//   - error: Read, decode, or validation error
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return ParseConfig(data)
}

// parseWindow parses a working-hours range of the form "HH:MM-HH:MM" into
// offsets from midnight.
func parseWindow(spec string) (pattern.Window, error) {
	fromSpec, toSpec, ok := strings.Cut(spec, "-")
	if !ok {
		return pattern.Window{}, fmt.Errorf("%w: hour range %q must be HH:MM-HH:MM", ErrInvalidConfig, spec)
	}

	from, err := parseDayTime(strings.TrimSpace(fromSpec))
	if err != nil {
		return pattern.Window{}, fmt.Errorf("%w: hour range %q: %v", ErrInvalidConfig, spec, err)
	}
	to, err := parseDayTime(strings.TrimSpace(toSpec))
	if err != nil {
		return pattern.Window{}, fmt.Errorf("%w: hour range %q: %v", ErrInvalidConfig, spec, err)
	}
	if to <= from {
		return pattern.Window{}, fmt.Errorf("%w: hour range %q: end must be after start", ErrInvalidConfig, spec)
	}

	return pattern.Window{From: from, To: to}, nil
}

// parseDayTime parses "HH:MM" into a duration since midnight. "24:00" is
// accepted as the end-of-day bound.
func parseDayTime(spec string) (time.Duration, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(spec, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("malformed time %q", spec)
	}
	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 || (hours == 24 && minutes != 0) {
		return 0, fmt.Errorf("time %q out of range", spec)
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

// parseWeekday maps a lowercase day name to a time.Weekday.
func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("%w: unknown weekday %q", ErrInvalidConfig, name)
	}
}
