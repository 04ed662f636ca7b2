package shiftboard

import "github.com/rmontanezjr/shiftboard/types"

// Option configures a ShiftAssignmentSet with optional dependencies.
type Option func(*setOptions)

// setOptions holds optional ShiftAssignmentSet configuration.
type setOptions struct {
	calendar    types.Calendar
	hasCalendar bool
	registry    *Registry
	logger      types.Logger
	metrics     types.MetricsCollector
}

// WithProject binds the owning project's calendar parameters at construction
// time.
//
// Without this option the set starts unbound and SetProject must be called
// before any availability query; this supports two-phase initialization when
// a set is built before its owning project is fully assembled.
//
// Parameters:
//   - cal: Project calendar (start, end, schedule granularity)
//
// Returns:
//   - Option: Functional option for NewShiftAssignmentSet
//
// Example:
//
//	set, err := shiftboard.NewShiftAssignmentSet(shiftboard.WithProject(cal))
func WithProject(cal types.Calendar) Option {
	return func(o *setOptions) {
		o.calendar = cal
		o.hasCalendar = true
	}
}

// WithRegistry makes the set resolve its scoreboard through a shared
// registry, so structurally identical sets reuse one scoreboard.
//
// Without this option the set allocates an exclusive scoreboard.
//
// Parameters:
//   - registry: Registry shared by the sets of one scheduling run
//
// Returns:
//   - Option: Functional option for NewShiftAssignmentSet
//
// Example:
//
//	reg := shiftboard.NewRegistry()
//	set, err := shiftboard.NewShiftAssignmentSet(shiftboard.WithRegistry(reg))
func WithRegistry(registry *Registry) Option {
	return func(o *setOptions) {
		o.registry = registry
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewShiftAssignmentSet
func WithLogger(logger types.Logger) Option {
	return func(o *setOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewShiftAssignmentSet
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *setOptions) {
		o.metrics = metrics
	}
}
