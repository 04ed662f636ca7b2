package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations must be non-blocking and thread-safe: slot computation on
// a shared scoreboard may be reported from multiple goroutines.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	ScoreboardMetrics
	RegistryMetrics
}

// ScoreboardMetrics defines metrics for scoreboard slot computation.
type ScoreboardMetrics interface {
	// RecordSlotHit records a memoized slot lookup that was already computed.
	RecordSlotHit()

	// RecordSlotComputed records a slot status computed and cached on demand.
	RecordSlotComputed()

	// RecordScoreboardAllocated records allocation of a new scoreboard.
	//
	// Parameters:
	//   - slots: Number of slots in the allocated scoreboard
	RecordScoreboardAllocated(slots int)
}

// RegistryMetrics defines metrics for shared-scoreboard registry operations.
type RegistryMetrics interface {
	// RecordScoreboardShared records an attach that reused an existing scoreboard.
	RecordScoreboardShared()

	// RecordRegistryEntries sets the current registry entry count (gauge metric).
	//
	// Parameters:
	//   - count: Current number of distinct registry entries
	RecordRegistryEntries(count int)
}
