// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/rmontanezjr/shiftboard/types"

// NopMetrics is a no-op metrics collector that discards all measurements.
//
// Useful as the default collector when the embedding application does not
// wire up instrumentation, and in tests to avoid registration side effects.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSlotHit discards the measurement.
func (n *NopMetrics) RecordSlotHit() {}

// RecordSlotComputed discards the measurement.
func (n *NopMetrics) RecordSlotComputed() {}

// RecordScoreboardAllocated discards the measurement.
func (n *NopMetrics) RecordScoreboardAllocated(_ /* slots */ int) {}

// RecordScoreboardShared discards the measurement.
func (n *NopMetrics) RecordScoreboardShared() {}

// RecordRegistryEntries discards the measurement.
func (n *NopMetrics) RecordRegistryEntries(_ /* count */ int) {}
