package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rmontanezjr/shiftboard/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are registered lazily on first use so constructing the collector
// never panics on duplicate registration in tests that share a registerer.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	slotHits        prometheus.Counter
	slotComputed    prometheus.Counter
	boardsAllocated prometheus.Counter
	boardSlots      prometheus.Histogram
	boardsShared    prometheus.Counter
	registryEntries prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "shiftboard" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "shiftboard"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.slotHits = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scoreboard",
			Name:      "slot_hits_total",
			Help:      "Total slot lookups answered from the memoized status cache.",
		})

		p.slotComputed = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scoreboard",
			Name:      "slots_computed_total",
			Help:      "Total slot statuses computed and cached on demand.",
		})

		p.boardsAllocated = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scoreboard",
			Name:      "allocations_total",
			Help:      "Total scoreboards allocated.",
		})

		p.boardSlots = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "scoreboard",
			Name:      "allocation_slots",
			Help:      "Slot counts of allocated scoreboards.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8), // 64 .. ~1M slots
		})

		p.boardsShared = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "registry",
			Name:      "shares_total",
			Help:      "Total attaches that reused an existing shared scoreboard.",
		})

		p.registryEntries = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "registry",
			Name:      "entries_current",
			Help:      "Current number of distinct shared-scoreboard registry entries.",
		})

		p.reg.MustRegister(p.slotHits)
		p.reg.MustRegister(p.slotComputed)
		p.reg.MustRegister(p.boardsAllocated)
		p.reg.MustRegister(p.boardSlots)
		p.reg.MustRegister(p.boardsShared)
		p.reg.MustRegister(p.registryEntries)
	})
}

// RecordSlotHit increments the memoized slot lookup counter.
func (p *PrometheusCollector) RecordSlotHit() {
	p.ensureRegistered()
	p.slotHits.Inc()
}

// RecordSlotComputed increments the computed slot counter.
func (p *PrometheusCollector) RecordSlotComputed() {
	p.ensureRegistered()
	p.slotComputed.Inc()
}

// RecordScoreboardAllocated records a scoreboard allocation and its size.
func (p *PrometheusCollector) RecordScoreboardAllocated(slots int) {
	p.ensureRegistered()
	p.boardsAllocated.Inc()
	p.boardSlots.Observe(float64(slots))
}

// RecordScoreboardShared increments the shared-attach counter.
func (p *PrometheusCollector) RecordScoreboardShared() {
	p.ensureRegistered()
	p.boardsShared.Inc()
}

// RecordRegistryEntries sets the registry entry gauge.
func (p *PrometheusCollector) RecordRegistryEntries(count int) {
	p.ensureRegistered()
	p.registryEntries.Set(float64(count))
}
