package shiftboard

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/rmontanezjr/shiftboard/internal/logging"
	"github.com/rmontanezjr/shiftboard/internal/metrics"
	"github.com/rmontanezjr/shiftboard/internal/scoreboard"
	"github.com/rmontanezjr/shiftboard/types"
)

// Registry maps assignment-set content to shared scoreboards.
//
// Many assignment sets across a project are structurally identical (e.g.
// resources using the same named shift); materializing one scoreboard per
// set would waste O(project-duration) memory each. The registry keeps one
// scoreboard per distinct (assignment content, project calendar) class and
// tracks its current owners, pruning the entry when the last owner detaches.
//
// The registry is an explicit object with a clearly scoped lifetime — create
// one per scheduling run and pass it to the sets that should share (see
// WithRegistry) — rather than process-global state, so tests get isolation
// for free.
//
// Lookup uses a 64-bit content fingerprint as a first-level index; the
// authoritative comparison is structural equality against the entry's first
// recorded owner, so fingerprint collisions only cost a failed comparison,
// never a wrong share. Comparing against a single representative owner is
// sufficient because all owners of one entry are structurally equal to each
// other at all times: sets detach before any content mutation.
type Registry struct {
	logger  types.Logger
	metrics types.MetricsCollector

	buckets *xsync.Map[uint64, *registryBucket]
	entries atomic.Int64
}

// registryBucket holds the entries sharing one content fingerprint.
//
// A bucket that lost its last entry is tombstoned (dead) before being
// deleted from the map; an acquirer that raced the deletion observes the
// flag and retries against a fresh bucket.
type registryBucket struct {
	mu      sync.Mutex
	dead    bool
	entries []*registryEntry
}

// registryEntry is one (assignment content, calendar) equivalence class.
// owners[0] is the representative for structural comparison.
type registryEntry struct {
	owners []*ShiftAssignmentSet
	board  *scoreboard.Board
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the registry's logger.
func WithRegistryLogger(logger types.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithRegistryMetrics sets the registry's metrics collector.
func WithRegistryMetrics(m types.MetricsCollector) RegistryOption {
	return func(r *Registry) {
		r.metrics = m
	}
}

// NewRegistry creates an empty shared-scoreboard registry.
//
// Parameters:
//   - opts: Functional options (WithRegistryLogger, WithRegistryMetrics)
//
// Returns:
//   - *Registry: The registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		logger:  logging.NewNop(),
		metrics: metrics.NewNop(),
		buckets: xsync.NewMap[uint64, *registryBucket](),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Len returns the current number of distinct registry entries.
func (r *Registry) Len() int {
	return int(r.entries.Load())
}

// acquire resolves a scoreboard for the requesting set, reusing the
// scoreboard of a structurally equal entry or allocating a new one. The
// returned key is the fingerprint the set must pass back to release.
func (r *Registry) acquire(s *ShiftAssignmentSet) (*scoreboard.Board, uint64) {
	key := s.fingerprint()

	for {
		bucket, _ := r.buckets.LoadOrStore(key, &registryBucket{})
		bucket.mu.Lock()
		if bucket.dead {
			bucket.mu.Unlock()

			continue
		}

		for _, entry := range bucket.entries {
			if entry.owners[0].Equal(s) {
				entry.owners = append(entry.owners, s)
				owners := len(entry.owners)
				bucket.mu.Unlock()

				r.metrics.RecordScoreboardShared()
				r.logger.Debug("scoreboard shared", "set", s.id, "owners", owners)

				return entry.board, key
			}
		}

		board := scoreboard.New(s.calendar)
		bucket.entries = append(bucket.entries, &registryEntry{
			owners: []*ShiftAssignmentSet{s},
			board:  board,
		})
		bucket.mu.Unlock()

		count := r.entries.Add(1)
		r.metrics.RecordScoreboardAllocated(board.SlotCount())
		r.metrics.RecordRegistryEntries(int(count))
		r.logger.Debug("scoreboard allocated", "set", s.id, "slots", board.SlotCount(), "entries", count)

		return board, key
	}
}

// release removes the set's ownership share from the entry it attached
// under key, deleting the entry when its owner list empties.
func (r *Registry) release(key uint64, s *ShiftAssignmentSet) {
	bucket, ok := r.buckets.Load(key)
	if !ok {
		return
	}

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	for i, entry := range bucket.entries {
		j := slices.IndexFunc(entry.owners, func(owner *ShiftAssignmentSet) bool {
			return owner.id == s.id
		})
		if j < 0 {
			continue
		}

		entry.owners = slices.Delete(entry.owners, j, j+1)
		if len(entry.owners) == 0 {
			bucket.entries = slices.Delete(bucket.entries, i, i+1)
			count := r.entries.Add(-1)
			r.metrics.RecordRegistryEntries(int(count))
			r.logger.Debug("scoreboard entry pruned", "set", s.id, "entries", count)

			if len(bucket.entries) == 0 {
				bucket.dead = true
				r.buckets.Delete(key)
			}
		}

		return
	}
}
