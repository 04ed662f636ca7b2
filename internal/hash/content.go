// Package hash provides content fingerprinting for shared-scoreboard lookup.
package hash

import (
	"encoding/binary"
	"time"

	"github.com/zeebo/xxh3"
)

// Digest folds a sequence of values into a single 64-bit XXH3 fingerprint.
//
// Each fold uses the running hash as the seed for the next value, so the
// result is order-sensitive and stable without building an intermediate
// concatenated buffer. Digests with the same fold sequence produce the same
// fingerprint; collisions are possible and callers must treat the result as
// a first-level index only, falling back to full structural comparison.
type Digest struct {
	h uint64
}

// New creates a Digest with the given seed (use 0 for the default).
func New(seed uint64) *Digest {
	return &Digest{h: seed}
}

// FoldString folds a string into the digest.
func (d *Digest) FoldString(s string) *Digest {
	d.h = xxh3.HashStringSeed(s, d.h)

	return d
}

// FoldUint64 folds an unsigned 64-bit value into the digest.
func (d *Digest) FoldUint64(v uint64) *Digest {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	d.h = xxh3.HashSeed(b[:], d.h)

	return d
}

// FoldInt64 folds a signed 64-bit value into the digest.
func (d *Digest) FoldInt64(v int64) *Digest {
	return d.FoldUint64(uint64(v)) //nolint:gosec
}

// FoldTime folds an instant into the digest with nanosecond precision.
func (d *Digest) FoldTime(t time.Time) *Digest {
	return d.FoldInt64(t.UnixNano())
}

// FoldDuration folds a duration into the digest.
func (d *Digest) FoldDuration(v time.Duration) *Digest {
	return d.FoldInt64(int64(v))
}

// Sum64 returns the current fingerprint.
func (d *Digest) Sum64() uint64 {
	return d.h
}
