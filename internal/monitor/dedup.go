package monitor

import (
	"sync/atomic"

	"github.com/cespare/xxhash"
)

// Deduplicator remembers the hash of the last buffer it accepted.
type Deduplicator struct {
	lastHash atomic.Uint64
}

// Check hashes data and reports whether it differs from the previous call.
func (d *Deduplicator) Check(data []byte) (uint64, bool) {
	h := xxhash.Sum64(data)
	if h == d.lastHash.Load() {
		return h, false
	}
	d.lastHash.Store(h)
	return h, true
}

// Reset forgets the last hash.
func (d *Deduplicator) Reset() {
	d.lastHash.Store(0)
}
