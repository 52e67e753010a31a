//go:build !bipbuffer_singlethread

package bipbuffer

import "sync/atomic"

// index holds one of the head/tail offsets published between the producer
// and consumer goroutines. The default build uses atomic.Uint32, sized down
// from a 64-bit counter since N need not be a power of two and is expected
// to stay well inside uint32 range.
//
// Go's sync/atomic does not expose separate relaxed/acquire/release
// accessors the way C++'s <atomic> does; every load and store here is
// sequentially consistent, which is strictly stronger than what acquire and
// release orderings require but never weaker, so correctness is preserved.
type index struct {
	v atomic.Uint32
}

// loadPlain reads the index from the side that owns it (the producer for
// head, the consumer for tail). No synchronization is required against the
// owner's own prior writes.
func (i *index) loadPlain() uint32 { return i.v.Load() }

// loadAcquire reads the index from the side that does not own it, observing
// the owner's most recent storeRelease.
func (i *index) loadAcquire() uint32 { return i.v.Load() }

// storeRelease publishes a new value to the side that does not own this
// index.
func (i *index) storeRelease(val uint32) { i.v.Store(val) }
