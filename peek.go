package bipbuffer

// PeekView is a transient handle held by the consumer, returned by Peek and
// consumed by at most one call to Consume.
type PeekView[T any] struct {
	buf  *Buffer[T]
	span []T

	tail     uint32
	wrap     bool
	consumed bool
}

// Span returns the contiguous, readable view into the backing array. A new
// Peek call (after Consume, or concurrently with a producer Commit) may
// return a view that has grown; it never shrinks data this view already
// covers.
func (v *PeekView[T]) Span() []T { return v.span }

// Len returns len(v.Span()).
func (v *PeekView[T]) Len() int { return len(v.span) }

// Peek returns the contiguous span of committed data currently available.
// It does not mutate any index and may be called any number of times
// without an intervening Consume — each call returns a fresh snapshot.
// Unlike ReserveLargest, there is no "already outstanding" restriction:
// views are read-only, so multiple live views are harmless as long as at
// most one of them is consumed; consuming a second, stale view would move
// tail back to that view's snapshot.
func (b *Buffer[T]) Peek() PeekView[T] {
	t := b.tail.loadPlain()
	h := b.head.loadAcquire()

	var span []T
	var tailSnap uint32
	var wrap bool

	if h >= t {
		// Linear configuration: committed data occupies [t, h).
		span = b.data[t:h]
		tailSnap = t
	} else {
		// Wrapped configuration: the producer cannot mutate mark again
		// until it observes (via tail) that the high region has drained, so
		// reading mark here without synchronization is safe.
		m := b.mark
		if t == m {
			// The high-side region already drained (e.g. the consumer
			// reached the old head through ordinary linear draining right
			// as the producer's wrap commit became visible). Collapse to
			// the low region and report tail as logically already at 0.
			span = b.data[0:h]
			tailSnap = 0
		} else {
			span = b.data[t:m]
			tailSnap = t
			wrap = true
		}
	}

	return PeekView[T]{buf: b, span: span, tail: tailSnap, wrap: wrap}
}

// Consume releases the first count elements of the view and retires the
// token. count must be <= v.Len(); count == 0 is a legal no-op. If the view
// was flagged as wrapping and count equals its full length, tail jumps to 0
// to recover the high-end slack the watermark fenced off. Consuming an
// already-consumed PeekView is a programmer error.
func (v *PeekView[T]) Consume(count int) {
	b := v.buf
	check(b != nil, "Consume: called on the zero PeekView")
	check(!v.consumed, "Consume: view was already consumed")
	check(count >= 0 && count <= len(v.span), "Consume: count %d out of range [0, %d]", count, len(v.span))

	var nextTail uint32
	if v.wrap && count == len(v.span) {
		nextTail = 0
	} else {
		nextTail = v.tail + uint32(count)
	}
	b.tail.storeRelease(nextTail)
	v.consumed = true
}
