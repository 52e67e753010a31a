package bipbuffer

import "github.com/lacc97/bip-buffer/internal/mathx"

// Reservation is a transient handle held by the producer between
// ReserveLargest/ReserveExact and Commit. At most one Reservation may be
// outstanding per Buffer at a time.
//
// The zero Reservation has a nil Span; ReserveExact returns it, alongside
// false, on failure. Committing the zero Reservation is a programmer error.
type Reservation[T any] struct {
	buf  *Buffer[T]
	span []T

	// start is the offset the reservation's span begins at. It is also the
	// base next_head is computed from on commit: in the common case that
	// coincides with the current head, but when a reservation wraps, writes
	// restart at offset 0 and the old head value becomes irrelevant to
	// where the next head will land.
	start     uint32
	markBase  uint32
	markShift bool
	committed bool
}

// Span returns the reserved, writable view into the backing array. Writing
// outside this slice, or past Commit, is undefined.
func (r *Reservation[T]) Span() []T { return r.span }

// Len returns len(r.Span()).
func (r *Reservation[T]) Len() int { return len(r.span) }

// ReserveLargest returns a reservation whose length is at most requested,
// but may be shorter (including zero) if insufficient contiguous space is
// currently available. It never fails and never blocks.
//
// It is a programmer error to call ReserveLargest while a reservation is
// already outstanding on this Buffer.
func (b *Buffer[T]) ReserveLargest(requested int) Reservation[T] {
	check(!b.reserved, "ReserveLargest: a reservation is already outstanding")
	check(requested >= 0, "ReserveLargest: requested must be >= 0, got %d", requested)

	n := uint32(len(b.data))
	h := b.head.loadPlain()
	t := b.tail.loadAcquire()

	var start, length, markBase uint32
	var markShift bool

	switch {
	case h >= t:
		// Linear configuration: committed data occupies [t, h). Two
		// candidate regions are available to write into: the room after
		// head up to the physical end (endGap), and the room before tail
		// if we wrap back to offset 0 (wrapSpace, only meaningful once
		// something has been read, i.e. t > 0). Whichever is larger is the
		// one worth reserving into — reserving into the smaller of the two
		// when the other is bigger would throw away capacity the next
		// reservation could have used contiguously.
		var endGap uint32
		if t > 0 {
			endGap = n - h
		} else {
			endGap = n - 1 - h // reserve the sentinel slot
		}
		var wrapSpace uint32
		if t > 0 {
			wrapSpace = t - 1
		}
		if endGap >= wrapSpace {
			start = h
			length = mathx.Min(uint32(requested), endGap)
			markBase = h
			markShift = true
		} else {
			// Wrap: start writing again at offset 0.
			start = 0
			length = mathx.Min(uint32(requested), wrapSpace)
			markBase = h
			markShift = false
		}
	default:
		// Wrapped configuration: committed data occupies [t, mark) ∪ [0, h).
		start = h
		length = mathx.Min(uint32(requested), t-h-1)
		markBase = b.mark
		markShift = false
	}

	b.reserved = true
	return Reservation[T]{
		buf:       b,
		span:      b.data[start : start+length : start+length],
		start:     start,
		markBase:  markBase,
		markShift: markShift,
	}
}

// ReserveExact succeeds only if a contiguous span of exactly requested
// elements is currently available; otherwise it returns the zero
// Reservation and false, having advanced no indices and left the Buffer
// unchanged. The short reservation ReserveLargest handed back internally is
// retired with Commit(0) rather than dropped, so callers may freely retry
// without tripping the "already outstanding" check.
func (b *Buffer[T]) ReserveExact(requested int) (Reservation[T], bool) {
	r := b.ReserveLargest(requested)
	if r.Len() != requested {
		r.Commit(0)
		return Reservation[T]{}, false
	}
	return r, true
}

// Commit publishes the first count elements of the reservation as readable
// and retires the token. count must be <= r.Len(); count == 0 is a legal
// no-op beyond retiring the token. Committing an already-committed
// Reservation is a programmer error.
func (r *Reservation[T]) Commit(count int) {
	b := r.buf
	check(b != nil, "Commit: called on the zero Reservation")
	check(!r.committed, "Commit: reservation was already committed")
	check(count >= 0 && count <= len(r.span), "Commit: count %d out of range [0, %d]", count, len(r.span))

	if count == 0 {
		// Nothing to publish: leave head and mark exactly as they were.
		b.reserved = false
		r.committed = true
		return
	}

	n := uint32(len(b.data))
	nextHead := (r.start + uint32(count)) % n
	nextMark := r.markBase
	if r.markShift {
		nextMark += uint32(count)
	}

	// mark is producer-private; publish it before head so that by the time
	// the consumer observes the new head via its acquire-load, mark (read
	// unordered by the consumer) already reflects the commit.
	b.mark = nextMark
	b.head.storeRelease(nextHead)
	b.reserved = false
	r.committed = true
}
