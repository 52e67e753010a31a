package bipbuffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLinearFillDrain covers the basic linear fill-then-drain path, with no
// wrap involved.
func TestLinearFillDrain(t *testing.T) {
	buf := New(make([]byte, 17))

	r := buf.ReserveLargest(16)
	require.Equal(t, 16, r.Len())
	copy(r.Span(), []byte("Hello"))
	r.Commit(5)

	v := buf.Peek()
	require.Equal(t, "Hello", string(v.Span()))
	v.Consume(5)

	require.Equal(t, uint32(5), buf.head.loadPlain())
	require.Equal(t, uint32(5), buf.tail.loadPlain())
	require.Equal(t, uint32(5), buf.mark)
}

// TestWrapWithWatermark continues from TestLinearFillDrain's final state
// (head = tail = mark = 5) and exercises a reservation that must wrap to
// satisfy an exact request, followed by consuming across the watermark.
func TestWrapWithWatermark(t *testing.T) {
	buf := New(make([]byte, 17))
	buf.head.storeRelease(5)
	buf.tail.storeRelease(5)
	buf.mark = 5

	_, ok := buf.ReserveExact(16)
	require.False(t, ok)
	// A failed ReserveExact must leave the buffer untouched so the caller
	// can retry freely.
	require.Equal(t, uint32(5), buf.head.loadPlain())

	r, ok := buf.ReserveExact(11)
	require.True(t, ok)
	copy(r.Span(), []byte(", World!!"))
	r.Commit(9)
	require.Equal(t, uint32(14), buf.head.loadPlain())

	r2, ok := buf.ReserveExact(4)
	require.True(t, ok, "reservation should wrap to satisfy the exact request")
	copy(r2.Span(), []byte("!!!!"))
	r2.Commit(4)

	require.Equal(t, uint32(4), buf.head.loadPlain())
	require.Equal(t, uint32(5), buf.tail.loadPlain())
	require.Equal(t, uint32(14), buf.mark)

	v := buf.Peek()
	require.Equal(t, ", World!!", string(v.Span()))
	v.Consume(2)

	v2 := buf.Peek()
	require.Equal(t, "World!!", string(v2.Span()))
	v2.Consume(v2.Len())
	require.Equal(t, uint32(0), buf.tail.loadPlain())

	v3 := buf.Peek()
	require.Equal(t, "!!!!", string(v3.Span()))
	v3.Consume(4)

	require.Equal(t, uint32(14), buf.mark)
	require.Equal(t, uint32(4), buf.head.loadPlain())
	require.Equal(t, uint32(4), buf.tail.loadPlain())
}

// TestBoundarySentinelCommit checks that the sentinel slot is never handed
// out: on a 4-element buffer with nothing read yet, the largest reservable
// span is 3, not 4.
func TestBoundarySentinelCommit(t *testing.T) {
	buf := New(make([]byte, 4))

	r := buf.ReserveLargest(10)
	require.Equal(t, 3, r.Len())
	r.Commit(3)
	require.Equal(t, uint32(3), buf.head.loadPlain())

	r2 := buf.ReserveLargest(10)
	require.Equal(t, 0, r2.Len())
	r2.Commit(0)
}

// TestFullDrainCycle checks that alternating fill and drain never deadlocks
// and every structural invariant holds throughout, even though a single
// ReserveLargest call may come back short of N-1 depending on where tail
// currently sits (the "largest of the two candidate regions" rule in
// reservation.go does not always leave a full N-1 contiguous run available
// in one shot after a wrap).
func TestFullDrainCycle(t *testing.T) {
	const n = 9
	buf := New(make([]byte, n))

	var next byte
	for i := 0; i < 2000; i++ {
		r := buf.ReserveLargest(n - 1)
		for j := range r.Span() {
			r.Span()[j] = next
			next++
		}
		r.Commit(r.Len())
		requireInvariants(t, buf)

		v := buf.Peek()
		v.Consume(v.Len())
		requireInvariants(t, buf)
	}
}

// requireInvariants checks the structural invariants that must hold for any
// reachable head/tail/mark combination.
func requireInvariants(t *testing.T, buf *Buffer[byte]) {
	t.Helper()
	n := uint32(buf.Cap())
	h := buf.head.loadPlain()
	tl := buf.tail.loadPlain()
	m := buf.mark

	require.Less(t, h, n)
	require.Less(t, tl, n)
	require.LessOrEqual(t, m, n)
	if h < tl {
		require.LessOrEqual(t, h, m)
		require.LessOrEqual(t, tl, m)
	}
}

// TestAbandonedReservationRejected checks that a second reservation is
// rejected while an earlier one is still outstanding.
func TestAbandonedReservationRejected(t *testing.T) {
	buf := New(make([]byte, 32))

	buf.ReserveLargest(10)

	require.Panics(t, func() {
		buf.ReserveLargest(10)
	})
}

func TestCommitRejectsOverLength(t *testing.T) {
	buf := New(make([]byte, 32))
	r := buf.ReserveLargest(10)

	require.Panics(t, func() {
		r.Commit(11)
	})
}

func TestCommitTwicePanics(t *testing.T) {
	buf := New(make([]byte, 32))
	r := buf.ReserveLargest(10)
	r.Commit(5)

	require.Panics(t, func() {
		r.Commit(1)
	})
}

func TestCommitZeroIsNoop(t *testing.T) {
	buf := New(make([]byte, 32))
	r := buf.ReserveLargest(10)
	r.Commit(0)

	require.Equal(t, uint32(0), buf.head.loadPlain())
	require.Equal(t, uint32(0), buf.mark)

	// the outstanding flag was retired, so a new reservation is allowed
	r2 := buf.ReserveLargest(5)
	require.Equal(t, 5, r2.Len())
}
