package bipbuffer

import "math"

// Buffer is a bipartite circular buffer over an externally owned element
// array of fixed length N. Exactly one producer goroutine may call
// ReserveLargest/ReserveExact/Commit, and exactly one consumer goroutine may
// call Peek/Consume, concurrently with each other but not with themselves.
//
// The zero value is not usable; construct with New.
type Buffer[T any] struct {
	data []T

	head index
	_    [64]byte // separate cache lines to avoid false sharing between head and tail
	tail index
	_    [64]byte

	// mark is the watermark: the exclusive upper bound of the high-side
	// committed region while the buffer is in the wrapped configuration.
	// Written only by the producer, read by the consumer only when it has
	// already observed head < tail via the acquire-load of head, which is
	// what makes an unsynchronized read safe here: the producer cannot move
	// mark again until the consumer's own progress is visible back to it.
	mark uint32

	// reserved enforces the "at most one outstanding reservation" discipline:
	// a second ReserveLargest/ReserveExact call is rejected while a prior
	// one hasn't been committed. Touched only by the producer, so it needs
	// no synchronization of its own.
	//
	// Peek carries no equivalent flag: a fresh Peek may be issued at any
	// time, with or without consuming a previous one, since peeks are
	// read-only and never mutate indices. Double-consuming a single
	// PeekView is instead guarded per-token, by PeekView.consumed.
	reserved bool
}

// New binds a Buffer to data. len(data) must be at least 1; an empty slice
// is a programmer error, as is a length that does not fit the uint32
// indices. Usable capacity is len(data)-1: one sentinel slot is reserved to
// distinguish full from empty without a separate counter.
func New[T any](data []T) *Buffer[T] {
	check(len(data) > 0, "New: backing array must have length >= 1, got 0")
	check(uint64(len(data)) <= math.MaxUint32, "New: backing array length %d exceeds uint32 range", len(data))
	return &Buffer[T]{data: data}
}

// Cap returns len(N), the length of the backing array. Usable capacity is
// Cap()-1.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Reset returns the Buffer to its initial state (head = tail = mark = 0).
// It is a programmer error to call Reset while a reservation is
// outstanding.
func (b *Buffer[T]) Reset() {
	check(!b.reserved, "Reset: called with a reservation outstanding")
	b.head.storeRelease(0)
	b.tail.storeRelease(0)
	b.mark = 0
}
