package bipbuffer

import "io"

// ByteBuffer is a []byte specialization of Buffer, adding io.Reader and
// io.Writer integration as a thin adapter around the generic core. It owns
// its backing array, unlike Buffer[T] which always borrows one.
//
// ByteBuffer is safe for exactly one producer goroutine calling Write (or
// ReadFrom) and one consumer goroutine calling Read, PeekContiguous,
// ReadSlices, or Consume (or WriteTo), concurrently with each other.
type ByteBuffer struct {
	core *Buffer[byte]
}

var (
	_ io.Reader     = (*ByteBuffer)(nil)
	_ io.Writer     = (*ByteBuffer)(nil)
	_ io.ReaderFrom = (*ByteBuffer)(nil)
	_ io.WriterTo   = (*ByteBuffer)(nil)
)

// NewByteBuffer allocates a ByteBuffer with size bytes of backing storage.
// Usable capacity is size-1. size must be at least 1.
func NewByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{core: New(make([]byte, size))}
}

// Cap returns the length of the backing array (usable capacity is Cap()-1).
func (bb *ByteBuffer) Cap() int { return bb.core.Cap() }

// Reset returns the ByteBuffer to its initial, empty state.
func (bb *ByteBuffer) Reset() { bb.core.Reset() }

// Write reserves, fills, and commits a span for all of p, implementing
// io.Writer. Unlike io.Writer's general contract, Write here is
// all-or-nothing: if a contiguous span of len(p) bytes is not currently
// available, it writes nothing and returns ErrInsufficientSpace.
//
// Write must only be called by the producer goroutine.
func (bb *ByteBuffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	r, ok := bb.core.ReserveExact(len(p))
	if !ok {
		return 0, ErrInsufficientSpace
	}
	copy(r.Span(), p)
	r.Commit(len(p))
	return len(p), nil
}

// Read copies up to len(p) bytes of the currently available contiguous span
// into p, implementing io.Reader. Because a bip-buffer only ever exposes a
// single contiguous span at a time, Read may return fewer bytes than are
// actually committed when the buffer is in the wrapped configuration and
// the high-side region is shorter than len(p) — call Read again to drain
// the rest, or use ReadSlices for the full picture in one call.
//
// Read returns ErrInsufficientData, not (0, nil), when nothing is currently
// available: (0, nil) would violate io.Reader's contract that a Read
// returning no bytes and no error must not be repeated indefinitely.
//
// Read must only be called by the consumer goroutine.
func (bb *ByteBuffer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	v := bb.core.Peek()
	if v.Len() == 0 {
		return 0, ErrInsufficientData
	}
	n := len(p)
	if v.Len() < n {
		n = v.Len()
	}
	copy(p, v.Span()[:n])
	v.Consume(n)
	return n, nil
}

// PeekContiguous returns the contiguous span of committed data currently
// available without consuming it, for zero-copy processing. After
// processing some prefix of it, call Consume to advance past what was
// handled.
func (bb *ByteBuffer) PeekContiguous() []byte {
	return bb.core.Peek().Span()
}

// ReadSlices returns the full committed data currently available, as one
// slice or, when the buffer is in the wrapped configuration with both the
// high-side and low-side regions populated, two. total is len(first) +
// len(second). After processing, call Consume(total) (or less) to advance.
//
// A bip-buffer's Peek normally hands back a single contiguous span by
// design (that is the whole point of the watermark); ReadSlices exists for
// callers that would rather see everything available in one call and are
// prepared to handle a second fragment when one exists.
func (bb *ByteBuffer) ReadSlices() (first, second []byte, total int) {
	b := bb.core
	t := b.tail.loadPlain()
	h := b.head.loadAcquire()

	if h >= t {
		first = b.data[t:h]
		return first, nil, len(first)
	}

	m := b.mark
	if t == m {
		first = b.data[0:h]
		return first, nil, len(first)
	}

	first = b.data[t:m]
	if h == 0 {
		return first, nil, len(first)
	}
	second = b.data[0:h]
	return first, second, len(first) + len(second)
}

// Consume advances past the first n bytes returned by ReadSlices (or
// PeekContiguous), without copying. Returns ErrInsufficientData if n
// exceeds what is currently available.
//
// This reimplements the split-and-publish logic of Buffer.Peek/PeekView.Consume
// directly against tail/head/mark, rather than taking two separate Peek
// snapshots, so that a single Consume call spanning both regions commits
// tail exactly once and cannot observe the producer's state mid-way through.
func (bb *ByteBuffer) Consume(n int) error {
	if n == 0 {
		return nil
	}
	b := bb.core
	t := b.tail.loadPlain()
	h := b.head.loadAcquire()

	if h >= t {
		avail := int(h - t)
		if n > avail {
			return ErrInsufficientData
		}
		b.tail.storeRelease(t + uint32(n))
		return nil
	}

	m := b.mark
	if t == m {
		if n > int(h) {
			return ErrInsufficientData
		}
		b.tail.storeRelease(uint32(n))
		return nil
	}

	highLen := int(m - t)
	lowLen := int(h)
	if n > highLen+lowLen {
		return ErrInsufficientData
	}
	if n <= highLen {
		next := t + uint32(n)
		if next == m {
			next = 0 // full drain of the high region recovers the wrap slack
		}
		b.tail.storeRelease(next)
		return nil
	}
	b.tail.storeRelease(uint32(n - highLen))
	return nil
}

// ReadFrom repeatedly reserves the largest span it can and fills it from r,
// implementing io.ReaderFrom. It stops, without error, when the buffer has
// no space left or r reports io.EOF.
//
// ReadFrom must only be called by the producer goroutine.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		res := bb.core.ReserveLargest(bb.Cap())
		if res.Len() == 0 {
			res.Commit(0)
			return total, nil
		}
		n, err := r.Read(res.Span())
		res.Commit(n)
		total += int64(n)
		if err != nil {
			if err == io.EOF {
				return total, nil
			}
			return total, err
		}
	}
}

// WriteTo drains every committed byte into w, implementing io.WriterTo. It
// stops at the first write error, or once the buffer is empty.
//
// WriteTo must only be called by the consumer goroutine.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for {
		v := bb.core.Peek()
		full := v.Len()
		if full == 0 {
			return total, nil
		}
		n, err := w.Write(v.Span())
		v.Consume(n)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if n < full {
			return total, io.ErrShortWrite
		}
	}
}
