// Package bipbuffer provides a lock-free SPSC (Single Producer Single
// Consumer) bipartite circular buffer, commonly called a "bip-buffer".
//
// Unlike a classic ring buffer, which can hand back data split into two
// fragments across the wrap point, a bip-buffer always hands back a single
// contiguous span to whichever side asks for one. It does this by leaving a
// watermark in the backing array when the producer wraps, at the cost of one
// sentinel slot of usable capacity.
//
// # Thread Safety
//
// Buffer is safe for exactly one producer goroutine and one consumer
// goroutine running concurrently, and for no more than that. Binding either
// role to more than one goroutine causes data races.
//
// # Non-blocking
//
// No operation on Buffer blocks. Reservations and peeks return short (or
// zero-length) results rather than waiting for space or data; callers that
// need to wait implement their own backoff.
//
// # Basic usage
//
//	buf := bipbuffer.New(make([]byte, 1024))
//
//	// Producer goroutine
//	r := buf.ReserveLargest(5)
//	copy(r.Span(), []byte("hello"))
//	r.Commit(5)
//
//	// Consumer goroutine
//	v := buf.Peek()
//	fmt.Println(string(v.Span()))
//	v.Consume(v.Len())
//
// For byte streams specifically, ByteBuffer wraps Buffer[byte] with
// io.Reader and io.Writer implementations.
package bipbuffer
