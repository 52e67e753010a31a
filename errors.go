package bipbuffer

import "errors"

// Errors returned by ByteBuffer's io.Reader/io.Writer adapter methods.
// Compare with errors.Is. These describe the recoverable, expected
// "insufficient capacity" condition; the generic core itself never returns
// an error, since a short or zero-length reservation/peek already
// communicates that condition through length alone.
var (
	// ErrInsufficientSpace indicates a Write could not reserve a span large
	// enough to hold the whole of the requested bytes.
	ErrInsufficientSpace = errors.New("bipbuffer: insufficient space in buffer")

	// ErrInsufficientData indicates a Read or Consume was attempted against
	// a buffer with nothing, or not enough, committed to satisfy it.
	ErrInsufficientData = errors.New("bipbuffer: insufficient data in buffer")
)
