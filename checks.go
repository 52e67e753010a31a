//go:build !bipbuffer_unsafe

package bipbuffer

import "fmt"

// check panics identifying the violated invariant when cond is false. It is
// the safety-checked build's response to programmer errors (empty backing
// array, over-commit, over-consume, double commit, overlapping tokens):
// fatal, no partial recovery attempted, because a violation means the
// single-producer/single-consumer discipline is already broken.
//
// Build with -tags bipbuffer_unsafe to elide every call site below for
// release builds that have already been validated.
func check(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("bipbuffer: "+format, args...))
	}
}
