//go:build bipbuffer_unsafe

package bipbuffer

// check is a no-op in the unsafe build: contract violations are undefined
// behavior instead of a panic, trading a fatal, identifiable failure for the
// cost of the check on the fast path.
func check(cond bool, format string, args ...any) {}
