//go:build !allocmadvise_debug

package debug

// Enabled reports whether assertions are compiled in.
const Enabled = false

// Assert panics with msg when cond is false.
// This function no-ops unless the allocmadvise_debug build tag is present.
func Assert(cond bool, msg string, args ...any) {}
