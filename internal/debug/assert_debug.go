//go:build allocmadvise_debug

package debug

import "fmt"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// Assert panics with msg when cond is false.
// This function no-ops unless the allocmadvise_debug build tag is present.
func Assert(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("allocmadvise: assertion failed: "+msg, args...))
	}
}
