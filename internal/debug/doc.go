// Package debug holds internal invariant checks.
//
// Assertions are compiled in only with the allocmadvise_debug build tag:
//
//	go test -tags allocmadvise_debug ./...
//
// Without the tag every function here is a no-op.
package debug
