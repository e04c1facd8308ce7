// Package alloc provides the raw aligned allocate/free primitives.
//
// A successful Allocate returns a Block: a token bundling the address, size
// and alignment of the allocation. Free consumes the same token, so the layout
// handed to the OS on release always matches the one used on allocation.
//
//	b, err := alloc.Allocate(4<<20, 2<<20, true)
//	if err != nil { ... }
//	defer alloc.Free(b)
//
// Memory comes from anonymous OS mappings outside the Go heap. It must not hold
// Go pointers.
//
// # Failure Modes
//
//   - zero bytes: ErrEmptyAllocation
//   - impossible layouts: *LayoutError (errors.Is(err, ErrInvalidAlignment))
//   - OS exhaustion: panic, as with the Go runtime's own allocator
package alloc
