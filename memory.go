package allocmadvise

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/hupe1980/allocmadvise/internal/alignment"
	"github.com/hupe1980/allocmadvise/internal/debug"
)

// Memory is an owned, aligned buffer.
//
// Release it with Close (usually deferred) or Release. The zero value is an
// empty handle. A Memory is not safe for concurrent use.
//
// Example:
//
//	mem, _ := allocmadvise.Allocate(4<<20, true, true)
//	defer mem.Close()
//
//	data := allocmadvise.View[float32](mem)
//	data[0] = 1.234
type Memory struct {
	flags    Flags
	numBytes int
	address  unsafe.Pointer
	owner    *Allocator

	cleanup    runtime.Cleanup
	hasCleanup bool
}

// Release frees the buffer and leaves m empty.
// Releasing an empty handle is a no-op.
func (m *Memory) Release() {
	if m == nil || m.address == nil {
		return
	}
	debug.Assert(m.numBytes > 0, "allocated handle with %d bytes", m.numBytes)

	addr, numBytes, flags := m.detach()
	m.owner.release(context.Background(), addr, numBytes, flags)
}

// Close releases the buffer. It implements io.Closer and always returns nil.
func (m *Memory) Close() error {
	m.Release()
	return nil
}

// detach empties m without freeing the buffer and hands its parts to the caller.
func (m *Memory) detach() (unsafe.Pointer, int, Flags) {
	if m.hasCleanup {
		m.cleanup.Stop()
		m.hasCleanup = false
	}
	addr, numBytes, flags := m.address, m.numBytes, m.flags
	m.address = nil
	m.numBytes = 0
	return addr, numBytes, flags
}

// Len returns the number of bytes allocated.
func (m *Memory) Len() int {
	if m == nil {
		return 0
	}
	return m.numBytes
}

// IsEmpty reports whether m holds no buffer.
func (m *Memory) IsEmpty() bool {
	if m == nil {
		return true
	}
	debug.Assert((m.numBytes > 0) == (m.address != nil),
		"num_bytes %d does not match address %p", m.numBytes, m.address)
	return m.numBytes == 0
}

// Flags returns the allocation flags.
func (m *Memory) Flags() Flags {
	if m == nil {
		return FlagNone
	}
	return m.flags
}

// Alignment returns the byte boundary of the buffer, or 0 when empty.
func (m *Memory) Alignment() int {
	return alignment.Decide(m.Len()).Alignment
}

// Pointer returns the start of the buffer, or nil when empty.
//
// Accessing the address after Release is undefined behavior.
func (m *Memory) Pointer() unsafe.Pointer {
	if m == nil {
		return nil
	}
	return m.address
}

// Bytes returns the buffer as a byte slice, or nil when empty.
//
// The slice is valid only until Release is called.
func (m *Memory) Bytes() []byte {
	return View[byte](m)
}

func (m *Memory) String() string {
	if m.IsEmpty() {
		return "Memory{empty}"
	}
	return fmt.Sprintf("Memory{bytes: %d, alignment: %d, flags: %s}", m.numBytes, m.Alignment(), m.flags)
}
