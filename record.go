package allocmadvise

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/allocmadvise/internal/conv"
	"github.com/hupe1980/allocmadvise/internal/debug"
)

// Status is the outcome code carried by a Record.
type Status uint32

const (
	// StatusOK marks a successful allocation.
	StatusOK Status = 0
	// StatusEmpty marks a zero-byte request.
	StatusEmpty Status = 1 << 0
	// StatusInvalidAlignment marks a size that cannot be laid out.
	StatusInvalidAlignment Status = 1 << 1
	// StatusMemoryLimit marks a request rejected by a memory or rate limit.
	StatusMemoryLimit Status = 1 << 2
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusInvalidAlignment:
		return "invalid_alignment"
	case StatusMemoryLimit:
		return "memory_limit"
	default:
		return "unknown"
	}
}

// StatusOf maps an error returned by Allocate to its Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrEmptyAllocation):
		return StatusEmpty
	case errors.Is(err, ErrMemoryLimitExceeded), errors.Is(err, ErrRateLimitExceeded):
		return StatusMemoryLimit
	default:
		return StatusInvalidAlignment
	}
}

// Record is the flat, non-owning form of a Memory used across the C boundary.
//
// Address is nil whenever Status is not StatusOK.
type Record struct {
	Status   Status
	Flags    Flags
	NumBytes uint32
	Address  unsafe.Pointer
}

// AllocateRecord allocates numBytes with the default Allocator and returns the
// allocation as a Record. Ownership passes to the caller, who must hand the
// record to FreeRecord exactly once.
func AllocateRecord(numBytes uint32, sequential, clear bool) Record {
	n, err := conv.Uint32ToInt(numBytes)
	if err != nil {
		return Record{Status: StatusInvalidAlignment}
	}
	mem, err := Allocate(n, sequential, clear)
	if err != nil {
		return Record{Status: StatusOf(err)}
	}
	addr, _, flags := mem.detach()
	return Record{
		Status:   StatusOK,
		Flags:    flags,
		NumBytes: numBytes,
		Address:  addr,
	}
}

// FreeRecord releases a Record produced by AllocateRecord. Records with a
// non-OK status are ignored.
//
// Freeing the same record twice, or a record not produced by AllocateRecord,
// is undefined behavior.
func FreeRecord(r Record) {
	if r.Status != StatusOK {
		debug.Assert(r.Address == nil, "found address %p for status %s", r.Address, r.Status)
		return
	}
	debug.Assert(r.Address != nil, "found nil address for status ok")

	numBytes, err := conv.Uint32ToInt(r.NumBytes)
	if err != nil {
		panic(fmt.Sprintf("allocmadvise: record size: %v", err))
	}

	mem := &Memory{
		flags:    r.Flags,
		numBytes: numBytes,
		address:  r.Address,
		owner:    defaultAllocator,
	}
	mem.Release()
}
