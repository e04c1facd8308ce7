// Command libmadvise builds allocmadvise as a C library.
//
// Build a shared library like this:
//
//	go build -buildmode=c-shared -o libmadvise.so ./cmd/libmadvise
//
// Build a static library like this:
//
//	go build -buildmode=c-archive -o libmadvise.a ./cmd/libmadvise
//
// Both commands also generate libmadvise.h, which declares the functions and
// the madvise_block struct below.
//
// Every block returned by allocate_block must be passed to free_block exactly
// once. Blocks whose status is not MADVISE_OK hold no memory.
package main

/*
#include <stdint.h>

typedef enum {
	MADVISE_OK                = 0,
	MADVISE_EMPTY             = 1,
	MADVISE_INVALID_ALIGNMENT = 2,
	MADVISE_MEMORY_LIMIT      = 4,
} madvise_status;

typedef enum {
	MADVISE_FLAG_NONE       = 0,
	MADVISE_FLAG_HUGE_PAGES = 1,
	MADVISE_FLAG_SEQUENTIAL = 2,
} madvise_flags;

typedef struct {
	uint32_t status;
	uint32_t flags;
	uint32_t num_bytes;
	void*    address;
} madvise_block;
*/
import "C"

import (
	"unsafe"

	"github.com/hupe1980/allocmadvise"
)

var version = C.CString(allocmadvise.Version)

// allocate_block allocates num_bytes with the default allocator. Non-zero
// sequential and clear enable the respective behavior.
//
//export allocate_block
func allocate_block(numBytes C.uint32_t, sequential, clear C.int) C.madvise_block { //nolint:revive // C naming
	r := allocmadvise.AllocateRecord(uint32(numBytes), sequential != 0, clear != 0)
	return toC(r)
}

// free_block releases a block returned by allocate_block.
//
//export free_block
func free_block(b C.madvise_block) { //nolint:revive // C naming
	allocmadvise.FreeRecord(fromC(b))
}

// madvise_version returns the library version. The string is owned by the
// library and must not be freed.
//
//export madvise_version
func madvise_version() *C.char { //nolint:revive // C naming
	return version
}

func toC(r allocmadvise.Record) C.madvise_block {
	return C.madvise_block{
		status:    C.uint32_t(r.Status),
		flags:     C.uint32_t(r.Flags),
		num_bytes: C.uint32_t(r.NumBytes),
		address:   r.Address,
	}
}

func fromC(b C.madvise_block) allocmadvise.Record {
	return allocmadvise.Record{
		Status:   allocmadvise.Status(b.status),
		Flags:    allocmadvise.Flags(b.flags),
		NumBytes: uint32(b.num_bytes),
		Address:  unsafe.Pointer(b.address), //nolint:gosec // memory is not managed by Go
	}
}

func main() {}
