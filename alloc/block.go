package alloc

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/allocmadvise/internal/debug"
	"github.com/hupe1980/allocmadvise/internal/mmap"
)

// Block is an aligned allocation. Only Allocate and Reclaim create one and
// only Free releases it. The zero Block holds nothing.
type Block struct {
	addr      unsafe.Pointer
	size      int
	alignment int
}

// Allocate returns a block of exactly numBytes bytes aligned to alignment.
//
// When zero is set every byte reads as zero; otherwise the contents are
// unspecified. Running out of memory panics.
func Allocate(numBytes, alignment int, zero bool) (Block, error) {
	if numBytes <= 0 {
		return Block{}, ErrEmptyAllocation
	}
	if err := checkLayout(numBytes, alignment); err != nil {
		return Block{}, err
	}

	p, err := mmap.MapAligned(numBytes, alignment)
	if err != nil {
		if errors.Is(err, mmap.ErrInvalidSize) || errors.Is(err, mmap.ErrInvalidAlignment) {
			return Block{}, &LayoutError{Size: numBytes, Alignment: alignment, cause: err}
		}
		panic(fmt.Sprintf("alloc: out of memory allocating %d bytes (alignment %d): %v", numBytes, alignment, err))
	}
	debug.Assert(p != nil, "mapping returned a nil address")

	b := Block{addr: p, size: numBytes, alignment: alignment}
	// Fresh anonymous mappings are zero-filled by the OS. Clearing them again
	// would only fault in every page, and so would checking them outside
	// debug builds.
	if zero && debug.Enabled {
		data := b.Bytes()
		debug.Assert(data[0] == 0 && data[numBytes-1] == 0, "mapping is not zero-filled")
	}
	return b, nil
}

// Free releases b. Freeing the zero Block is a no-op.
//
// A block whose layout no longer validates, or that the OS refuses to unmap,
// means the token was forged with the wrong values; Free panics in that case.
func Free(b Block) {
	if b.addr == nil {
		return
	}
	if err := checkLayout(b.size, b.alignment); err != nil {
		// Shouldn't happen if the layout is the same as on allocation.
		panic(fmt.Sprintf("alloc: memory layout error: %v", err))
	}
	if err := mmap.Unmap(b.addr, b.size); err != nil {
		panic(fmt.Sprintf("alloc: unmap %d bytes at %p: %v", b.size, b.addr, err))
	}
}

// Reclaim rebuilds the Block for an address previously returned by Allocate.
//
// numBytes and alignment must be exactly the values passed to Allocate, and
// the block must not have been freed. Anything else is undefined behavior.
// A nil address yields the zero Block.
func Reclaim(addr unsafe.Pointer, numBytes, alignment int) Block {
	if addr == nil {
		return Block{}
	}
	return Block{addr: addr, size: numBytes, alignment: alignment}
}

// Pointer returns the start address, or nil for the zero Block.
func (b Block) Pointer() unsafe.Pointer { return b.addr }

// Len returns the size of the block in bytes.
func (b Block) Len() int { return b.size }

// Alignment returns the byte boundary of the block.
func (b Block) Alignment() int { return b.alignment }

// IsZero reports whether b holds no allocation.
func (b Block) IsZero() bool { return b.addr == nil }

// Bytes returns the block as a byte slice.
// The slice is valid only until Free is called.
func (b Block) Bytes() []byte {
	return mmap.Bytes(b.addr, b.size)
}
