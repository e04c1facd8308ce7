package mmap

import (
	"math"
	"unsafe"
)

// MapAligned maps size bytes of zero-filled, read-write anonymous memory whose
// first byte is a multiple of alignment.
//
// The mapping covers size rounded up to the page size. Pass the same size to
// Unmap and Advise.
func MapAligned(size, alignment int) (unsafe.Pointer, error) {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, ErrInvalidAlignment
	}
	length, err := mappedLength(size)
	if err != nil {
		return nil, err
	}
	if alignment > PageSize() && length > math.MaxInt-alignment {
		return nil, ErrInvalidSize
	}
	return osMapAligned(length, alignment)
}

// Unmap releases a mapping created by MapAligned with the same size.
// A nil address is ignored.
func Unmap(addr unsafe.Pointer, size int) error {
	if addr == nil {
		return nil
	}
	length, err := mappedLength(size)
	if err != nil {
		return err
	}
	return osUnmap(addr, length)
}

// Advise provides hints to the kernel about how the mapping will be accessed.
//
// Rejected or unsupported hints are not errors.
func Advise(addr unsafe.Pointer, size int, pattern AccessPattern) error {
	if addr == nil {
		return nil
	}
	length, err := mappedLength(size)
	if err != nil {
		return err
	}
	return osAdvise(unsafe.Slice((*byte)(addr), length), pattern) //nolint:gosec // unsafe is required for off-heap memory
}

// Bytes returns a byte slice over the first size bytes of a mapping.
// The slice is valid only until Unmap is called.
func Bytes(addr unsafe.Pointer, size int) []byte {
	if addr == nil || size <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(addr), size) //nolint:gosec // unsafe is required for off-heap memory
}

// PageSize returns the OS page size.
func PageSize() int {
	return pageSize
}

// mappedLength rounds size up to a whole number of pages.
func mappedLength(size int) (int, error) {
	if size <= 0 {
		return 0, ErrInvalidSize
	}
	mask := pageSize - 1
	if size > math.MaxInt-mask {
		return 0, ErrInvalidSize
	}
	return (size + mask) &^ mask, nil
}
