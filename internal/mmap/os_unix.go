//go:build unix

package mmap

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

var pageSize = unix.Getpagesize()

func osMapAligned(length, alignment int) (unsafe.Pointer, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANON | unix.MAP_PRIVATE

	// mmap already returns page-aligned addresses.
	if alignment <= pageSize {
		return unix.MmapPtr(-1, 0, nil, uintptr(length), prot, flags)
	}

	total := length + alignment
	base, err := unix.MmapPtr(-1, 0, nil, uintptr(total), prot, flags)
	if err != nil {
		return nil, err
	}

	// head and tail are whole pages: base is page-aligned and alignment is a
	// larger power of two.
	addr := uintptr(base)
	head := int((addr+uintptr(alignment-1))&^uintptr(alignment-1) - addr)
	tail := total - head - length

	aligned := unsafe.Add(base, head)
	if head > 0 {
		if err := unix.MunmapPtr(base, uintptr(head)); err != nil {
			_ = unix.MunmapPtr(base, uintptr(total))
			return nil, err
		}
	}
	if tail > 0 {
		if err := unix.MunmapPtr(unsafe.Add(aligned, length), uintptr(tail)); err != nil {
			_ = unix.MunmapPtr(aligned, uintptr(length+tail))
			return nil, err
		}
	}
	return aligned, nil
}

func osUnmap(addr unsafe.Pointer, length int) error {
	return unix.MunmapPtr(addr, uintptr(length))
}
