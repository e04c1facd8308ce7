//go:build windows

package mmap

import (
	"errors"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// allocationGranularity is the alignment VirtualAlloc guarantees for new regions.
const allocationGranularity = 64 * 1024

// maxReserveAttempts bounds the reserve/release/re-allocate loop, which can lose
// the aligned range to another thread between the release and the allocation.
const maxReserveAttempts = 16

var pageSize = os.Getpagesize()

var errAlignedReserve = errors.New("mmap: could not reserve an aligned range")

func osMapAligned(length, alignment int) (unsafe.Pointer, error) {
	// VirtualAlloc with MEM_COMMIT uses demand-paging: pages are only backed
	// by physical memory when first accessed, similar to Unix mmap behavior.
	if alignment <= allocationGranularity {
		addr, err := windows.VirtualAlloc(0, uintptr(length),
			windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
		if err != nil {
			return nil, err
		}
		return unsafe.Pointer(addr), nil //nolint:govet // address returned by VirtualAlloc
	}

	for i := 0; i < maxReserveAttempts; i++ {
		probe, err := windows.VirtualAlloc(0, uintptr(length+alignment),
			windows.MEM_RESERVE, windows.PAGE_NOACCESS)
		if err != nil {
			return nil, err
		}
		aligned := (probe + uintptr(alignment-1)) &^ uintptr(alignment-1)
		if err := windows.VirtualFree(probe, 0, windows.MEM_RELEASE); err != nil {
			return nil, err
		}

		addr, err := windows.VirtualAlloc(aligned, uintptr(length),
			windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
		if err == nil {
			return unsafe.Pointer(addr), nil //nolint:govet // address returned by VirtualAlloc
		}
	}
	return nil, errAlignedReserve
}

func osUnmap(addr unsafe.Pointer, length int) error {
	// VirtualFree with MEM_RELEASE frees the entire region
	_ = length
	return windows.VirtualFree(uintptr(addr), 0, windows.MEM_RELEASE)
}
