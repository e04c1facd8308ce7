//go:build linux

package mmap

import (
	"errors"

	"golang.org/x/sys/unix"
)

func osAdvise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 {
		return nil
	}

	var advice int
	switch pattern {
	case AccessSequential:
		advice = unix.MADV_SEQUENTIAL
	case AccessRandom:
		advice = unix.MADV_RANDOM
	case AccessWillNeed:
		advice = unix.MADV_WILLNEED
	case AccessDontNeed:
		advice = unix.MADV_DONTNEED
	case AccessHugePage:
		advice = unix.MADV_HUGEPAGE
	case AccessFree:
		advice = unix.MADV_FREE
	default:
		advice = unix.MADV_NORMAL
	}

	// EINVAL covers kernels built without transparent huge pages or MADV_FREE.
	// The hint is advisory, so it is not an error.
	err := unix.Madvise(data, advice)
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}
