//go:build darwin || dragonfly || freebsd || netbsd || openbsd || solaris

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
	case AccessFree:
		advice = unix.MADV_FREE
	case AccessHugePage:
		// No madvise equivalent; superpages are promoted by the kernel on its own.
		return nil
	default:
		advice = unix.MADV_NORMAL
	}

	err := unix.Madvise(data, advice)
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}
