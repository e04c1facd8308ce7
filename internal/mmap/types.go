package mmap

import "errors"

// AccessPattern provides hints to the kernel about how the data will be accessed.
type AccessPattern int

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault AccessPattern = iota
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential
	// AccessRandom expects data to be accessed randomly.
	AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed
	// AccessDontNeed expects data to not be accessed in the near future.
	AccessDontNeed
	// AccessHugePage asks for transparent huge pages backing the range.
	AccessHugePage
	// AccessFree lets the kernel reclaim the pages lazily.
	AccessFree
)

func (p AccessPattern) String() string {
	switch p {
	case AccessDefault:
		return "normal"
	case AccessSequential:
		return "sequential"
	case AccessRandom:
		return "random"
	case AccessWillNeed:
		return "willneed"
	case AccessDontNeed:
		return "dontneed"
	case AccessHugePage:
		return "hugepage"
	case AccessFree:
		return "free"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidSize is returned when the mapping size is not positive or overflows
	// once rounded to the page size.
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrInvalidAlignment is returned when the alignment is not a positive power of two.
	ErrInvalidAlignment = errors.New("mmap: alignment must be a positive power of two")
)
