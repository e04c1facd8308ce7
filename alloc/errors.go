package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAllocation is returned when zero bytes are requested.
	ErrEmptyAllocation = errors.New("empty allocation")
	// ErrInvalidAlignment is matched by every *LayoutError.
	ErrInvalidAlignment = errors.New("invalid alignment")
)

// LayoutError indicates that a size/alignment pair cannot describe a memory block.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type LayoutError struct {
	Size      int
	Alignment int
	cause     error
}

func (e *LayoutError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid layout (size %d, alignment %d): %v", e.Size, e.Alignment, e.cause)
	}
	return fmt.Sprintf("invalid layout (size %d, alignment %d)", e.Size, e.Alignment)
}

func (e *LayoutError) Unwrap() error { return e.cause }

// Is reports ErrInvalidAlignment as a match.
func (e *LayoutError) Is(target error) bool { return target == ErrInvalidAlignment }
