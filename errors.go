package allocmadvise

import (
	"github.com/hupe1980/allocmadvise/alloc"
	"github.com/hupe1980/allocmadvise/internal/resource"
)

var (
	// ErrEmptyAllocation is returned when zero bytes are requested.
	ErrEmptyAllocation = alloc.ErrEmptyAllocation

	// ErrInvalidAlignment is returned when the size cannot be laid out at the
	// chosen alignment. The concrete error is a *LayoutError.
	ErrInvalidAlignment = alloc.ErrInvalidAlignment

	// ErrMemoryLimitExceeded is returned when an allocation would exceed the
	// budget configured with WithMemoryLimit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

	// ErrRateLimitExceeded is returned by Allocate when an allocation would exceed
	// the rate configured with WithAllocationRate. AllocateContext waits instead.
	ErrRateLimitExceeded = resource.ErrRateLimitExceeded
)

// LayoutError indicates a size/alignment pair that cannot describe a memory block.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type LayoutError = alloc.LayoutError
