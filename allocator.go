package allocmadvise

import (
	"context"
	"runtime"
	"time"
	"unsafe"

	"github.com/hupe1980/allocmadvise/alloc"
	"github.com/hupe1980/allocmadvise/internal/alignment"
	"github.com/hupe1980/allocmadvise/internal/debug"
	"github.com/hupe1980/allocmadvise/internal/mmap"
	"github.com/hupe1980/allocmadvise/internal/resource"
)

// Allocator creates Memory handles. It is safe for concurrent use.
//
// An Allocator keeps no record of the handles it created; the memory limit
// only counts bytes.
type Allocator struct {
	logger     *Logger
	metrics    MetricsCollector
	controller *resource.Controller // nil if unlimited
	cleanup    bool
}

var defaultAllocator = NewAllocator()

// NewAllocator creates an Allocator configured by opts.
func NewAllocator(opts ...Option) *Allocator {
	o := applyOptions(opts)

	a := &Allocator{
		logger:  o.logger,
		metrics: o.metricsCollector,
		cleanup: o.cleanup,
	}
	if o.memoryLimit > 0 || o.allocRate > 0 {
		a.controller = resource.NewController(resource.Config{
			MemoryLimitBytes:     o.memoryLimit,
			AllocRateBytesPerSec: o.allocRate,
		})
	}
	return a
}

// Allocate allocates numBytes with the default Allocator.
//
// The optimal alignment will be determined by the number of bytes provided.
// If the amount of bytes is a multiple of 2 MiB, huge page support is requested.
// sequential advises the kernel that access will be mostly sequential and
// clear guarantees the buffer reads as zero.
func Allocate(numBytes int, sequential, clear bool) (*Memory, error) {
	return defaultAllocator.Allocate(numBytes, sequential, clear)
}

// Allocate allocates numBytes. It never blocks on the Allocator's limits.
func (a *Allocator) Allocate(numBytes int, sequential, clear bool) (*Memory, error) {
	return a.allocate(context.Background(), numBytes, sequential, clear, false)
}

// AllocateContext is like Allocate but waits for the memory limit and
// allocation rate to admit the request, until ctx is done.
func (a *Allocator) AllocateContext(ctx context.Context, numBytes int, sequential, clear bool) (*Memory, error) {
	return a.allocate(ctx, numBytes, sequential, clear, true)
}

// MemoryUsage returns the bytes held by live handles when a memory limit or
// allocation rate is configured, and 0 otherwise.
func (a *Allocator) MemoryUsage() int64 {
	return a.controller.MemoryUsage()
}

func (a *Allocator) allocate(ctx context.Context, numBytes int, sequential, clear, wait bool) (mem *Memory, err error) {
	start := time.Now()
	flags := FlagNone
	defer func() {
		a.metrics.RecordAllocate(numBytes, flags, time.Since(start), err)
		a.logger.LogAllocate(ctx, numBytes, flags, err)
	}()

	if numBytes <= 0 {
		return nil, ErrEmptyAllocation
	}

	hint := alignment.Decide(numBytes)

	if err := a.reserve(ctx, numBytes, wait); err != nil {
		return nil, err
	}

	block, err := alloc.Allocate(numBytes, hint.Alignment, clear)
	if err != nil {
		a.controller.ReleaseMemory(int64(numBytes))
		return nil, err
	}
	addr := block.Pointer()

	pattern := mmap.AccessDefault
	if sequential {
		pattern = mmap.AccessSequential
		flags |= FlagSequential
	}
	a.advise(ctx, addr, numBytes, pattern)

	if hint.HugePages {
		a.advise(ctx, addr, numBytes, mmap.AccessHugePage)
		flags |= FlagHugePages
	}

	mem = &Memory{
		flags:    flags,
		numBytes: numBytes,
		address:  addr,
		owner:    a,
	}
	debug.Assert(mem.address != nil, "found nil address for a successful allocation")

	if a.cleanup {
		mem.cleanup = runtime.AddCleanup(mem, releaseUnreachable, unreachable{
			owner:    a,
			address:  addr,
			numBytes: numBytes,
			flags:    flags,
		})
		mem.hasCleanup = true
	}
	return mem, nil
}

func (a *Allocator) reserve(ctx context.Context, numBytes int, wait bool) error {
	if a.controller == nil {
		return nil
	}
	// Memory comes first: a request rejected by the budget must not spend
	// rate tokens.
	if wait {
		if err := a.controller.WaitMemory(ctx, int64(numBytes)); err != nil {
			return err
		}
		if err := a.controller.WaitRate(ctx, numBytes); err != nil {
			a.controller.ReleaseMemory(int64(numBytes))
			return err
		}
		return nil
	}
	if err := a.controller.AcquireMemory(int64(numBytes)); err != nil {
		return err
	}
	if err := a.controller.TryAcquireRate(numBytes); err != nil {
		a.controller.ReleaseMemory(int64(numBytes))
		return err
	}
	return nil
}

// advise applies a kernel hint. Failures are logged and otherwise ignored.
func (a *Allocator) advise(ctx context.Context, addr unsafe.Pointer, numBytes int, pattern mmap.AccessPattern) {
	if err := mmap.Advise(addr, numBytes, pattern); err != nil {
		a.logger.LogAdvise(ctx, pattern.String(), numBytes, err)
	}
}

// release frees an allocation made by this Allocator. The alignment is
// recomputed from numBytes, which only works because alignment.Decide is pure.
func (a *Allocator) release(ctx context.Context, addr unsafe.Pointer, numBytes int, flags Flags) {
	start := time.Now()
	hint := alignment.Decide(numBytes)

	if flags.Has(FlagHugePages) {
		debug.Assert(hint.HugePages, "huge page flag set for %d bytes", numBytes)
		a.advise(ctx, addr, numBytes, mmap.AccessFree)
	}

	alloc.Free(alloc.Reclaim(addr, numBytes, hint.Alignment))

	a.controller.ReleaseMemory(int64(numBytes))
	a.metrics.RecordRelease(numBytes, flags, time.Since(start))
	a.logger.LogRelease(ctx, numBytes, flags)
}

// unreachable carries what a cleanup needs to release a handle that was never
// closed. It must not reference the Memory itself.
type unreachable struct {
	owner    *Allocator
	address  unsafe.Pointer
	numBytes int
	flags    Flags
}

func releaseUnreachable(u unreachable) {
	u.owner.logger.Warn("releasing unreachable memory that was never closed",
		"num_bytes", u.numBytes,
		"flags", u.flags.String(),
	)
	u.owner.release(context.Background(), u.address, u.numBytes, u.flags)
}
