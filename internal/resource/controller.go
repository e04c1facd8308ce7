package resource

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

var (
	// ErrMemoryLimitExceeded is returned when memory limit would be exceeded.
	ErrMemoryLimitExceeded = errors.New("memory limit exceeded")
	// ErrRateLimitExceeded is returned when the allocation rate would be exceeded.
	ErrRateLimitExceeded = errors.New("allocation rate exceeded")
)

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for live allocated bytes.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// AllocRateBytesPerSec caps how many bytes may be allocated per second.
	// The burst equals one second's worth. If 0, unlimited.
	AllocRateBytesPerSec int64
}

// Controller manages the memory budget and allocation rate.
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Rate
	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.AllocRateBytesPerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.AllocRateBytesPerSec), int(cfg.AllocRateBytesPerSec))
	}

	return c
}

// AcquireMemory attempts to reserve memory.
// Returns ErrMemoryLimitExceeded if limit would be exceeded.
// Non-blocking - callers control retry/backoff policy.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// WaitMemory reserves memory, blocking until enough has been released or ctx
// is done. A request larger than the whole limit fails immediately.
func (c *Controller) WaitMemory(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if bytes > c.cfg.MemoryLimitBytes {
			return ErrMemoryLimitExceeded
		}
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// TryAcquireRate attempts to take bytes from the allocation-rate budget without
// blocking. Requests larger than the burst never succeed; use WaitRate for them.
func (c *Controller) TryAcquireRate(bytes int) error {
	if c == nil || c.limiter == nil || bytes <= 0 {
		return nil
	}
	if !c.limiter.AllowN(time.Now(), bytes) {
		return ErrRateLimitExceeded
	}
	return nil
}

// WaitRate waits until the allocation-rate budget allows bytes.
// Requests larger than the burst are taken in burst-sized steps.
func (c *Controller) WaitRate(ctx context.Context, bytes int) error {
	if c == nil || c.limiter == nil {
		return nil
	}
	burst := c.limiter.Burst()
	for bytes > 0 {
		n := min(bytes, burst)
		if err := c.limiter.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}
