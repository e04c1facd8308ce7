package allocmadvise

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// prommetrics package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordAllocate is called after each allocation attempt.
	// duration is the total time taken, err is nil if successful.
	RecordAllocate(numBytes int, flags Flags, duration time.Duration, err error)

	// RecordRelease is called after each release of an allocated Memory.
	RecordRelease(numBytes int, flags Flags, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(int, Flags, time.Duration, error) {}
func (NoopMetricsCollector) RecordRelease(int, Flags, time.Duration)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocateCount      atomic.Int64
	AllocateErrors     atomic.Int64
	AllocateTotalNanos atomic.Int64
	AllocatedBytes     atomic.Int64
	HugePageAllocs     atomic.Int64
	SequentialAllocs   atomic.Int64
	ReleaseCount       atomic.Int64
	ReleaseTotalNanos  atomic.Int64
	ReleasedBytes      atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(numBytes int, flags Flags, duration time.Duration, err error) {
	b.AllocateCount.Add(1)
	b.AllocateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocateErrors.Add(1)
		return
	}
	b.AllocatedBytes.Add(int64(numBytes))
	if flags.Has(FlagHugePages) {
		b.HugePageAllocs.Add(1)
	}
	if flags.Has(FlagSequential) {
		b.SequentialAllocs.Add(1)
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(numBytes int, flags Flags, duration time.Duration) {
	b.ReleaseCount.Add(1)
	b.ReleaseTotalNanos.Add(duration.Nanoseconds())
	b.ReleasedBytes.Add(int64(numBytes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	allocated := b.AllocatedBytes.Load()
	released := b.ReleasedBytes.Load()
	return BasicMetricsStats{
		AllocateCount:    b.AllocateCount.Load(),
		AllocateErrors:   b.AllocateErrors.Load(),
		AllocateAvgNanos: avg(b.AllocateTotalNanos.Load(), b.AllocateCount.Load()),
		AllocatedBytes:   allocated,
		HugePageAllocs:   b.HugePageAllocs.Load(),
		SequentialAllocs: b.SequentialAllocs.Load(),
		ReleaseCount:     b.ReleaseCount.Load(),
		ReleaseAvgNanos:  avg(b.ReleaseTotalNanos.Load(), b.ReleaseCount.Load()),
		ReleasedBytes:    released,
		LiveBytes:        allocated - released,
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocateCount    int64
	AllocateErrors   int64
	AllocateAvgNanos int64
	AllocatedBytes   int64
	HugePageAllocs   int64
	SequentialAllocs int64
	ReleaseCount     int64
	ReleaseAvgNanos  int64
	ReleasedBytes    int64
	LiveBytes        int64
}
