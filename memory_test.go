package allocmadvise

import (
	"context"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_HugePagesSequential(t *testing.T) {
	const size = 4 << 20

	mem, err := Allocate(size, true, true)
	require.NoError(t, err)
	defer mem.Close()

	assert.False(t, mem.IsEmpty())
	assert.Equal(t, size, mem.Len())
	assert.Equal(t, FlagHugePages|FlagSequential, mem.Flags())
	assert.Equal(t, 2<<20, mem.Alignment())
	assert.Zero(t, uintptr(mem.Pointer())%(2<<20))

	data := mem.Bytes()
	require.Len(t, data, size)
	for i := 0; i < size; i += 4096 {
		if data[i] != 0 {
			t.Fatalf("byte %d is %d, want 0", i, data[i])
		}
	}
	assert.Zero(t, data[size-1])
}

func TestAllocate_CacheLineAligned(t *testing.T) {
	for _, size := range []int{1 << 20, 63 * 1024, 1, 4097} {
		mem, err := Allocate(size, false, false)
		require.NoError(t, err)

		assert.Equal(t, size, mem.Len())
		assert.Equal(t, FlagNone, mem.Flags(), "size %d", size)
		assert.Equal(t, 64, mem.Alignment())
		assert.Zero(t, uintptr(mem.Pointer())%64)

		mem.Release()
		assert.True(t, mem.IsEmpty())
	}
}

func TestAllocate_SequentialOnly(t *testing.T) {
	mem, err := Allocate(1<<20, true, false)
	require.NoError(t, err)
	defer mem.Close()

	assert.Equal(t, FlagSequential, mem.Flags())
}

func TestAllocate_Empty(t *testing.T) {
	mem, err := Allocate(0, false, false)
	require.ErrorIs(t, err, ErrEmptyAllocation)
	assert.Nil(t, mem)

	mem, err = Allocate(-1, true, true)
	require.ErrorIs(t, err, ErrEmptyAllocation)
	assert.Nil(t, mem)
}

func TestMemory_ReleaseIsIdempotent(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	a := NewAllocator(WithMetricsCollector(metrics))

	mem, err := a.Allocate(2<<20, false, false)
	require.NoError(t, err)

	mem.Release()
	assert.True(t, mem.IsEmpty())
	assert.Zero(t, mem.Len())
	assert.Nil(t, mem.Pointer())
	assert.Nil(t, mem.Bytes())
	assert.Zero(t, mem.Alignment())

	mem.Release()
	require.NoError(t, mem.Close())

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.AllocateCount)
	assert.Equal(t, int64(1), stats.ReleaseCount)
	assert.Equal(t, int64(1), stats.HugePageAllocs)
	assert.Zero(t, stats.LiveBytes)
}

func TestMemory_ZeroValue(t *testing.T) {
	var mem Memory
	assert.True(t, mem.IsEmpty())
	assert.Zero(t, mem.Len())
	assert.Equal(t, FlagNone, mem.Flags())
	assert.Nil(t, mem.Bytes())
	assert.Equal(t, "Memory{empty}", mem.String())
	mem.Release()

	var nilMem *Memory
	assert.True(t, nilMem.IsEmpty())
	assert.Zero(t, nilMem.Len())
	assert.Nil(t, nilMem.Pointer())
	nilMem.Release()
}

func TestMemory_String(t *testing.T) {
	mem, err := Allocate(2<<20, true, false)
	require.NoError(t, err)
	defer mem.Close()

	assert.Equal(t, "Memory{bytes: 2097152, alignment: 2097152, flags: huge_pages|sequential}", mem.String())
}

func TestMemory_ReadWrite(t *testing.T) {
	mem, err := Allocate(1024, false, true)
	require.NoError(t, err)
	defer mem.Close()

	data := mem.Bytes()
	for i := range data {
		data[i] = byte(i)
	}
	for i, v := range mem.Bytes() {
		require.Equal(t, byte(i), v)
	}
}

func TestAllocator_MemoryLimit(t *testing.T) {
	a := NewAllocator(WithMemoryLimit(2 << 20))

	first, err := a.Allocate(2<<20, false, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2<<20), a.MemoryUsage())

	_, err = a.Allocate(64, false, false)
	require.ErrorIs(t, err, ErrMemoryLimitExceeded)

	first.Release()
	assert.Zero(t, a.MemoryUsage())

	second, err := a.Allocate(64, false, false)
	require.NoError(t, err)
	second.Release()
}

func TestAllocator_AllocateContextWaits(t *testing.T) {
	a := NewAllocator(WithMemoryLimit(1 << 20))

	held, err := a.Allocate(1<<20, false, false)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = a.AllocateContext(ctx, 1024, false, false)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	done := make(chan *Memory)
	go func() {
		mem, err := a.AllocateContext(context.Background(), 1024, false, false)
		assert.NoError(t, err)
		done <- mem
	}()

	time.Sleep(10 * time.Millisecond)
	held.Release()

	select {
	case mem := <-done:
		require.NotNil(t, mem)
		assert.Equal(t, 1024, mem.Len())
		mem.Release()
	case <-time.After(5 * time.Second):
		t.Fatal("AllocateContext did not resume after release")
	}
}

func TestAllocator_AllocateContextTooLarge(t *testing.T) {
	a := NewAllocator(WithMemoryLimit(1024))

	_, err := a.AllocateContext(context.Background(), 4096, false, false)
	require.ErrorIs(t, err, ErrMemoryLimitExceeded)
}

func TestAllocator_AllocationRate(t *testing.T) {
	a := NewAllocator(WithAllocationRate(4096))

	mem, err := a.Allocate(4096, false, false)
	require.NoError(t, err)
	mem.Release()

	_, err = a.Allocate(4096, false, false)
	require.ErrorIs(t, err, ErrRateLimitExceeded)
}

func TestAllocator_MemoryLimitKeepsRate(t *testing.T) {
	a := NewAllocator(WithMemoryLimit(2048), WithAllocationRate(4096))

	_, err := a.Allocate(4096, false, false)
	require.ErrorIs(t, err, ErrMemoryLimitExceeded)

	// The rejected request took no rate tokens.
	mem, err := a.Allocate(2048, false, false)
	require.NoError(t, err)
	mem.Release()
}

func TestAllocator_RateLimitKeepsMemory(t *testing.T) {
	a := NewAllocator(WithMemoryLimit(1<<20), WithAllocationRate(1024))

	_, err := a.Allocate(4096, false, false)
	require.ErrorIs(t, err, ErrRateLimitExceeded)
	assert.Zero(t, a.MemoryUsage())
}

func TestAllocator_FailedAllocationKeepsBudget(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	a := NewAllocator(WithMemoryLimit(1<<20), WithMetricsCollector(metrics))

	_, err := a.Allocate(2<<20, false, false)
	require.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Zero(t, a.MemoryUsage())

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.AllocateCount)
	assert.Equal(t, int64(1), stats.AllocateErrors)
	assert.Zero(t, stats.AllocatedBytes)
}

func TestAllocator_CleanupReleasesUnreachable(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	a := NewAllocator(WithCleanup(), WithMetricsCollector(metrics))

	func() {
		mem, err := a.Allocate(64*1024, false, false)
		require.NoError(t, err)
		mem.Bytes()[0] = 1
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return metrics.ReleaseCount.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Zero(t, metrics.GetStats().LiveBytes)
}

func TestAllocator_CleanupStoppedOnRelease(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	a := NewAllocator(WithCleanup(), WithMetricsCollector(metrics))

	func() {
		mem, err := a.Allocate(64*1024, false, false)
		require.NoError(t, err)
		mem.Release()
	}()

	for range 3 {
		runtime.GC()
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, int64(1), metrics.ReleaseCount.Load())
}

func BenchmarkAllocateRelease(b *testing.B) {
	for _, size := range []int{4096, 1 << 20, 2 << 20} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				mem, err := Allocate(size, true, false)
				if err != nil {
					b.Fatal(err)
				}
				mem.Release()
			}
		})
	}
}
