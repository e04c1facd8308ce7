package benchmark_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/hupe1980/allocmadvise"
	"github.com/hupe1980/allocmadvise/testutil"
)

// Sizes cover both alignment classes: cache line and huge page.
var benchSizes = []int{4 << 10, 63 << 10, 1 << 20, 2 << 20, 16 << 20}

// BenchmarkAllocate measures an allocate/release round trip without touching
// the pages.
func BenchmarkAllocate(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			runtime.GC()
			b.ReportAllocs()
			for b.Loop() {
				mem, err := allocmadvise.Allocate(size, false, false)
				if err != nil {
					b.Fatal(err)
				}
				mem.Release()
			}
		})
	}
}

// BenchmarkAllocateTouch also writes one byte per page, which is where huge
// pages pay off.
func BenchmarkAllocateTouch(b *testing.B) {
	for _, size := range benchSizes {
		for _, sequential := range []bool{false, true} {
			b.Run(fmt.Sprintf("size=%d/sequential=%t", size, sequential), func(b *testing.B) {
				runtime.GC()
				b.SetBytes(int64(size))
				for b.Loop() {
					mem, err := allocmadvise.Allocate(size, sequential, true)
					if err != nil {
						b.Fatal(err)
					}
					touch(mem.Bytes())
					mem.Release()
				}
			})
		}
	}
}

// BenchmarkMakeTouch is the Go heap baseline for BenchmarkAllocateTouch.
func BenchmarkMakeTouch(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			runtime.GC()
			b.SetBytes(int64(size))
			for b.Loop() {
				touch(make([]byte, size))
			}
		})
	}
}

// BenchmarkSequentialScan sums a float view that was filled once.
func BenchmarkSequentialScan(b *testing.B) {
	const size = 16 << 20

	mem, err := allocmadvise.Allocate(size, true, true)
	if err != nil {
		b.Fatal(err)
	}
	defer mem.Close()

	data := allocmadvise.View[float32](mem)
	testutil.NewRNG(42).FillUniform(data)

	b.SetBytes(size)
	var sink float32
	for b.Loop() {
		var sum float32
		for _, v := range data {
			sum += v
		}
		sink = sum
	}
	_ = sink
}

func BenchmarkAllocateParallel(b *testing.B) {
	a := allocmadvise.NewAllocator()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mem, err := a.Allocate(2<<20, true, false)
			if err != nil {
				b.Error(err)
				return
			}
			mem.Release()
		}
	})
}

func touch(data []byte) {
	for i := 0; i < len(data); i += 4096 {
		data[i] = 1
	}
}
