// Package allocmadvise allocates aligned, off-heap byte buffers and tells the
// kernel how they are going to be used.
//
// The alignment is chosen from the size alone. Multiples of 2 MiB are placed
// on a 2 MiB boundary and advised for transparent huge pages. Everything else
// is aligned to 64 bytes, enough for AVX2 and AVX-512 loads.
//
// # Quick Start
//
//	mem, err := allocmadvise.Allocate(4<<20, true, true) // 4 MiB, sequential, zeroed
//	if err != nil {
//	    return err
//	}
//	defer mem.Close()
//
//	data := allocmadvise.View[float32](mem)
//	data[0] = 1.234
//	data[1] = 5.678
//
// # Lifecycle
//
// A Memory is either allocated or empty. Release (and Close) unmaps the buffer
// and leaves the handle empty; calling it again is a no-op. Views and raw
// pointers must not be used after release.
//
// # Configuration
//
// The package-level Allocate uses an Allocator without limits, logging or
// metrics. NewAllocator accepts options for all three:
//
//	a := allocmadvise.NewAllocator(
//	    allocmadvise.WithLogger(allocmadvise.NewJSONLogger(slog.LevelDebug)),
//	    allocmadvise.WithMetricsCollector(&allocmadvise.BasicMetricsCollector{}),
//	    allocmadvise.WithMemoryLimit(1<<30),
//	)
//
// # Platform Support
//
// Linux honors every hint. macOS, the BSDs and Solaris ignore the huge page
// hint. Windows ignores all hints. Alignment guarantees hold everywhere.
//
// # Key Features
//
//   - Size-driven alignment (64 B or 2 MiB)
//   - madvise hints: sequential access, transparent huge pages, lazy free
//   - Typed views over the buffer without copying
//   - Idempotent, explicit release
//   - Optional memory budget and allocation-rate limits
//   - C ABI via cmd/libmadvise (-buildmode=c-shared)
package allocmadvise
