// Package mmap provides anonymous, aligned, off-heap memory mappings and the
// kernel access hints that go with them.
//
// # Overview
//
// Mappings live outside the Go heap, so the garbage collector neither scans
// nor moves them. They must only hold plain data (no Go pointers) and must be
// released explicitly with Unmap.
//
// # Usage
//
//	p, err := mmap.MapAligned(4<<20, 2<<20)
//	if err != nil { ... }
//	defer mmap.Unmap(p, 4<<20)
//
//	// Provide kernel hints for access patterns
//	_ = mmap.Advise(p, 4<<20, mmap.AccessSequential)
//	_ = mmap.Advise(p, 4<<20, mmap.AccessHugePage)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD, Solaris): mmap(2)/munmap(2). Alignments above the
//     page size are produced by over-mapping and trimming head and tail.
//   - Windows: VirtualAlloc/VirtualFree. Alignments above the 64 KiB allocation
//     granularity reserve a larger range, release it and re-allocate at the
//     aligned address.
//
// madvise(2) is used on Linux for every pattern and on the BSDs, macOS and
// Solaris for everything except huge pages. Elsewhere Advise is a no-op. Hints
// are advisory: a kernel that rejects one still hands out correct memory.
package mmap
