package allocmadvise

import "unsafe"

// Element is the set of types a Memory can be viewed as.
// Only pointer-free types are allowed: the buffer lives outside the Go heap.
type Element interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		~int | ~uint | ~uintptr | ~float32 | ~float64
}

// View returns the buffer of m as a []T of Len()/sizeof(T) elements.
// Trailing bytes that do not fill a whole element are not part of the view.
//
// Go has no read-only slices, so the same view serves reads and writes. Writes
// through one view are visible through every other view of m. The view must
// not be used after m is released; it returns nil for an empty handle.
func View[T Element](m *Memory) []T {
	if m.IsEmpty() {
		return nil
	}
	var zero T
	n := m.numBytes / int(unsafe.Sizeof(zero))
	return unsafe.Slice((*T)(m.address), n) //nolint:gosec // unsafe is required for off-heap memory
}
