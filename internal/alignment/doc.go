// Package alignment decides how a buffer should be aligned from its size alone.
//
// # Policy
//
//   - 0 bytes: no allocation, alignment 0
//   - multiples of 2 MiB: 2 MiB alignment with a huge page hint
//   - everything else: 64 bytes (AVX2/AVX-512 friendly)
//
// Decide is pure and deterministic. Callers rely on that to recompute the
// alignment at release time instead of storing it next to the allocation.
package alignment
