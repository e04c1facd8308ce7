// Package testutil provides testing utilities for allocmadvise.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic random source for filling buffers and
// for generating allocation sizes that mix huge page multiples with
// odd, cache-line-aligned sizes.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	rng.FillUniform(allocmadvise.View[float32](mem)) // uniform [0, 1)
//	rng.FillBytes(mem.Bytes())
//
// # Allocation Sizes
//
//	sizes := rng.Sizes(100, 8<<20) // some multiples of 2 MiB, mostly not
package testutil
