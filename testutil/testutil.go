package testutil

import (
	"math/rand"
	"sync"
)

// HugePageSize is the huge page size that the allocator aligns to.
const HugePageSize = 2 << 20

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// FillBytes fills dst with random bytes.
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.rand.Read(dst)
}

// Size returns a random allocation size in [1, maxBytes].
// Roughly one in four sizes is a multiple of HugePageSize when maxBytes allows it.
func (r *RNG) Size(maxBytes int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sizeLocked(maxBytes)
}

func (r *RNG) sizeLocked(maxBytes int) int {
	if pages := maxBytes / HugePageSize; pages > 0 && r.rand.Intn(4) == 0 {
		return (1 + r.rand.Intn(pages)) * HugePageSize
	}
	n := 1 + r.rand.Intn(maxBytes)
	if n%HugePageSize == 0 {
		n--
	}
	if n == 0 {
		n = 1
	}
	return n
}

// Sizes returns num random allocation sizes. See Size.
func (r *RNG) Sizes(num, maxBytes int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	sizes := make([]int, num)
	for i := range sizes {
		sizes[i] = r.sizeLocked(maxBytes)
	}
	return sizes
}
