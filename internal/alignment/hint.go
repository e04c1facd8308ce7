package alignment

const (
	// HugePageSize is the huge page size on the targeted platforms (2 MiB).
	HugePageSize = 2 * 1024 * 1024
	// CacheLine is the alignment used for everything that is not huge page sized.
	// 64 bytes covers both 256-bit and 512-bit vector loads.
	CacheLine = 64
)

// Hint describes how an allocation of a given size should be laid out.
type Hint struct {
	// Alignment is the byte boundary of the allocation.
	// It is zero for zero-byte requests, otherwise a positive power of two.
	Alignment int
	// HugePages reports whether huge/large pages should be requested.
	HugePages bool
}

// Decide returns the alignment hint for numBytes.
//
// Zero (and any negative size) yields the zero Hint, which callers must treat
// as "nothing to allocate" rather than a valid alignment.
func Decide(numBytes int) Hint {
	switch {
	case numBytes <= 0:
		return Hint{}
	case numBytes&(HugePageSize-1) == 0:
		return Hint{Alignment: HugePageSize, HugePages: true}
	default:
		return Hint{Alignment: CacheLine}
	}
}

// IsZero reports whether h is the "no allocation" sentinel.
func (h Hint) IsZero() bool {
	return h.Alignment == 0
}
