package alloc

import (
	"errors"
	"math"
)

var (
	errAlignmentNotPow2 = errors.New("alignment is not a positive power of two")
	errSizeOverflow     = errors.New("size overflows when rounded up to alignment")
)

// checkLayout validates a size/alignment pair the way a memory layout would:
// the alignment is a positive power of two and the size, rounded up to it,
// still fits in an int.
func checkLayout(size, alignment int) error {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return &LayoutError{Size: size, Alignment: alignment, cause: errAlignmentNotPow2}
	}
	if size > math.MaxInt-(alignment-1) {
		return &LayoutError{Size: size, Alignment: alignment, cause: errSizeOverflow}
	}
	return nil
}
