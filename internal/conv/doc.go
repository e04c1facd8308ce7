// Package conv provides checked integer conversions.
//
// Byte counts are int inside allocmadvise but uint32 at the C boundary and
// uint64 in the size parser; these helpers keep those crossings explicit.
package conv
