package alphabet

import "math/bits"

// symbolBits is the fixed width of the backing integer.
const symbolBits = 128

// ceilLog2 returns ceil(log2(n)) for n >= 2, integer-only.
// bits.Len64(n-1) is the position of the highest set bit of n-1 plus
// one, which equals ceil(log2(n)) for every n that is not a power of
// two and for powers of two alike.
func ceilLog2(n uint64) int {
	return bits.Len64(n - 1)
}

// maxLen returns the largest string length guaranteed not to overflow
// the 128-bit backing integer for an alphabet of n characters.
//
// Each character consumes at most ceil(log2(n+1)) bits in the worst
// case of the mixed-radix representation, so floor(128 / that) symbols
// always fit, regardless of which digits occur. Requires n >= 1 (the
// constructor rejects empty sets before calling this).
func maxLen(n int) int {
	return symbolBits / ceilLog2(uint64(n)+1)
}
