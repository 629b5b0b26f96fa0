// Package uint128 provides a minimal fixed-width unsigned 128-bit value
// type for the symbol codec.
//
// Uint128 is a plain comparable struct of two uint64 halves: it supports
// ==, works as a map key, occupies exactly 16 bytes with no padding, and
// never allocates. The operation set is deliberately small — exactly what
// a positional numeral system needs:
//
//   - MulAdd64: data = data*radix + digit (the encode step)
//   - QuoRem64: digit = data % radix; data /= radix (the decode step)
//   - Cmp/Less/IsZero for ordering and sentinels
//   - String/ParseDecimal/Hex for rendering literal constants
//
// All operations are pure functions built on math/bits; there is no
// shared state and no goroutine-safety concern.
//
// Performance:
//
//   - Every operation is O(1) except String/ParseDecimal, which are
//     O(digits) with at most 39 decimal digits.
package uint128
