package uint128

import (
	"errors"
	"fmt"
	"math/bits"
)

// Sentinel errors for decimal parsing.
var (
	// ErrSyntax indicates the input is empty or contains a non-digit byte.
	ErrSyntax = errors.New("uint128: invalid decimal syntax")

	// ErrRange indicates the decimal value does not fit in 128 bits.
	ErrRange = errors.New("uint128: value exceeds 128 bits")
)

// Uint128 is an unsigned 128-bit integer: value = Hi<<64 | Lo.
//
// The zero value is the number zero. Uint128 is comparable with == and
// usable as a map key; its memory layout is exactly two uint64 words.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Zero is the Uint128 zero value, exported for readability at call sites.
var Zero = Uint128{}

// New returns the Uint128 with the given high and low 64-bit halves.
func New(hi, lo uint64) Uint128 { return Uint128{Hi: hi, Lo: lo} }

// From64 widens a uint64 to a Uint128.
func From64(v uint64) Uint128 { return Uint128{Lo: v} }

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Bits returns the raw high and low halves of u.
func (u Uint128) Bits() (hi, lo uint64) { return u.Hi, u.Lo }

// Cmp compares u and v, returning -1 if u < v, 0 if u == v, +1 if u > v.
// Complexity: O(1).
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Less reports whether u < v.
func (u Uint128) Less(v Uint128) bool { return u.Cmp(v) < 0 }

// MulAdd64 returns u*m + a and the bits carried out of the 128-bit width.
// A non-zero carry means the true result did not fit; callers that have
// bounded their inputs (the codec bounds string length so that no valid
// digit sequence can overflow) may ignore it.
// Complexity: O(1).
func (u Uint128) MulAdd64(m, a uint64) (Uint128, uint64) {
	lcHi, lo := bits.Mul64(u.Lo, m) // low half times m, lcHi carries into Hi
	hcOut, hi := bits.Mul64(u.Hi, m)

	var c uint64
	lo, c = bits.Add64(lo, a, 0)
	hi, c = bits.Add64(hi, lcHi, c)
	return Uint128{Hi: hi, Lo: lo}, hcOut + c
}

// QuoRem64 returns the quotient u/d and remainder u%d for a non-zero
// 64-bit divisor. It panics if d == 0, mirroring native integer division.
// Complexity: O(1).
func (u Uint128) QuoRem64(d uint64) (Uint128, uint64) {
	// Reduce the high half first so that bits.Div64's precondition
	// (high word of the dividend < divisor) always holds.
	qHi := u.Hi / d
	rHi := u.Hi % d
	qLo, rem := bits.Div64(rHi, u.Lo, d)
	return Uint128{Hi: qHi, Lo: qLo}, rem
}

// String renders u in decimal.
func (u Uint128) String() string {
	if u.IsZero() {
		return "0"
	}
	var buf [39]byte // ceil(128 * log10(2)) decimal digits
	i := len(buf)
	for !u.IsZero() {
		var rem uint64
		u, rem = u.QuoRem64(10)
		i--
		buf[i] = byte('0' + rem)
	}
	return string(buf[i:])
}

// Hex renders u as a lowercase hexadecimal string without leading zeros.
func (u Uint128) Hex() string {
	if u.Hi == 0 {
		return fmt.Sprintf("%x", u.Lo)
	}
	return fmt.Sprintf("%x%016x", u.Hi, u.Lo)
}

// ParseDecimal parses a base-10 string into a Uint128.
// Returns ErrSyntax for empty or non-digit input, ErrRange on overflow.
// Complexity: O(len(s)).
func ParseDecimal(s string) (Uint128, error) {
	if len(s) == 0 {
		return Zero, ErrSyntax
	}
	var u Uint128
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Zero, fmt.Errorf("%w: byte %q at %d", ErrSyntax, c, i)
		}
		var carry uint64
		u, carry = u.MulAdd64(10, uint64(c-'0'))
		if carry != 0 {
			return Zero, ErrRange
		}
	}
	return u, nil
}
