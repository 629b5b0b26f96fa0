package symbol

import (
	"errors"

	"github.com/sam0x17/smol-symbol/alphabet"
	"github.com/sam0x17/smol-symbol/uint128"
)

// ErrSymbolParsing is the single error of the codec: the input text
// cannot become a Symbol. It is returned for empty text, text longer
// than the alphabet's MaxLen, and text containing a character outside
// the alphabet, checked in that order. It deliberately carries no
// detail — callers that need a finer diagnosis can re-check length and
// charset themselves.
var ErrSymbolParsing = errors.New("symbol: text is not a valid symbol")

// Encode maps s to its integer under alphabet a.
//
// Validation, in order:
//  1. s must be non-empty.
//  2. len(s) must not exceed a.MaxLen().
//  3. every character of s must be a member of a.
//
// All failures return ErrSymbolParsing. On success the result is the
// bijective mixed-radix value of s: distinct valid strings map to
// distinct integers, and Decode reconstructs s exactly.
// Complexity: O(len(s)).
func Encode(a *alphabet.Alphabet, s string) (uint128.Uint128, error) {
	if len(s) == 0 || len(s) > a.MaxLen() {
		return uint128.Zero, ErrSymbolParsing
	}
	var data uint128.Uint128
	radix := a.Radix()
	for i := 0; i < len(s); i++ {
		digit, err := a.Invert(s[i])
		if err != nil {
			return uint128.Zero, ErrSymbolParsing
		}
		// MaxLen bounds len(s) so that no digit sequence can carry
		// past 128 bits; the carry is structurally zero here.
		data, _ = data.MulAdd64(radix, digit)
	}
	return data, nil
}

// Decode maps an integer produced by Encode under alphabet a back to
// its original text. It is total and never fails on that domain.
//
// Decode performs no validation: integers that no string encodes to
// (in particular anything with the reserved zero digit below its top
// digit, or the value zero itself) produce unspecified text. Only feed
// it values from Encode or from a trusted generator.
// Complexity: O(result length).
func Decode(a *alphabet.Alphabet, v uint128.Uint128) string {
	radix := a.Radix()
	buf := make([]byte, 0, a.MaxLen())
	for {
		var digit uint64
		v, digit = v.QuoRem64(radix)
		buf = append(buf, a.Char(digit))
		if v.IsZero() {
			break
		}
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
