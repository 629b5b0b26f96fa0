package symbol_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam0x17/smol-symbol/alphabet"
	"github.com/sam0x17/smol-symbol/symbol"
	"github.com/sam0x17/smol-symbol/uint128"
)

// TestEncode_KnownValue pins the exact integer for "hello" over the
// default alphabet: digits h=8 e=5 l=12 l=12 o=15 in radix 28.
func TestEncode_KnownValue(t *testing.T) {
	v, err := symbol.Encode(alphabet.Default, "hello")
	require.NoError(t, err)
	assert.Equal(t, uint128.From64(5036767), v) // ((((8*28+5)*28+12)*28+12)*28)+15
}

// TestEncode_Validation covers the three failure conditions; all must
// surface the single ErrSymbolParsing sentinel.
func TestEncode_Validation(t *testing.T) {
	_, err := symbol.Encode(alphabet.Default, "")
	assert.ErrorIs(t, err, symbol.ErrSymbolParsing, "empty text")

	_, err = symbol.Encode(alphabet.Default, "this_is_too_long_to_store_") // 26 chars
	assert.ErrorIs(t, err, symbol.ErrSymbolParsing, "26 chars over a 25-char bound")

	_, err = symbol.Encode(alphabet.Default, "this-is-invalid")
	assert.ErrorIs(t, err, symbol.ErrSymbolParsing, "hyphen is not in the default alphabet")

	_, err = symbol.Encode(alphabet.Default, "Hello")
	assert.ErrorIs(t, err, symbol.ErrSymbolParsing, "uppercase is not in the default alphabet")
}

// TestEncode_LengthBoundary verifies the documented 25/26 boundary over
// the default alphabet, including the worst-case digit at full length.
func TestEncode_LengthBoundary(t *testing.T) {
	v, err := symbol.Encode(alphabet.Default, "this_is_just_short_enough") // 25 chars
	require.NoError(t, err, "25 chars must fit")
	assert.Equal(t, "this_is_just_short_enough", symbol.Decode(alphabet.Default, v))

	// 25 underscores: every digit is the maximum (27). If anything could
	// overflow the 128-bit width within MaxLen, this would.
	worst := strings.Repeat("_", alphabet.Default.MaxLen())
	v, err = symbol.Encode(alphabet.Default, worst)
	require.NoError(t, err)
	assert.Equal(t, worst, symbol.Decode(alphabet.Default, v), "worst-case digits must round-trip")

	_, err = symbol.Encode(alphabet.Default, worst+"_")
	assert.ErrorIs(t, err, symbol.ErrSymbolParsing, "MaxLen+1 must fail even with valid characters")
}

// TestRoundTrip_Exhaustive decodes every encoding of every string up to
// length 5 over a two-character alphabet, checking the full bijection:
// decode inverts encode, and no two strings share an integer.
func TestRoundTrip_Exhaustive(t *testing.T) {
	ab, err := alphabet.New("ab", "ab")
	require.NoError(t, err)

	var all []string
	var grow func(prefix string)
	grow = func(prefix string) {
		if len(prefix) == 5 {
			return
		}
		for _, c := range []string{"a", "b"} {
			s := prefix + c
			all = append(all, s)
			grow(s)
		}
	}
	grow("")
	require.Len(t, all, 2+4+8+16+32)

	seen := make(map[uint128.Uint128]string, len(all))
	for _, s := range all {
		v, err := symbol.Encode(ab, s)
		require.NoError(t, err, "encode %q", s)
		prev, dup := seen[v]
		require.False(t, dup, "%q and %q collide on %s", prev, s, v)
		seen[v] = s
		assert.Equal(t, s, symbol.Decode(ab, v), "round trip of %q", s)
	}
}

// TestPrefixStringsDoNotCollide spells out the property the reserved
// zero digit exists for: a string and its extensions never collide.
func TestPrefixStringsDoNotCollide(t *testing.T) {
	a, err := symbol.Encode(alphabet.Default, "a")
	require.NoError(t, err)
	aa, err := symbol.Encode(alphabet.Default, "aa")
	require.NoError(t, err)
	assert.NotEqual(t, a, aa, `"a" and "aa" must encode differently`)
}

// TestTwoAlphabets_SameText encodes the same text under two alphabets:
// the integers differ, and each decodes correctly under its own
// alphabet only.
func TestTwoAlphabets_SameText(t *testing.T) {
	const text = "hello_world"
	compact, err := alphabet.New("compact", "helowrd_")
	require.NoError(t, err)

	vDefault, err := symbol.Encode(alphabet.Default, text)
	require.NoError(t, err)
	vCompact, err := symbol.Encode(compact, text)
	require.NoError(t, err)

	assert.NotEqual(t, vDefault, vCompact, "different radices must yield different integers")
	assert.Equal(t, text, symbol.Decode(alphabet.Default, vDefault))
	assert.Equal(t, text, symbol.Decode(compact, vCompact))
}

// TestEncode_NeverProducesZero checks the "unset sentinel" guarantee:
// no valid string encodes to the zero integer.
func TestEncode_NeverProducesZero(t *testing.T) {
	for _, s := range []string{"a", "z", "_", "aa", "zzzz", "hello_world"} {
		v, err := symbol.Encode(alphabet.Default, s)
		require.NoError(t, err)
		assert.False(t, v.IsZero(), "encode(%q) must be non-zero", s)
	}
}
