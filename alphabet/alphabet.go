package alphabet

import (
	"errors"
	"fmt"
)

// Sentinel errors for alphabet construction and inversion.
var (
	// ErrEmptyAlphabet indicates an alphabet was declared with no characters.
	ErrEmptyAlphabet = errors.New("alphabet: character set is empty")

	// ErrDuplicateChar indicates the declared character set repeats a
	// character. Duplicates make inversion ambiguous and break the
	// encode/decode bijection, so they are rejected at definition time.
	ErrDuplicateChar = errors.New("alphabet: duplicate character in set")

	// ErrBadChar indicates a declared character outside printable ASCII.
	ErrBadChar = errors.New("alphabet: character outside printable ASCII")

	// ErrUnknownChar indicates an inversion of a character that is not a
	// member of the alphabet.
	ErrUnknownChar = errors.New("alphabet: character not in alphabet")
)

// tableSize covers the full ASCII range; printable characters all index
// below it.
const tableSize = 128

// Alphabet is an immutable ordered set of distinct printable ASCII
// characters plus the constants derived from its size.
//
// Construct with New or MustNew; the zero value is not usable.
// An Alphabet is safe for concurrent use: nothing mutates it after
// construction.
type Alphabet struct {
	name   string
	chars  string
	invert [tableSize]int16 // character → 1-based position, 0 = absent
	radix  uint64
	maxLen int
}

// New builds an Alphabet from an ordered character set.
//
// Validation, in order:
//  1. ErrEmptyAlphabet if chars is empty.
//  2. ErrBadChar if any character is outside printable ASCII (0x21..0x7e).
//  3. ErrDuplicateChar if any character repeats.
//
// Derived constants are computed here and never supplied by the caller.
// Complexity: O(len(chars)).
func New(name, chars string) (*Alphabet, error) {
	if len(chars) == 0 {
		return nil, ErrEmptyAlphabet
	}
	a := &Alphabet{
		name:   name,
		chars:  chars,
		radix:  uint64(len(chars)) + 1,
		maxLen: maxLen(len(chars)),
	}
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c < '!' || c > '~' {
			return nil, fmt.Errorf("%w: %q at position %d", ErrBadChar, c, i)
		}
		if a.invert[c] != 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrDuplicateChar, c, i)
		}
		a.invert[c] = int16(i) + 1
	}
	return a, nil
}

// MustNew is New that panics on error, for package-level declarations.
func MustNew(name, chars string) *Alphabet {
	a, err := New(name, chars)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the declared alphabet name.
func (a *Alphabet) Name() string { return a.name }

// Chars returns the ordered character set.
func (a *Alphabet) Chars() string { return a.chars }

// Len returns N, the number of characters in the alphabet.
func (a *Alphabet) Len() int { return len(a.chars) }

// Radix returns N+1, the base of the bijective numeral system. Index 0
// is the reserved "no more digits" sentinel and never maps to a
// character.
func (a *Alphabet) Radix() uint64 { return a.radix }

// MaxLen returns the longest string length whose encoding is guaranteed
// to fit in 128 bits for this alphabet.
func (a *Alphabet) MaxLen() int { return a.maxLen }

// Invert returns the 1-based position of c in the alphabet, or
// ErrUnknownChar if c is not a member. Pure table lookup; identical at
// generation time and at runtime. Complexity: O(1).
func (a *Alphabet) Invert(c byte) (uint64, error) {
	if c >= tableSize || a.invert[c] == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownChar, c)
	}
	return uint64(a.invert[c]), nil
}

// Char returns the character at the 1-based digit position, the decode
// counterpart of Invert.
//
// Digit 0 is the reserved sentinel and is never produced by encoding a
// valid string; if a caller decodes an integer from outside the codec's
// domain it maps to the first character rather than panicking
// (garbage in, garbage out). Complexity: O(1).
func (a *Alphabet) Char(digit uint64) byte {
	if digit == 0 {
		return a.chars[0]
	}
	return a.chars[digit-1]
}
