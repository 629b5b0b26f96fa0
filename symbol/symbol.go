package symbol

import (
	"fmt"

	"github.com/sam0x17/smol-symbol/alphabet"
	"github.com/sam0x17/smol-symbol/uint128"
)

// Alphabet is the constraint for Symbol's type-level alphabet tag.
// Implementations are zero-size marker types whose SymbolAlphabet
// method returns the process-wide alphabet they name. The method must
// be pure and must always return the same *alphabet.Alphabet.
type Alphabet interface {
	SymbolAlphabet() *alphabet.Alphabet
}

// Default is the tag for the stock alphabet (lowercase a–z plus
// underscore, MaxLen 25).
type Default struct{}

// SymbolAlphabet returns alphabet.Default.
func (Default) SymbolAlphabet() *alphabet.Alphabet { return alphabet.Default }

// Symbol is an immutable 128-bit value standing in for a short string
// over the alphabet named by A.
//
// Symbol is comparable: == and map-key use delegate to the backing
// integer, and two Symbols are equal iff their integers are bit-equal —
// which, by the codec's bijectivity, means iff their texts are equal.
// Symbols over different alphabet tags are distinct types and cannot be
// compared or assigned to each other at all.
//
// The zero value is not the encoding of any string; it is handy as an
// "unset" sentinel (see IsZero) but its String output is unspecified.
type Symbol[A Alphabet] struct {
	data uint128.Uint128
}

// Parse validates and encodes s as a Symbol over A's alphabet.
// Returns ErrSymbolParsing if s is empty, longer than the alphabet's
// MaxLen, or contains a character outside the alphabet.
func Parse[A Alphabet](s string) (Symbol[A], error) {
	var tag A
	data, err := Encode(tag.SymbolAlphabet(), s)
	if err != nil {
		return Symbol[A]{}, err
	}
	return Symbol[A]{data: data}, nil
}

// MustParse is Parse that panics on invalid text, for package-level
// symbol declarations whose text is fixed at authoring time.
func MustParse[A Alphabet](s string) Symbol[A] {
	sym, err := Parse[A](s)
	if err != nil {
		var tag A
		panic(fmt.Sprintf("symbol: %q is not valid over alphabet %s", s, tag.SymbolAlphabet().Name()))
	}
	return sym
}

// FromRaw wraps an integer as a Symbol without validation. It exists
// for values already known valid — generated constants, or integers
// previously obtained from Raw. Wrapping anything else yields a Symbol
// whose String output is unspecified.
func FromRaw[A Alphabet](v uint128.Uint128) Symbol[A] {
	return Symbol[A]{data: v}
}

// Raw exposes the backing 128-bit integer, e.g. for serialization by an
// outer layer. The bit pattern is the whole Symbol: FromRaw(s.Raw()) == s.
func (s Symbol[A]) Raw() uint128.Uint128 { return s.data }

// String decodes the Symbol back to its original text.
func (s Symbol[A]) String() string {
	var tag A
	return Decode(tag.SymbolAlphabet(), s.data)
}

// Cmp orders Symbols by their backing integers: -1, 0 or +1.
func (s Symbol[A]) Cmp(o Symbol[A]) int { return s.data.Cmp(o.data) }

// Less reports whether s orders before o by backing integer.
func (s Symbol[A]) Less(o Symbol[A]) bool { return s.data.Less(o.data) }

// IsZero reports whether s is the zero Symbol. Encoding never produces
// zero (every valid string has a non-zero top digit), so the zero value
// can safely mean "no symbol".
func (s Symbol[A]) IsZero() bool { return s.data.IsZero() }

// Sym is a Symbol over the default alphabet.
type Sym = Symbol[Default]

// ParseSym is Parse over the default alphabet.
func ParseSym(s string) (Sym, error) { return Parse[Default](s) }

// MustSym is MustParse over the default alphabet.
func MustSym(s string) Sym { return MustParse[Default](s) }
