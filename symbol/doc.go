// Package symbol implements a bijective mixed-radix codec between short
// strings and 128-bit integers, and the Symbol value built on it.
//
// 🚀 What is a Symbol?
//
//	An immutable 16-byte value that stands in for a short string over a
//	fixed alphabet. It compares, hashes and stores like an integer, yet
//	decodes back to its exact text with no interning table or registry —
//	every Symbol is self-describing.
//
// # Encoding
//
// For an alphabet of N characters the codec works in radix N+1 with
// digits 1..N; digit 0 is reserved as the "no more digits" sentinel and
// never assigned to a real character. Characters accumulate
// most-significant-first:
//
//	data = data*radix + position(c)   // position is 1-based
//
// Because no real character maps to digit 0, strings of different
// lengths never collide even when one is a prefix of the other:
// "a" and "aa" encode to distinct integers, which a naive zero-based
// base-N scheme cannot guarantee. Decoding peels digits with % and /
// until the value is exhausted, then reverses them.
//
// # Alphabet tags
//
// Symbol is generic over a zero-size tag type that names its alphabet:
//
//	type Screaming struct{}
//	func (Screaming) SymbolAlphabet() *alphabet.Alphabet { return screamingAlphabet }
//
//	upper := symbol.MustParse[Screaming]("HELLO")
//	lower := symbol.MustSym("hello")
//	// upper == lower does not compile: the types differ.
//
// The tag exists only in the type system — a Symbol stores nothing but
// its 128-bit value, and symbols over different alphabets cannot be
// compared, assigned or mixed by accident. Sym is shorthand for
// Symbol[Default], the lowercase a–z plus underscore alphabet.
//
// # Errors
//
// Encoding fails with ErrSymbolParsing for exactly three inputs, checked
// in order: empty text, text longer than the alphabet's MaxLen, and text
// containing a character outside the alphabet. Decoding never fails; it
// is only defined on integers produced by encoding (or declared valid by
// a trusted caller such as generated code), and feeding it anything else
// is a documented misuse, not a handled error.
//
// Every operation is a pure function over immutable inputs: no locks,
// no I/O, no shared state, safe from any number of goroutines.
//
// Performance: encode and decode are O(len) with no allocation beyond
// decode's result string; comparison and hashing are integer-speed.
package symbol
