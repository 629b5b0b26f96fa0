// Package smolsymbol turns short human-readable identifiers into plain
// 128-bit integers, and back again, with no interning table anywhere.
//
// 🚀 What is smol-symbol?
//
//	A small, dependency-light library for code that needs many
//	globally-unique, human-readable tags that compare, hash and store
//	as cheaply as an integer:
//		• Alphabet: a fixed ordered character set with derived bounds
//		• Codec: a bijective mixed-radix encoding over that alphabet
//		• Symbol: an immutable 128-bit value that round-trips to text
//		• symgen: a generator that bakes symbol constants in before build
//
// ✨ Why choose smol-symbol?
//
//   - Self-describing – every Symbol decodes back to its text with no registry
//   - Collision-free – distinct valid strings never share an integer
//   - Type-safe – symbols over different alphabets do not even compare
//   - Pure Go – no cgo, no runtime state, trivially safe across goroutines
//
// Everything is organized under four subpackages:
//
//	uint128/    — fixed-width unsigned 128-bit value type
//	alphabet/   — ordered character sets, inversion, length bounds
//	symbol/     — the encode/decode pair and the Symbol value itself
//	symgen/     — manifest-driven Go source generation (see cmd/symgen)
//
// Quick example:
//
//	sym, err := symbol.ParseSym("hello_world")
//	// sym is 16 bytes, comparable, usable as a map key,
//	// and sym.String() returns "hello_world".
//
// The default alphabet is lowercase a–z plus underscore, which allows
// symbols up to 25 characters long. Smaller alphabets allow longer
// symbols; declare your own with alphabet.New or a symgen manifest.
//
//	go get github.com/sam0x17/smol-symbol
package smolsymbol
