// Package alphabet defines the ordered character sets that parameterize
// the symbol codec, together with the constants derived from their size.
//
// An Alphabet is a fixed ordered sequence of N distinct printable ASCII
// characters, built once with New or MustNew and never mutated. From N
// alone it derives:
//
//	Len    = N
//	Radix  = N + 1 — digit 0 is reserved as the "no more digits"
//	         sentinel of the bijective numeral system and is never
//	         assigned to a real character
//	MaxLen = floor(128 / ceil(log2(Radix))) — the longest string whose
//	         encoding can never overflow a 128-bit integer, whatever
//	         its digits are
//
// Smaller alphabets therefore allow longer symbols: an 11-character set
// yields MaxLen 32, the 27-character Default yields 25, a 68-character
// set yields 18.
//
// Inversion (character → 1-based position) is a table lookup with no
// runtime state, so it produces identical results whether it runs in a
// generator before the build or inside a running program.
//
// All values are immutable after construction; concurrent readers need
// no synchronization.
package alphabet
