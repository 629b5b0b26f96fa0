// Package symgen generates Go source containing pre-encoded symbol
// constants, so that the integer value — not the string literal — ends
// up in the compiled artifact.
//
// Go cannot run the encode algorithm at compile time, so the binding
// happens one step earlier: a small manifest is processed before the
// build (typically via go:generate, see cmd/symgen), every declaration
// is validated through the exact same alphabet and codec code the
// runtime uses, and any invalid token fails generation — and therefore
// the build — with a descriptive error. Generated code and runtime
// validation cannot diverge because there is only one codec.
//
// # Manifest format
//
// One declaration per line; blank lines and # comments are ignored:
//
//	# declare a custom alphabet (name, then its ordered character set)
//	alphabet Screaming ABCDEFGHIJKLMNOPQRSTUVWXYZ
//
//	# declare symbols; the trailing name picks a non-default alphabet
//	symbol hello_world
//	symbol LOUD_NOISES Screaming
//
// Each alphabet declaration becomes an exported tag type usable with
// symbol.Parse, and each symbol declaration becomes a package-level
// variable holding the ready-made value:
//
//	var HelloWorld = symbol.FromRaw[symbol.Default](uint128.New(0x0, 0x89f7f796459b4))
//
// Variable names are derived from the symbol text by title-casing the
// chunks between underscores and hyphens ("hello_world" → "HelloWorld").
package symgen
