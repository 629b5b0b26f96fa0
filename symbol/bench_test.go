package symbol_test

import (
	"testing"

	"github.com/sam0x17/smol-symbol/alphabet"
	"github.com/sam0x17/smol-symbol/symbol"
)

// benchmarkEncode measures the encode path for one text over the
// default alphabet. The codec is allocation-free, so this is pure
// integer work.
func benchmarkEncode(b *testing.B, text string) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := symbol.Encode(alphabet.Default, text); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
	}
}

func BenchmarkEncode_Short(b *testing.B) { benchmarkEncode(b, "hello") }

func BenchmarkEncode_MaxLen(b *testing.B) { benchmarkEncode(b, "this_is_just_short_enough") }

// BenchmarkDecode measures the decode path, which allocates only the
// result string.
func BenchmarkDecode(b *testing.B) {
	v, err := symbol.Encode(alphabet.Default, "this_is_just_short_enough")
	if err != nil {
		b.Fatalf("Encode failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = symbol.Decode(alphabet.Default, v)
	}
}

// BenchmarkSymbolCompare measures equality on the wrapped value, the
// whole point of storing symbols as integers.
func BenchmarkSymbolCompare(b *testing.B) {
	x := symbol.MustSym("this_is_just_short_enough")
	y := symbol.MustSym("this_is_just_short_enougg")
	b.ResetTimer()
	n := 0
	for i := 0; i < b.N; i++ {
		if x == y {
			n++
		}
	}
	_ = n
}
