package alphabet_test

import (
	"fmt"

	"github.com/sam0x17/smol-symbol/alphabet"
)

// ExampleNew shows how alphabet size drives the derived constants:
// radix is always one above the size (digit 0 stays reserved), and the
// maximum symbol length falls as the alphabet grows.
func ExampleNew() {
	dna, err := alphabet.New("DNA", "acgt")
	if err != nil {
		panic(err)
	}
	fmt.Println(dna.Len(), dna.Radix(), dna.MaxLen())
	fmt.Println(alphabet.Default.Len(), alphabet.Default.Radix(), alphabet.Default.MaxLen())
	// Output:
	// 4 5 42
	// 27 28 25
}
