// SPDX-License-Identifier: MIT
//
// manifest.go — line-oriented manifest parsing and sentinel errors.

package symgen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for manifest processing.
var (
	// ErrManifestSyntax indicates a line that is not a valid declaration.
	ErrManifestSyntax = errors.New("symgen: invalid manifest syntax")

	// ErrDuplicateDecl indicates two declarations that would generate the
	// same Go identifier.
	ErrDuplicateDecl = errors.New("symgen: duplicate declaration")

	// ErrUnknownAlphabet indicates a symbol declaration naming an
	// alphabet the manifest does not declare.
	ErrUnknownAlphabet = errors.New("symgen: symbol references undeclared alphabet")
)

// AlphabetDecl declares a custom alphabet: an exported tag type plus
// its character table in the generated file.
type AlphabetDecl struct {
	Name  string // Go type name of the generated tag
	Chars string // ordered character set
	Line  int    // 1-based manifest line, for error context
}

// SymbolDecl declares one pre-encoded symbol constant.
type SymbolDecl struct {
	Text     string // the text to encode
	Alphabet string // tag name; empty means the default alphabet
	Line     int
}

// Manifest is the parsed form of a symbol manifest file.
type Manifest struct {
	Alphabets []AlphabetDecl
	Symbols   []SymbolDecl
}

// ParseManifest reads a manifest: one declaration per line, blank lines
// and #-comments ignored. Declarations are
//
//	alphabet <Name> <chars>
//	symbol <text> [<AlphabetName>]
//
// Syntax is checked here; character-set and codec validation happens in
// Generate, where the real alphabets are constructed.
// Complexity: O(input size).
func ParseManifest(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	names := make(map[string]int) // generated identifier → declaring line

	claim := func(ident string, line int) error {
		if prev, taken := names[ident]; taken {
			return fmt.Errorf("%w: line %d: %s already declared on line %d",
				ErrDuplicateDecl, line, ident, prev)
		}
		names[ident] = line
		return nil
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "alphabet":
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: line %d: want \"alphabet <Name> <chars>\"",
					ErrManifestSyntax, line)
			}
			name := fields[1]
			if !isGoIdent(name) {
				return nil, fmt.Errorf("%w: line %d: %q is not a valid Go identifier",
					ErrManifestSyntax, line, name)
			}
			if err := claim(name, line); err != nil {
				return nil, err
			}
			m.Alphabets = append(m.Alphabets, AlphabetDecl{Name: name, Chars: fields[2], Line: line})

		case "symbol":
			if len(fields) != 2 && len(fields) != 3 {
				return nil, fmt.Errorf("%w: line %d: want \"symbol <text> [<AlphabetName>]\"",
					ErrManifestSyntax, line)
			}
			decl := SymbolDecl{Text: fields[1], Line: line}
			if len(fields) == 3 {
				decl.Alphabet = fields[2]
			}
			ident, ok := goName(decl.Text)
			if !ok {
				return nil, fmt.Errorf("%w: line %d: cannot derive a Go identifier from %q",
					ErrManifestSyntax, line, decl.Text)
			}
			if err := claim(ident, line); err != nil {
				return nil, err
			}
			m.Symbols = append(m.Symbols, decl)

		default:
			return nil, fmt.Errorf("%w: line %d: unknown declaration %q",
				ErrManifestSyntax, line, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("symgen: read manifest: %w", err)
	}
	return m, nil
}

// isGoIdent reports whether s is a plain ASCII Go identifier.
func isGoIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		alpha := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !alpha && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// goName derives the generated variable name from a symbol's text:
// chunks between underscores and hyphens are title-cased and joined,
// so "hello_world" becomes "HelloWorld". Returns ok=false when no
// identifier can be derived (no letters, or a leading digit).
func goName(text string) (string, bool) {
	var b strings.Builder
	start := true
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '_' || c == '-':
			start = true
		case c >= 'a' && c <= 'z':
			if start {
				c -= 'a' - 'A'
				start = false
			}
			b.WriteByte(c)
		case (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			start = false
			b.WriteByte(c)
		default:
			// Characters legal in some alphabet but not in a Go
			// identifier are dropped from the name.
			start = true
		}
	}
	name := b.String()
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return "", false
	}
	return name, true
}
