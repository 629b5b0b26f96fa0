// SPDX-License-Identifier: MIT
//
// gen.go — validation and rendering of generated symbol-constant files.
//
// Generation policy:
//   • The runtime codec is the single source of truth: every declared
//     symbol runs through alphabet.New and symbol.Encode, never a
//     reimplementation.
//   • Any invalid declaration aborts with the manifest line attached,
//     wrapping the underlying sentinel for errors.Is.
//   • Output always passes through go/format before being returned.

package symgen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/sam0x17/smol-symbol/alphabet"
	"github.com/sam0x17/smol-symbol/symbol"
)

// fileTemplate renders the generated source. It is formatted by
// go/format afterwards, so layout here only needs to be syntactically
// valid.
var fileTemplate = template.Must(template.New("symgen").Parse(`// Code generated by symgen. DO NOT EDIT.

package {{.Package}}
{{if or .Alphabets .Symbols}}
import (
{{- if .Alphabets}}
	"github.com/sam0x17/smol-symbol/alphabet"
{{- end}}
{{- if .Symbols}}
	"github.com/sam0x17/smol-symbol/symbol"
	"github.com/sam0x17/smol-symbol/uint128"
{{- end}}
)
{{end}}
{{- range .Alphabets}}
// {{.TypeName}} tags symbols over the {{.TypeName}} alphabet ({{printf "%q" .Chars}}).
type {{.TypeName}} struct{}

var {{.VarName}} = alphabet.MustNew({{printf "%q" .TypeName}}, {{printf "%q" .Chars}})

// SymbolAlphabet returns the {{.TypeName}} alphabet.
func ({{.TypeName}}) SymbolAlphabet() *alphabet.Alphabet { return {{.VarName}} }

{{end}}
{{- range .Symbols}}
// {{.VarName}} is the symbol {{printf "%q" .Text}}.
var {{.VarName}} = symbol.FromRaw[{{.Tag}}](uint128.New({{.Hi}}, {{.Lo}}))

{{end}}`))

type alphabetEntry struct {
	TypeName string
	VarName  string
	Chars    string
}

type symbolEntry struct {
	VarName string
	Text    string
	Tag     string
	Hi, Lo  string
}

type fileData struct {
	Package   string
	Alphabets []alphabetEntry
	Symbols   []symbolEntry
}

// Generate validates every declaration of m through the runtime
// alphabet and codec — the single source of truth — and renders a
// gofmt-formatted Go source file for package pkg.
//
// Any invalid declaration aborts generation with a descriptive error
// carrying the manifest line, so a go:generate step fails the build
// before an artifact exists. Errors wrap the underlying sentinels
// (alphabet.Err*, symbol.ErrSymbolParsing) for errors.Is checks.
// Complexity: O(total declared text).
func Generate(m *Manifest, pkg string) ([]byte, error) {
	if !isGoIdent(pkg) {
		return nil, fmt.Errorf("%w: %q is not a valid package name", ErrManifestSyntax, pkg)
	}

	data := fileData{Package: pkg}

	// The default alphabet is always in scope under the empty name.
	tags := map[string]*alphabet.Alphabet{"": alphabet.Default}
	tagExpr := map[string]string{"": "symbol.Default"}

	for _, decl := range m.Alphabets {
		a, err := alphabet.New(decl.Name, decl.Chars)
		if err != nil {
			return nil, fmt.Errorf("symgen: line %d: alphabet %s: %w", decl.Line, decl.Name, err)
		}
		tags[decl.Name] = a
		tagExpr[decl.Name] = decl.Name
		data.Alphabets = append(data.Alphabets, alphabetEntry{
			TypeName: decl.Name,
			VarName:  unexport(decl.Name) + "Alphabet",
			Chars:    decl.Chars,
		})
	}

	for _, decl := range m.Symbols {
		a, known := tags[decl.Alphabet]
		if !known {
			return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownAlphabet, decl.Line, decl.Alphabet)
		}
		v, err := symbol.Encode(a, decl.Text)
		if err != nil {
			return nil, fmt.Errorf("symgen: line %d: symbol %q over alphabet %s: %w",
				decl.Line, decl.Text, a.Name(), err)
		}
		name, _ := goName(decl.Text) // ParseManifest already vetted it
		hi, lo := v.Bits()
		data.Symbols = append(data.Symbols, symbolEntry{
			VarName: name,
			Text:    decl.Text,
			Tag:     tagExpr[decl.Alphabet],
			Hi:      fmt.Sprintf("%#x", hi),
			Lo:      fmt.Sprintf("%#x", lo),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("symgen: render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		// A formatting failure means the template produced invalid Go,
		// which is a bug here, not in the manifest.
		return nil, fmt.Errorf("symgen: format generated source: %w", err)
	}
	return src, nil
}

// unexport lowercases the first byte of an ASCII identifier.
func unexport(s string) string {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return s
	}
	return string(s[0]+'a'-'A') + s[1:]
}
