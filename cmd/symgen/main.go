// Command symgen turns a symbol manifest into Go source with
// pre-encoded symbol constants. Typical use is a go:generate line:
//
//	//go:generate symgen -in symbols.txt -out symbols_gen.go -pkg ids
//
// Any invalid declaration makes symgen exit non-zero, failing the
// build before an artifact is produced.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/sam0x17/smol-symbol/symgen"
)

func main() {
	var (
		in      = flag.String("in", "", "Manifest file to read (\"-\" for stdin)")
		out     = flag.String("out", "", "Generated Go file to write (default stdout)")
		pkg     = flag.String("pkg", "", "Package name for the generated file")
		verbose = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *in == "" || *pkg == "" {
		fmt.Fprintln(os.Stderr, "Usage: symgen -in <manifest> -pkg <package> [-out <file>] [-v]")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = dev
	}
	defer logger.Sync()

	if err := run(*in, *out, *pkg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out, pkg string, logger *zap.Logger) error {
	var src io.Reader
	if in == "-" {
		src = os.Stdin
	} else {
		f, err := os.Open(in)
		if err != nil {
			return fmt.Errorf("open manifest: %w", err)
		}
		defer f.Close()
		src = f
	}

	manifest, err := symgen.ParseManifest(src)
	if err != nil {
		return err
	}
	logger.Debug("manifest parsed",
		zap.String("in", in),
		zap.Int("alphabets", len(manifest.Alphabets)),
		zap.Int("symbols", len(manifest.Symbols)))

	generated, err := symgen.Generate(manifest, pkg)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(generated)
		return err
	}
	if err := os.WriteFile(out, generated, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	logger.Info("generated",
		zap.String("out", out),
		zap.Int("bytes", len(generated)))
	return nil
}
