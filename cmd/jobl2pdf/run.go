package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	jobl2pdf "github.com/joblhq/go-jobl2pdf"
	"github.com/joblhq/go-jobl2pdf/jobl"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInputs         = errors.New("no input files (see jobl2pdf --help)")
	ErrInvalidExtension = errors.New("input must have a .jobl, .yaml, or .yml extension")
	ErrInvalidTimeout   = errors.New("invalid timeout")
)

// maxAutoWorkers caps automatic worker resolution; each worker owns a
// browser instance and Chrome is memory-hungry.
const maxAutoWorkers = 4

// resolveWorkers turns the --workers flag into a concrete pool size.
func resolveWorkers(requested, inputs int) int {
	workers := requested
	if workers <= 0 {
		workers = min(runtime.NumCPU(), maxAutoWorkers)
	}
	return min(workers, inputs)
}

// validateInputExtension checks that the file looks like a JOBL document.
func validateInputExtension(path string) error {
	switch filepath.Ext(path) {
	case ".jobl", ".yaml", ".yml":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidExtension, path)
}

// outputDir picks the output directory for one input. A single input builds
// directly into the base directory; a batch gets one subdirectory per input.
func outputDir(base, input string, batch bool) string {
	if !batch {
		return base
	}
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(base, name)
}

// buildOptions assembles library options from flags.
func buildOptions(flags *cliFlags) ([]jobl2pdf.Option, error) {
	opts := []jobl2pdf.Option{jobl2pdf.WithTemplate(flags.template)}

	switch {
	case flags.layout != "":
		opts = append(opts, jobl2pdf.WithLayoutFile(flags.layout))
	case flags.theme != "":
		opts = append(opts, jobl2pdf.WithTheme(flags.theme))
	default:
		// The built-in layouts are paired with the templates by name.
		opts = append(opts, jobl2pdf.WithTheme(flags.template))
	}

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
		}
		opts = append(opts, jobl2pdf.WithTimeout(d))
	}

	return opts, nil
}

// run validates inputs, then builds each one through a pool of builders.
func run(flags *cliFlags, inputs []string, stdout, stderr io.Writer) error {
	if len(inputs) == 0 {
		return ErrNoInputs
	}
	for _, input := range inputs {
		if err := validateInputExtension(input); err != nil {
			return err
		}
	}

	opts, err := buildOptions(flags)
	if err != nil {
		return err
	}

	batch := len(inputs) > 1
	pool := jobl2pdf.NewPool(resolveWorkers(flags.workers, len(inputs)), opts...)
	defer pool.Close()

	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, len(inputs))

	for i, input := range inputs {
		i, input := i, input
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = buildOne(ctx, pool, flags, input, outputDir(flags.out, input, batch), stdout, stderr)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

// buildOne parses and builds a single input file.
func buildOne(ctx context.Context, pool *jobl2pdf.Pool, flags *cliFlags, input, outDir string, stdout, stderr io.Writer) error {
	if flags.verbose {
		fmt.Fprintf(stderr, "Building %s -> %s\n", input, outDir)
	}

	doc, err := jobl.ParseFile(input)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	b := pool.Acquire()
	defer pool.Release(b)

	if flags.htmlOnly {
		if err := b.BuildHTML(ctx, doc, outDir); err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		fmt.Fprintf(stdout, "Created %s\n", filepath.Join(outDir, "index.html"))
		return nil
	}

	if err := b.Build(ctx, doc, outDir); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	fmt.Fprintf(stdout, "Created %s and %s\n",
		filepath.Join(outDir, "index.html"), filepath.Join(outDir, "resume.pdf"))
	return nil
}
