package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the jobl2pdf command.
type cliFlags struct {
	out      string
	template string
	theme    string
	layout   string
	timeout  string
	workers  int
	htmlOnly bool
	verbose  bool
	version  bool
}

// parseFlags parses command-line flags and returns the positional input
// paths.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("jobl2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.out, "out", "o", "dist", "output directory")
	fs.StringVarP(&f.template, "template", "t", "minimal", "template name: minimal, jake")
	fs.StringVar(&f.theme, "theme", "", "built-in layout theme (defaults to the template name)")
	fs.StringVar(&f.layout, "layout", "", "custom layout file (overrides --theme)")
	fs.StringVar(&f.timeout, "timeout", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for batch builds (0 = auto)")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the command usage to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `jobl2pdf - build HTML and PDF resumes from JOBL files

Usage:
  jobl2pdf [flags] <input.jobl> [more inputs...]

With one input, outputs go directly into the output directory. With several,
each input gets a subdirectory named after it.

Flags:
  -o, --out DIR         output directory (default "dist")
  -t, --template NAME   template name: minimal, jake (default "minimal")
      --theme NAME      built-in layout theme (defaults to the template name)
      --layout FILE     custom layout file (overrides --theme)
      --timeout DUR     PDF generation timeout, e.g. 30s, 2m
  -w, --workers N       parallel workers for batch builds (0 = auto)
      --html-only       write HTML only, skip PDF
  -v, --verbose         print progress to stderr
      --version         print version and exit
`)
}
