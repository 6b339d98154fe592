// Package jobl2pdf builds HTML and PDF resumes from JOBL documents.
//
// # Quick Start
//
// Parse a document, create a builder, and build into an output directory:
//
//	doc, err := jobl.ParseFile("resume.jobl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	builder := jobl2pdf.New(jobl2pdf.WithTemplate("minimal"))
//	defer builder.Close()
//
//	if err := builder.Build(ctx, doc, "dist"); err != nil {
//	    log.Fatal(err)
//	}
//
// Build writes dist/index.html and dist/resume.pdf. Use RenderHTML to get
// the HTML string without touching the filesystem, or BuildPDF to get the
// PDF bytes directly.
//
// # Layouts
//
// Which fields appear, and in what order and composition, is controlled by a
// small layout language. A layout is a tree of sections, each holding fields
// made of bare field references and quoted literals:
//
//	person
//	  name
//	  email "at" phone
//
//	experience
//	  title
//	  company
//	  start " - " end
//	  highlights
//
// Section headers sit at indent 0, fields at indent 2. A field line may be
// prefixed with "label:" to set the CSS class of its generic wrapper, and a
// bare "label:" line opens a container grouping the indent-4 lines below it.
// Layouts come from a built-in theme (WithTheme), a file (WithLayoutFile),
// or an already-parsed tree (WithLayout).
//
// # Templates
//
// A template pairs the fixed document shell with a stylesheet. Built-in
// templates are "minimal" and "jake"; an unknown name fails with
// ErrUnknownTemplate.
//
// # Markdown Summaries
//
// WithMarkdownSummaries() renders summary text as sanitized Markdown (GFM,
// class-based syntax highlighting, raw HTML stripped). Off by default; all
// other values are always HTML-escaped.
//
// # Parallel Processing
//
// A Builder owns one browser and is not safe for concurrent use. For batch
// builds, use Pool to manage multiple builders:
//
//	pool := jobl2pdf.NewPool(4)
//	defer pool.Close()
//
//	b := pool.Acquire()
//	defer pool.Release(b)
//	err := b.Build(ctx, doc, outDir)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package jobl2pdf
