package jobl2pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joblhq/go-jobl2pdf/internal/fileutil"
	"github.com/joblhq/go-jobl2pdf/jobl"
)

// Output file names written by Build.
const (
	htmlFileName = "index.html"
	pdfFileName  = "resume.pdf"
)

// Builder orchestrates the layout-to-HTML-to-PDF pipeline for one resume at
// a time. A Builder is not safe for concurrent use (it owns one browser);
// use a Pool for parallel batch builds.
type Builder struct {
	cfg      builderConfig
	exporter pdfExporter
	md       *MarkdownRenderer
}

// New creates a Builder with default configuration (minimal template,
// built-in default layout). Use options to customize behavior.
func New(opts ...Option) *Builder {
	b := &Builder{
		cfg: builderConfig{
			timeout:  defaultTimeout,
			template: DefaultTemplate,
		},
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.cfg.markdown {
		b.md = NewMarkdownRenderer()
	}

	// Create PDF exporter if not injected (e.g., by tests)
	if b.exporter == nil {
		b.exporter = newRodExporter(b.cfg.timeout)
	}

	return b
}

// resolveLayout applies the layout precedence: explicit tree, then layout
// file, then theme, then the built-in default.
func (b *Builder) resolveLayout() (*Layout, error) {
	switch {
	case b.cfg.layout != nil:
		return b.cfg.layout, nil
	case b.cfg.layoutFile != "":
		return LayoutFromFile(b.cfg.layoutFile)
	case b.cfg.theme != "":
		return LayoutFromTheme(b.cfg.theme)
	}
	return DefaultLayout(), nil
}

// RenderHTML renders the document to a complete HTML page without touching
// the filesystem or the browser.
func (b *Builder) RenderHTML(ctx context.Context, doc *jobl.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if doc == nil {
		return "", ErrNilDocument
	}

	layout, err := b.resolveLayout()
	if err != nil {
		return "", err
	}

	r := &renderer{md: b.md}
	return r.render(layout, doc, b.cfg.template)
}

// BuildPDF renders the document and returns the PDF bytes without writing
// any output files. The HTML intermediate goes through a temp file because
// Chrome prints from a loaded page, not from a string.
func (b *Builder) BuildPDF(ctx context.Context, doc *jobl.Document) ([]byte, error) {
	htmlContent, err := b.RenderHTML(ctx, doc)
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return b.exporter.FromFile(ctx, tmpPath)
}

// Build writes index.html and resume.pdf into outDir, creating it if needed.
func (b *Builder) Build(ctx context.Context, doc *jobl.Document, outDir string) error {
	htmlContent, err := b.RenderHTML(ctx, doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	htmlPath := filepath.Join(outDir, htmlFileName)
	if err := os.WriteFile(htmlPath, []byte(htmlContent), 0o600); err != nil {
		return fmt.Errorf("writing HTML file: %w", err)
	}

	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("resolving HTML path: %w", err)
	}

	pdfBytes, err := b.exporter.FromFile(ctx, absPath)
	if err != nil {
		return err
	}

	pdfPath := filepath.Join(outDir, pdfFileName)
	if err := os.WriteFile(pdfPath, pdfBytes, 0o600); err != nil {
		return fmt.Errorf("writing PDF file: %w", err)
	}

	return nil
}

// BuildHTML writes only index.html into outDir, skipping the browser
// entirely. Used by the CLI's --html-only mode.
func (b *Builder) BuildHTML(ctx context.Context, doc *jobl.Document, outDir string) error {
	htmlContent, err := b.RenderHTML(ctx, doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	htmlPath := filepath.Join(outDir, htmlFileName)
	if err := os.WriteFile(htmlPath, []byte(htmlContent), 0o600); err != nil {
		return fmt.Errorf("writing HTML file: %w", err)
	}

	return nil
}

// Close releases resources (headless Chrome browser).
func (b *Builder) Close() error {
	if b.exporter != nil {
		return b.exporter.Close()
	}
	return nil
}
