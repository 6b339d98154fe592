package jobl2pdf

import (
	"bytes"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// MarkdownRenderer renders summary text written in Markdown into a sanitized
// HTML fragment. It backs the opt-in WithMarkdownSummaries option; when the
// option is off, summaries stay plain escaped text and the renderer's normal
// escaping rules apply unchanged.
type MarkdownRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdownRenderer creates a MarkdownRenderer with GFM extensions and
// class-based syntax highlighting. Raw HTML in the source is never passed
// through: goldmark is run without unsafe rendering and the output is
// additionally sanitized with a UGC policy.
func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes, no inline styles
				),
			),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithXHTML(),
		),
	)
	return &MarkdownRenderer{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts Markdown to a sanitized HTML fragment. Conversion never
// fails the render: on error the input is emitted as escaped plain text,
// matching the non-Markdown path.
func (r *MarkdownRenderer) Render(text string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return html.EscapeString(text)
	}
	return strings.TrimSpace(r.policy.Sanitize(buf.String()))
}
