package jobl2pdf

import "time"

// defaultTimeout bounds PDF generation when no timeout is configured.
const defaultTimeout = 30 * time.Second

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	timeout    time.Duration
	template   string
	theme      string
	layoutFile string
	layout     *Layout
	markdown   bool
}

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("jobl2pdf: WithTimeout duration must be positive")
	}
	return func(b *Builder) {
		b.cfg.timeout = d
	}
}

// WithTemplate selects the template variant. Unknown names surface as
// ErrUnknownTemplate at render time.
func WithTemplate(name string) Option {
	return func(b *Builder) {
		b.cfg.template = name
	}
}

// WithTheme selects a built-in layout theme. Unknown names surface as
// ErrUnknownTheme on the first build.
func WithTheme(name string) Option {
	return func(b *Builder) {
		b.cfg.theme = name
	}
}

// WithLayoutFile loads the layout from a user-supplied file instead of a
// built-in theme. Takes precedence over WithTheme.
func WithLayoutFile(path string) Option {
	return func(b *Builder) {
		b.cfg.layoutFile = path
	}
}

// WithLayout uses an already-parsed layout tree. Takes precedence over
// WithLayoutFile and WithTheme. The tree must not be mutated afterwards.
func WithLayout(layout *Layout) Option {
	return func(b *Builder) {
		b.cfg.layout = layout
	}
}

// WithMarkdownSummaries renders summary text as sanitized Markdown instead of
// escaped plain text.
func WithMarkdownSummaries() Option {
	return func(b *Builder) {
		b.cfg.markdown = true
	}
}
