package jobl2pdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fakeExporter records calls and returns canned PDF bytes without a browser.
type fakeExporter struct {
	calls  int
	lastIn string
	err    error
	closed bool
}

func (f *fakeExporter) FromFile(ctx context.Context, filePath string) ([]byte, error) {
	f.calls++
	f.lastIn = filePath
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func (f *fakeExporter) Close() error {
	f.closed = true
	return nil
}

// newTestBuilder creates a Builder with a fake exporter injected.
func newTestBuilder(opts ...Option) (*Builder, *fakeExporter) {
	b := New(opts...)
	_ = b.exporter.Close()
	fake := &fakeExporter{}
	b.exporter = fake
	return b, fake
}

func TestBuilder_RenderHTML(t *testing.T) {
	t.Parallel()

	b, _ := newTestBuilder()
	defer b.Close()

	html, err := b.RenderHTML(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("RenderHTML error: %v", err)
	}
	if !strings.Contains(html, "Test User") {
		t.Error("output missing person name")
	}
}

func TestBuilder_RenderHTML_NilDocument(t *testing.T) {
	t.Parallel()

	b, _ := newTestBuilder()
	defer b.Close()

	_, err := b.RenderHTML(context.Background(), nil)
	if !errors.Is(err, ErrNilDocument) {
		t.Errorf("error = %v, want ErrNilDocument", err)
	}
}

func TestBuilder_RenderHTML_CanceledContext(t *testing.T) {
	t.Parallel()

	b, _ := newTestBuilder()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.RenderHTML(ctx, testDocument())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestBuilder_LayoutPrecedence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	doc := testDocument()

	layoutFile := filepath.Join(t.TempDir(), "custom.resume")
	if err := os.WriteFile(layoutFile, []byte("person\n  phone\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		opts         []Option
		wantContains string
		wantNot      string
	}{
		{
			name:         "explicit layout wins over file and theme",
			opts:         []Option{WithLayout(ParseLayout("person\n  email\n")), WithLayoutFile(layoutFile), WithTheme("jake")},
			wantContains: "test@example.com",
			wantNot:      "555-1234",
		},
		{
			name:         "layout file wins over theme",
			opts:         []Option{WithLayoutFile(layoutFile), WithTheme("jake")},
			wantContains: "555-1234",
			wantNot:      "test@example.com",
		},
		{
			name:         "default layout when nothing configured",
			opts:         nil,
			wantContains: "Test User",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, _ := newTestBuilder(tt.opts...)
			defer b.Close()

			html, err := b.RenderHTML(ctx, doc)
			if err != nil {
				t.Fatalf("RenderHTML error: %v", err)
			}
			if tt.wantContains != "" && !strings.Contains(html, tt.wantContains) {
				t.Errorf("output missing %q", tt.wantContains)
			}
			if tt.wantNot != "" && strings.Contains(html, tt.wantNot) {
				t.Errorf("output contains %q", tt.wantNot)
			}
		})
	}
}

func TestBuilder_UnknownThemeSurfacesOnRender(t *testing.T) {
	t.Parallel()

	b, _ := newTestBuilder(WithTheme("nope"))
	defer b.Close()

	_, err := b.RenderHTML(context.Background(), testDocument())
	if !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("error = %v, want ErrUnknownTheme", err)
	}
}

func TestBuilder_UnknownTemplate(t *testing.T) {
	t.Parallel()

	b, _ := newTestBuilder(WithTemplate("fancy"))
	defer b.Close()

	_, err := b.RenderHTML(context.Background(), testDocument())
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("error = %v, want ErrUnknownTemplate", err)
	}
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	b, fake := newTestBuilder()
	defer b.Close()

	outDir := filepath.Join(t.TempDir(), "dist")
	if err := b.Build(context.Background(), testDocument(), outDir); err != nil {
		t.Fatalf("Build error: %v", err)
	}

	htmlBytes, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	if !strings.Contains(string(htmlBytes), "Test User") {
		t.Error("index.html missing person name")
	}

	pdfBytes, err := os.ReadFile(filepath.Join(outDir, "resume.pdf"))
	if err != nil {
		t.Fatalf("reading resume.pdf: %v", err)
	}
	if string(pdfBytes) != "%PDF-fake" {
		t.Errorf("resume.pdf = %q, want fake PDF bytes", pdfBytes)
	}

	if fake.calls != 1 {
		t.Errorf("exporter calls = %d, want 1", fake.calls)
	}
	if !filepath.IsAbs(fake.lastIn) {
		t.Errorf("exporter should receive an absolute path, got %q", fake.lastIn)
	}
}

func TestBuilder_BuildHTML_SkipsExporter(t *testing.T) {
	t.Parallel()

	b, fake := newTestBuilder()
	defer b.Close()

	outDir := filepath.Join(t.TempDir(), "dist")
	if err := b.BuildHTML(context.Background(), testDocument(), outDir); err != nil {
		t.Fatalf("BuildHTML error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "index.html")); err != nil {
		t.Errorf("index.html not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "resume.pdf")); !os.IsNotExist(err) {
		t.Error("resume.pdf must not be written in HTML-only mode")
	}
	if fake.calls != 0 {
		t.Errorf("exporter calls = %d, want 0", fake.calls)
	}
}

func TestBuilder_BuildPDF(t *testing.T) {
	t.Parallel()

	b, fake := newTestBuilder()
	defer b.Close()

	pdf, err := b.BuildPDF(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("BuildPDF error: %v", err)
	}
	if string(pdf) != "%PDF-fake" {
		t.Errorf("pdf = %q, want fake PDF bytes", pdf)
	}
	if fake.calls != 1 {
		t.Errorf("exporter calls = %d, want 1", fake.calls)
	}
	if _, err := os.Stat(fake.lastIn); !os.IsNotExist(err) {
		t.Errorf("temp HTML file %q should be cleaned up", fake.lastIn)
	}
}

func TestBuilder_Build_ExporterError(t *testing.T) {
	t.Parallel()

	b, fake := newTestBuilder()
	defer b.Close()
	fake.err = ErrPDFGeneration

	err := b.Build(context.Background(), testDocument(), filepath.Join(t.TempDir(), "dist"))
	if !errors.Is(err, ErrPDFGeneration) {
		t.Errorf("error = %v, want ErrPDFGeneration", err)
	}
}

func TestBuilder_Close(t *testing.T) {
	t.Parallel()

	b, fake := newTestBuilder()
	if err := b.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if !fake.closed {
		t.Error("Close must release the exporter")
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) should panic")
		}
	}()
	WithTimeout(0)
}

func TestWithTimeout_Positive(t *testing.T) {
	t.Parallel()

	b, _ := newTestBuilder(WithTimeout(time.Minute))
	defer b.Close()

	if b.cfg.timeout != time.Minute {
		t.Errorf("timeout = %v, want 1m", b.cfg.timeout)
	}
}
