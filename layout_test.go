package jobl2pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitFieldParts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []FieldPart
	}{
		{
			name: "single reference",
			line: "name",
			want: []FieldPart{Reference("name")},
		},
		{
			name: "multiple references",
			line: "start - end",
			want: []FieldPart{Reference("start"), Reference("-"), Reference("end")},
		},
		{
			name: "mixed literal and references",
			line: `a "b" c`,
			want: []FieldPart{Reference("a"), Literal("b"), Reference("c")},
		},
		{
			name: "literal with embedded spaces",
			line: `" - "`,
			want: []FieldPart{Literal(" - ")},
		},
		{
			name: "literal between references keeps spacing",
			line: `start " - " end`,
			want: []FieldPart{Reference("start"), Literal(" - "), Reference("end")},
		},
		{
			name: "unterminated quote degrades to literal",
			line: `"x`,
			want: []FieldPart{Literal("x")},
		},
		{
			name: "empty literal",
			line: `""`,
			want: []FieldPart{Literal("")},
		},
		{
			name: "adjacent reference and literal",
			line: `name"at"email`,
			want: []FieldPart{Reference("name"), Literal("at"), Reference("email")},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "spaces only",
			line: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := splitFieldParts(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitFieldParts(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseLayout_SimpleSections(t *testing.T) {
	t.Parallel()

	content := `
person
  name
  email

experience
  title
  company
`
	layout := ParseLayout(content)
	want := &Layout{Sections: []Section{
		{Name: "person", Entries: []FieldEntry{
			Field{Parts: []FieldPart{Reference("name")}},
			Field{Parts: []FieldPart{Reference("email")}},
		}},
		{Name: "experience", Entries: []FieldEntry{
			Field{Parts: []FieldPart{Reference("title")}},
			Field{Parts: []FieldPart{Reference("company")}},
		}},
	}}

	if diff := cmp.Diff(want, layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLayout_BlankLinesNeverCloseStructure(t *testing.T) {
	t.Parallel()

	content := `
person
  name

  email


experience
  title
`
	layout := ParseLayout(content)
	if got := len(layout.Sections); got != 2 {
		t.Fatalf("sections = %d, want 2", got)
	}
	if got := len(layout.Sections[0].Entries); got != 2 {
		t.Errorf("person entries = %d, want 2", got)
	}
	if got := len(layout.Sections[1].Entries); got != 1 {
		t.Errorf("experience entries = %d, want 1", got)
	}
}

func TestParseLayout_SectionsWithoutFields(t *testing.T) {
	t.Parallel()

	layout := ParseLayout("person\n  name\n\nsummary\n\nskills\n")
	if got := len(layout.Sections); got != 3 {
		t.Fatalf("sections = %d, want 3", got)
	}
	for i, want := range []string{"person", "summary", "skills"} {
		if layout.Sections[i].Name != want {
			t.Errorf("sections[%d].Name = %q, want %q", i, layout.Sections[i].Name, want)
		}
	}
	if got := len(layout.Sections[1].Entries); got != 0 {
		t.Errorf("summary entries = %d, want 0", got)
	}
}

func TestParseLayout_DuplicateSectionsKept(t *testing.T) {
	t.Parallel()

	layout := ParseLayout("skills\n\nskills\n")
	if got := len(layout.Sections); got != 2 {
		t.Fatalf("sections = %d, want 2 (duplicates are legal)", got)
	}
}

func TestParseLayout_QuotedStrings(t *testing.T) {
	t.Parallel()

	content := `
person
  name "at" email
  "Location:" location
`
	layout := ParseLayout(content)
	want := []FieldEntry{
		Field{Parts: []FieldPart{Reference("name"), Literal("at"), Reference("email")}},
		Field{Parts: []FieldPart{Literal("Location:"), Reference("location")}},
	}
	if diff := cmp.Diff(want, layout.Sections[0].Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLayout_Containers(t *testing.T) {
	t.Parallel()

	content := `
experience
  title
  dates:
    start " - " end
    location
  company
`
	layout := ParseLayout(content)
	want := []FieldEntry{
		Field{Parts: []FieldPart{Reference("title")}},
		Container{Class: "dates", Fields: []Field{
			{Parts: []FieldPart{Reference("start"), Literal(" - "), Reference("end")}},
			{Parts: []FieldPart{Reference("location")}},
		}},
		Field{Parts: []FieldPart{Reference("company")}},
	}
	if diff := cmp.Diff(want, layout.Sections[0].Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLayout_ContainerClosedAtEndOfInput(t *testing.T) {
	t.Parallel()

	layout := ParseLayout("experience\n  dates:\n    start\n")
	entries := layout.Sections[0].Entries
	if got := len(entries); got != 1 {
		t.Fatalf("entries = %d, want 1", got)
	}
	container, ok := entries[0].(Container)
	if !ok {
		t.Fatalf("entries[0] = %T, want Container", entries[0])
	}
	if container.Class != "dates" || len(container.Fields) != 1 {
		t.Errorf("container = %+v, want class dates with 1 field", container)
	}
}

func TestParseLayout_ClassOverride(t *testing.T) {
	t.Parallel()

	content := `
experience
  dates: start " - " end
`
	layout := ParseLayout(content)
	field, ok := layout.Sections[0].Entries[0].(Field)
	if !ok {
		t.Fatalf("entry = %T, want Field", layout.Sections[0].Entries[0])
	}
	if field.Class != "dates" {
		t.Errorf("field.Class = %q, want %q", field.Class, "dates")
	}
	want := []FieldPart{Reference("start"), Literal(" - "), Reference("end")}
	if diff := cmp.Diff(want, field.Parts); diff != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLayout_AmbiguousColonStaysPlainField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []FieldPart
	}{
		{
			name: "quoted prefix with colon",
			line: `"Location:" location`,
			want: []FieldPart{Literal("Location:"), Reference("location")},
		},
		{
			name: "space in prefix",
			line: `a b: c`,
			want: []FieldPart{Reference("a"), Reference("b:"), Reference("c")},
		},
		{
			name: "empty prefix",
			line: `: value`,
			want: []FieldPart{Reference(":"), Reference("value")},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			layout := ParseLayout("section\n  " + tt.line + "\n")
			field, ok := layout.Sections[0].Entries[0].(Field)
			if !ok {
				t.Fatalf("entry = %T, want Field", layout.Sections[0].Entries[0])
			}
			if field.Class != "" {
				t.Errorf("field.Class = %q, want empty", field.Class)
			}
			if diff := cmp.Diff(tt.want, field.Parts); diff != "" {
				t.Errorf("parts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLayout_DeepIndentWithoutContainer(t *testing.T) {
	t.Parallel()

	// Indent >= 4 with no open container degrades to a plain section field.
	layout := ParseLayout("person\n    name\n")
	field, ok := layout.Sections[0].Entries[0].(Field)
	if !ok {
		t.Fatalf("entry = %T, want Field", layout.Sections[0].Entries[0])
	}
	if diff := cmp.Diff([]FieldPart{Reference("name")}, field.Parts); diff != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLayout_FieldBeforeAnySectionIgnored(t *testing.T) {
	t.Parallel()

	layout := ParseLayout("  name\nperson\n  email\n")
	if got := len(layout.Sections); got != 1 {
		t.Fatalf("sections = %d, want 1", got)
	}
	if got := len(layout.Sections[0].Entries); got != 1 {
		t.Errorf("entries = %d, want 1 (leading orphan field dropped)", got)
	}
}

func TestLayoutFromTheme(t *testing.T) {
	t.Parallel()

	for _, theme := range []string{"minimal", "jake"} {
		theme := theme
		t.Run(theme, func(t *testing.T) {
			t.Parallel()
			layout, err := LayoutFromTheme(theme)
			if err != nil {
				t.Fatalf("LayoutFromTheme(%q) error: %v", theme, err)
			}
			names := make(map[string]bool)
			for _, s := range layout.Sections {
				names[s.Name] = true
			}
			for _, want := range []string{"person", "experience", "education"} {
				if !names[want] {
					t.Errorf("theme %q missing section %q", theme, want)
				}
			}
		})
	}
}

func TestLayoutFromTheme_Unknown(t *testing.T) {
	t.Parallel()

	_, err := LayoutFromTheme("nope")
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("error = %v, want ErrUnknownTheme", err)
	}
}

func TestLayoutFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "layout.resume")
	if err := os.WriteFile(path, []byte("person\n  name\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	layout, err := LayoutFromFile(path)
	if err != nil {
		t.Fatalf("LayoutFromFile error: %v", err)
	}
	if got := len(layout.Sections); got != 1 {
		t.Errorf("sections = %d, want 1", got)
	}
}

func TestLayoutFromFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LayoutFromFile(filepath.Join(t.TempDir(), "missing.resume"))
	if !errors.Is(err, ErrLayoutRead) {
		t.Errorf("error = %v, want ErrLayoutRead", err)
	}
}

func TestDefaultLayout(t *testing.T) {
	t.Parallel()

	layout := DefaultLayout()
	if len(layout.Sections) == 0 {
		t.Fatal("default layout has no sections")
	}
	if DefaultLayout() != layout {
		t.Error("DefaultLayout should return the same shared tree")
	}
}
