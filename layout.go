package jobl2pdf

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joblhq/go-jobl2pdf/internal/assets"
)

// Indentation depths recognized by the layout grammar. Indentation is counted
// in raw leading characters, not tab stops.
const (
	sectionIndent   = 0 // section header
	fieldIndent     = 2 // field or container header
	containerIndent = 4 // field inside an open container
)

// PartKind discriminates the two token kinds a field is composed of.
type PartKind int

const (
	// PartReference is a bare token resolved against the current entity by name.
	PartReference PartKind = iota
	// PartLiteral is quoted text emitted verbatim (after escaping).
	PartLiteral
)

// FieldPart is one token of a field definition.
type FieldPart struct {
	Kind PartKind
	Text string
}

// Reference returns a field part that resolves name against the entity.
func Reference(name string) FieldPart {
	return FieldPart{Kind: PartReference, Text: name}
}

// Literal returns a field part emitted verbatim.
func Literal(text string) FieldPart {
	return FieldPart{Kind: PartLiteral, Text: text}
}

// Field is an ordered composition of literals and references describing one
// fragment of output. Class is set when the definition was prefixed "label:".
type Field struct {
	Class string
	Parts []FieldPart
}

// Container groups fields under a shared class label inside a section.
type Container struct {
	Class  string
	Fields []Field
}

// FieldEntry is either a Field or a Container.
type FieldEntry interface {
	isFieldEntry()
}

func (Field) isFieldEntry()     {}
func (Container) isFieldEntry() {}

// Section is a named top-level grouping of the layout. The name is a semantic
// identifier the renderer dispatches on ("person", "experience", ...).
type Section struct {
	Name    string
	Entries []FieldEntry
}

// Fields returns the section's fields in order, flattening containers.
func (s *Section) Fields() []Field {
	var fields []Field
	for _, e := range s.Entries {
		switch v := e.(type) {
		case Field:
			fields = append(fields, v)
		case Container:
			fields = append(fields, v.Fields...)
		}
	}
	return fields
}

// Layout is the ordered tree of sections driving the renderer. Duplicate
// section names are legal; each occurrence renders independently.
type Layout struct {
	Sections []Section
}

// splitFieldParts scans one trimmed layout line into field parts. Bare tokens
// become references, double-quoted spans become literals (quotes are not
// escapable within a span). The function is total: an unterminated quote at
// end of line degrades to a literal instead of failing.
func splitFieldParts(line string) []FieldPart {
	var parts []FieldPart
	var buf strings.Builder
	inQuote := false

	for _, ch := range line {
		switch {
		case ch == '"':
			if inQuote {
				// Closing quote flushes even an empty literal.
				parts = append(parts, Literal(buf.String()))
				buf.Reset()
				inQuote = false
			} else {
				if buf.Len() > 0 {
					parts = append(parts, Reference(buf.String()))
					buf.Reset()
				}
				inQuote = true
			}
		case ch == ' ' && !inQuote:
			if buf.Len() > 0 {
				parts = append(parts, Reference(buf.String()))
				buf.Reset()
			}
		default:
			buf.WriteRune(ch)
		}
	}

	if buf.Len() > 0 {
		if inQuote {
			parts = append(parts, Literal(buf.String()))
		} else {
			parts = append(parts, Reference(buf.String()))
		}
	}

	return parts
}

// classPrefix splits a "label: body" line at its first colon. ok is false
// when the line has no colon, the label is empty, or the label contains a
// quote or space (a plain field that happens to contain a colon).
func classPrefix(line string) (label, body string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return "", "", false
	}
	label = line[:i]
	if strings.ContainsAny(label, "\" ") {
		return "", "", false
	}
	return label, strings.TrimSpace(line[i+1:]), true
}

// isContainerHeader reports whether a depth-2 line opens a container:
// it ends with a colon and the text before it contains no quote or space.
func isContainerHeader(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	return !strings.ContainsAny(line[:len(line)-1], "\" ")
}

// parseFieldLine classifies a field line, honoring an optional class prefix.
func parseFieldLine(line string) Field {
	if label, body, ok := classPrefix(line); ok && body != "" {
		return Field{Class: label, Parts: splitFieldParts(body)}
	}
	return Field{Parts: splitFieldParts(line)}
}

// ParseLayout builds a Layout from layout text. The grammar never fails:
// malformed indentation and unclosed quotes degrade to best-effort structure,
// so conforming layouts may rely on the fallbacks (a plain field containing a
// colon, for example, is never promoted to a hard error).
func ParseLayout(content string) *Layout {
	layout := &Layout{}
	var section *Section
	var container *Container

	closeContainer := func() {
		if container != nil {
			section.Entries = append(section.Entries, *container)
			container = nil
		}
	}
	closeSection := func() {
		if section != nil {
			closeContainer()
			layout.Sections = append(layout.Sections, *section)
			section = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))

		switch {
		case indent == sectionIndent:
			closeSection()
			section = &Section{Name: trimmed}

		case indent >= containerIndent:
			if section == nil {
				continue
			}
			if container != nil {
				// Container headers are not meaningful at this depth;
				// the line is always a (possibly class-prefixed) field.
				container.Fields = append(container.Fields, parseFieldLine(trimmed))
			} else {
				section.Entries = append(section.Entries, Field{Parts: splitFieldParts(trimmed)})
			}

		case indent >= fieldIndent:
			if section == nil {
				continue
			}
			closeContainer()
			if isContainerHeader(trimmed) {
				container = &Container{Class: strings.TrimSuffix(trimmed, ":")}
			} else {
				section.Entries = append(section.Entries, parseFieldLine(trimmed))
			}
		}
	}

	closeSection()
	return layout
}

// LayoutFromFile reads and parses a layout file.
func LayoutFromFile(path string) (*Layout, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- path is user-supplied by design
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayoutRead, err)
	}
	return ParseLayout(string(content)), nil
}

// LayoutFromTheme parses one of the built-in layouts by theme name.
func LayoutFromTheme(theme string) (*Layout, error) {
	content, err := assets.LoadLayout(theme)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}
	return ParseLayout(content), nil
}

// defaultLayout parses the built-in minimal layout once, on first use.
var defaultLayout = sync.OnceValue(func() *Layout {
	layout, err := LayoutFromTheme(DefaultTheme)
	if err != nil {
		panic("jobl2pdf: built-in default layout is invalid: " + err.Error())
	}
	return layout
})

// DefaultLayout returns the layout used when none is configured.
// The returned tree is shared and must not be mutated.
func DefaultLayout() *Layout {
	return defaultLayout()
}
