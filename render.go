package jobl2pdf

import (
	"fmt"
	"html"
	"strings"

	"github.com/joblhq/go-jobl2pdf/internal/assets"
	"github.com/joblhq/go-jobl2pdf/internal/dateutil"
	"github.com/joblhq/go-jobl2pdf/jobl"
)

// Built-in template and theme names.
const (
	TemplateMinimal = "minimal"
	TemplateJake    = "jake"

	DefaultTemplate = TemplateMinimal
	DefaultTheme    = TemplateMinimal
)

// templateStyles maps each known template to its style asset.
var templateStyles = map[string]string{
	TemplateMinimal: "minimal",
	TemplateJake:    "jake",
}

// RenderHTML renders a layout against a document with the named template and
// returns the complete HTML document. Returns ErrUnknownTemplate for an
// unrecognized template name. The renderer performs no I/O and no logging;
// layout and doc are read-only for the duration of the call, so concurrent
// renders over independent outputs are safe.
func RenderHTML(layout *Layout, doc *jobl.Document, template string) (string, error) {
	return (&renderer{}).render(layout, doc, template)
}

// renderer holds per-render configuration. The zero value renders all text as
// escaped plain text; md enables the opt-in Markdown path for summaries.
type renderer struct {
	md *MarkdownRenderer
}

func (r *renderer) render(layout *Layout, doc *jobl.Document, template string) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}
	styleName, ok := templateStyles[template]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, template)
	}
	css, err := assets.LoadStyle(styleName)
	if err != nil {
		return "", fmt.Errorf("loading template style: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", html.EscapeString(doc.Person.Name))
	b.WriteString("  <style>\n")
	b.WriteString(css)
	b.WriteString("  </style>\n")
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString("  <main>\n")

	for i := range layout.Sections {
		section := &layout.Sections[i]
		switch section.Name {
		case "person":
			r.renderPersonSection(&b, doc, section)
		case "summary":
			r.renderSummarySection(&b, doc)
		case "skills":
			r.renderSkillsSection(&b, doc)
		case "experience":
			r.renderExperienceSection(&b, doc, section)
		case "projects":
			r.renderProjectsSection(&b, doc, section)
		case "education":
			r.renderEducationSection(&b, doc, section)
		default:
			// Unknown section names are skipped, so layouts written for a
			// newer version degrade instead of failing.
		}
	}

	b.WriteString("  </main>\n")
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	return b.String(), nil
}

// fieldKind selects the structured markup shape for a known field.
type fieldKind int

const (
	textField fieldKind = iota // <tag class="...">value</tag>
	linkField                  // <a href="value">value</a>, optionally p-wrapped
	listField                  // <ul class="..."><li>item</li>...</ul>
)

// knownField describes the structured fragment for one known field name.
type knownField struct {
	kind     fieldKind
	tag      string
	class    string
	wrapped  bool // linkField: wrap the anchor in <p class="class">
	markdown bool // textField: eligible for the opt-in Markdown path
}

// entityView adapts one entity kind (person, experience item, ...) to the
// generic field renderer: a table of known field names and resolvers for
// scalar and list values. Absent values resolve to empty.
type entityView struct {
	indent string
	known  map[string]knownField
	get    func(name string) string
	list   func(name string) []string
}

// renderField emits one field against the current entity. A field that is
// exactly one reference to a known name gets its structured fragment; every
// other shape (multi-part, unknown name, literals) falls back to a generic
// inline paragraph concatenating the parts.
func (r *renderer) renderField(b *strings.Builder, v entityView, f Field) {
	if len(f.Parts) == 0 {
		return
	}

	if len(f.Parts) == 1 && f.Parts[0].Kind == PartReference {
		if kf, ok := v.known[f.Parts[0].Text]; ok {
			r.renderKnownField(b, v, kf, f.Parts[0].Text)
			return
		}
	}

	b.WriteString(v.indent)
	if f.Class != "" {
		fmt.Fprintf(b, "<p class=\"%s\">", html.EscapeString(f.Class))
	} else {
		b.WriteString("<p>")
	}
	for _, part := range f.Parts {
		switch part.Kind {
		case PartLiteral:
			b.WriteString(html.EscapeString(part.Text))
		case PartReference:
			// Absent references contribute empty text; the wrapper and
			// adjacent literals still appear.
			b.WriteString(html.EscapeString(v.get(part.Text)))
		}
	}
	b.WriteString("</p>\n")
}

// renderKnownField emits the structured fragment for a known field.
// Absent values emit nothing at all, including the wrapper.
func (r *renderer) renderKnownField(b *strings.Builder, v entityView, kf knownField, name string) {
	switch kf.kind {
	case listField:
		items := v.list(name)
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(b, "%s<ul class=\"%s\">\n", v.indent, kf.class)
		for _, item := range items {
			fmt.Fprintf(b, "%s  <li>%s</li>\n", v.indent, html.EscapeString(item))
		}
		fmt.Fprintf(b, "%s</ul>\n", v.indent)

	case linkField:
		value := v.get(name)
		if value == "" {
			return
		}
		escaped := html.EscapeString(value)
		if kf.wrapped {
			fmt.Fprintf(b, "%s<p class=\"%s\"><a href=\"%s\">%s</a></p>\n", v.indent, kf.class, escaped, escaped)
		} else {
			fmt.Fprintf(b, "%s<a class=\"%s\" href=\"%s\">%s</a>\n", v.indent, kf.class, escaped, escaped)
		}

	case textField:
		value := v.get(name)
		if value == "" {
			return
		}
		if kf.markdown && r.md != nil {
			fmt.Fprintf(b, "%s<div class=\"%s\">%s</div>\n", v.indent, kf.class, r.md.Render(value))
			return
		}
		fmt.Fprintf(b, "%s<%s class=\"%s\">%s</%s>\n", v.indent, kf.tag, kf.class, html.EscapeString(value), kf.tag)
	}
}

// renderEntityFields applies every field of a section against one entity.
// Container fields render exactly like section fields; the container is a
// structural grouping only.
func (r *renderer) renderEntityFields(b *strings.Builder, v entityView, section *Section) {
	for _, f := range section.Fields() {
		r.renderField(b, v, f)
	}
}

var personKnownFields = map[string]knownField{
	"name":     {kind: textField, tag: "h1", class: "person-name"},
	"headline": {kind: textField, tag: "p", class: "person-headline"},
	"email":    {kind: textField, tag: "span", class: "person-email"},
	"phone":    {kind: textField, tag: "span", class: "person-phone"},
	"location": {kind: textField, tag: "span", class: "person-location"},
	"website":  {kind: linkField, class: "person-website"},
}

func personView(p *jobl.Person) entityView {
	return entityView{
		indent: "      ",
		known:  personKnownFields,
		get: func(name string) string {
			switch name {
			case "name":
				return p.Name
			case "headline":
				return p.Headline
			case "email":
				return p.Email
			case "phone":
				return p.Phone
			case "location":
				return p.Location
			case "website":
				return p.Website
			}
			return ""
		},
		list: func(string) []string { return nil },
	}
}

func (r *renderer) renderPersonSection(b *strings.Builder, doc *jobl.Document, section *Section) {
	b.WriteString("    <header id=\"person\" class=\"section section-person\">\n")
	r.renderEntityFields(b, personView(&doc.Person), section)
	b.WriteString("    </header>\n")
}

func (r *renderer) renderSummarySection(b *strings.Builder, doc *jobl.Document) {
	summary := doc.Person.Summary
	if summary == "" {
		return
	}
	b.WriteString("    <section id=\"summary\" class=\"section section-summary\">\n")
	b.WriteString("      <h2>Summary</h2>\n")
	if r.md != nil {
		fmt.Fprintf(b, "      <div class=\"summary-text\">%s</div>\n", r.md.Render(summary))
	} else {
		fmt.Fprintf(b, "      <p class=\"summary-text\">%s</p>\n", html.EscapeString(summary))
	}
	b.WriteString("    </section>\n")
}

func (r *renderer) renderSkillsSection(b *strings.Builder, doc *jobl.Document) {
	if len(doc.Skills) == 0 {
		return
	}
	b.WriteString("    <section id=\"skills\" class=\"section section-skills\">\n")
	b.WriteString("      <h2>Skills</h2>\n")
	for _, category := range doc.Skills {
		fmt.Fprintf(b,
			"      <p class=\"skills-category\"><strong class=\"skills-category-name\">%s:</strong> <span class=\"skills-items\">%s</span></p>\n",
			html.EscapeString(category.Category), escapeJoin(category.Items))
	}
	b.WriteString("    </section>\n")
}

var experienceKnownFields = map[string]knownField{
	"title":        {kind: textField, tag: "h3", class: "experience-title"},
	"company":      {kind: textField, tag: "p", class: "experience-company"},
	"summary":      {kind: textField, tag: "p", class: "experience-summary", markdown: true},
	"technologies": {kind: textField, tag: "p", class: "experience-technologies"},
	"highlights":   {kind: listField, class: "experience-highlights"},
}

func experienceView(exp *jobl.ExperienceItem) entityView {
	return entityView{
		indent: "        ",
		known:  experienceKnownFields,
		get: func(name string) string {
			switch name {
			case "title":
				return exp.Title
			case "company":
				return exp.Company
			case "location":
				return exp.Location
			case "start":
				return dateutil.Display(exp.Start)
			case "end":
				return dateutil.Display(exp.End)
			case "summary":
				return exp.Summary
			case "technologies":
				return strings.Join(exp.Technologies, ", ")
			}
			return ""
		},
		list: func(name string) []string {
			if name == "highlights" {
				return exp.Highlights
			}
			return nil
		},
	}
}

func (r *renderer) renderExperienceSection(b *strings.Builder, doc *jobl.Document, section *Section) {
	if len(doc.Experience) == 0 {
		return
	}
	b.WriteString("    <section id=\"experience\" class=\"section section-experience\">\n")
	b.WriteString("      <h2>Experience</h2>\n")
	for i := range doc.Experience {
		b.WriteString("      <div class=\"experience-item\">\n")
		r.renderEntityFields(b, experienceView(&doc.Experience[i]), section)
		b.WriteString("      </div>\n")
	}
	b.WriteString("    </section>\n")
}

var projectKnownFields = map[string]knownField{
	"name":         {kind: textField, tag: "h3", class: "projects-name"},
	"url":          {kind: linkField, class: "projects-url", wrapped: true},
	"summary":      {kind: textField, tag: "p", class: "projects-summary", markdown: true},
	"technologies": {kind: textField, tag: "p", class: "projects-technologies"},
}

func projectView(proj *jobl.ProjectItem) entityView {
	return entityView{
		indent: "        ",
		known:  projectKnownFields,
		get: func(name string) string {
			switch name {
			case "name":
				return proj.Name
			case "url":
				return proj.URL
			case "summary":
				return proj.Summary
			case "technologies":
				return strings.Join(proj.Technologies, ", ")
			}
			return ""
		},
		list: func(string) []string { return nil },
	}
}

func (r *renderer) renderProjectsSection(b *strings.Builder, doc *jobl.Document, section *Section) {
	if len(doc.Projects) == 0 {
		return
	}
	b.WriteString("    <section id=\"projects\" class=\"section section-projects\">\n")
	b.WriteString("      <h2>Projects</h2>\n")
	for i := range doc.Projects {
		b.WriteString("      <div class=\"projects-item\">\n")
		r.renderEntityFields(b, projectView(&doc.Projects[i]), section)
		b.WriteString("      </div>\n")
	}
	b.WriteString("    </section>\n")
}

var educationKnownFields = map[string]knownField{
	"degree":      {kind: textField, tag: "h3", class: "education-degree"},
	"institution": {kind: textField, tag: "p", class: "education-institution"},
	"details":     {kind: listField, class: "education-details"},
}

func educationView(edu *jobl.EducationItem) entityView {
	return entityView{
		indent: "        ",
		known:  educationKnownFields,
		get: func(name string) string {
			switch name {
			case "degree":
				return edu.Degree
			case "institution":
				return edu.Institution
			case "location":
				return edu.Location
			case "start":
				return dateutil.Display(edu.Start)
			case "end":
				return dateutil.Display(edu.End)
			}
			return ""
		},
		list: func(name string) []string {
			if name == "details" {
				return edu.Details
			}
			return nil
		},
	}
}

func (r *renderer) renderEducationSection(b *strings.Builder, doc *jobl.Document, section *Section) {
	if len(doc.Education) == 0 {
		return
	}
	b.WriteString("    <section id=\"education\" class=\"section section-education\">\n")
	b.WriteString("      <h2>Education</h2>\n")
	for i := range doc.Education {
		b.WriteString("      <div class=\"education-item\">\n")
		r.renderEntityFields(b, educationView(&doc.Education[i]), section)
		b.WriteString("      </div>\n")
	}
	b.WriteString("    </section>\n")
}

// escapeJoin escapes each item and joins with ", ".
func escapeJoin(items []string) string {
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = html.EscapeString(item)
	}
	return strings.Join(escaped, ", ")
}
