// Package jobl defines the JOBL resume document model and its YAML decoding.
//
// A JOBL document describes a person, their skills grouped by category, and
// lists of experience, project, and education items. The package validates
// required business fields; how (and whether) a present value is displayed is
// the renderer's concern, not this package's.
package jobl

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Document is a fully decoded JOBL file.
type Document struct {
	Person     Person           `yaml:"person"`
	Skills     Skills           `yaml:"skills"`
	Experience []ExperienceItem `yaml:"experience"`
	Projects   []ProjectItem    `yaml:"projects"`
	Education  []EducationItem  `yaml:"education"`
}

// Person holds identity and contact fields. Name is required; every other
// field is optional and an empty string means absent.
type Person struct {
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
	Website  string `yaml:"website"`
	Summary  string `yaml:"summary"`
}

// SkillCategory is one named group of skills.
type SkillCategory struct {
	Category string
	Items    []string
}

// Skills preserves the source order of the YAML skills mapping. Go maps do
// not keep insertion order, so the mapping is decoded into a slice.
type Skills []SkillCategory

// UnmarshalYAML decodes a YAML mapping of category name to skill list,
// preserving key order.
func (s *Skills) UnmarshalYAML(data []byte) error {
	var ms yaml.MapSlice
	if err := yaml.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("jobl: decoding skills: %w", err)
	}

	out := make(Skills, 0, len(ms))
	for _, item := range ms {
		category, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("jobl: skills category must be a string, got %T", item.Key)
		}
		values, ok := item.Value.([]interface{})
		if !ok {
			return fmt.Errorf("jobl: skills %q must be a list", category)
		}
		items := make([]string, 0, len(values))
		for _, v := range values {
			str, ok := v.(string)
			if !ok {
				return fmt.Errorf("jobl: skill in %q must be a string, got %T", category, v)
			}
			items = append(items, str)
		}
		out = append(out, SkillCategory{Category: category, Items: items})
	}

	*s = out
	return nil
}

// ExperienceItem is one work-history entry. Title and Company are required.
type ExperienceItem struct {
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Location     string   `yaml:"location"`
	Start        string   `yaml:"start"`
	End          string   `yaml:"end"`
	Summary      string   `yaml:"summary"`
	Highlights   []string `yaml:"highlights"`
	Technologies []string `yaml:"technologies"`
}

// ProjectItem is one project entry. Name is required.
type ProjectItem struct {
	Name         string   `yaml:"name"`
	URL          string   `yaml:"url"`
	Summary      string   `yaml:"summary"`
	Technologies []string `yaml:"technologies"`
}

// EducationItem is one education entry. Degree and Institution are required.
type EducationItem struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Location    string   `yaml:"location"`
	Start       string   `yaml:"start"`
	End         string   `yaml:"end"`
	Details     []string `yaml:"details"`
}
