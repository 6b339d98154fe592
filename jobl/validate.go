package jobl

import "fmt"

// Validate checks required business fields and returns one error per
// violation. A nil slice means the document is valid. Optional fields are
// never validated; absence is a normal condition handled at render time.
func (d *Document) Validate() []error {
	var errs []error

	if d.Person.Name == "" {
		errs = append(errs, fmt.Errorf("person: name is required"))
	}

	for i, exp := range d.Experience {
		if exp.Title == "" {
			errs = append(errs, fmt.Errorf("experience[%d]: title is required", i))
		}
		if exp.Company == "" {
			errs = append(errs, fmt.Errorf("experience[%d]: company is required", i))
		}
	}

	for i, proj := range d.Projects {
		if proj.Name == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: name is required", i))
		}
	}

	for i, edu := range d.Education {
		if edu.Degree == "" {
			errs = append(errs, fmt.Errorf("education[%d]: degree is required", i))
		}
		if edu.Institution == "" {
			errs = append(errs, fmt.Errorf("education[%d]: institution is required", i))
		}
	}

	return errs
}
