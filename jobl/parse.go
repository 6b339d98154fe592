package jobl

import (
	"errors"
	"fmt"
	"os"

	"github.com/joblhq/go-jobl2pdf/internal/yamlutil"
)

// ErrReadFile indicates the JOBL file could not be read.
var ErrReadFile = errors.New("jobl: failed to read file")

// Parse decodes a JOBL document from YAML bytes and validates its content.
// Validation failures are returned joined into a single error.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yamlutil.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("jobl: %w", err)
	}
	if errs := doc.Validate(); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &doc, nil
}

// ParseFile reads and parses a JOBL document from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-supplied by design
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
	}
	return Parse(data)
}
