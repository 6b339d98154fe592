package jobl2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilDocument    = errors.New("document cannot be nil")
	ErrUnknownTheme   = errors.New("unknown theme")
	ErrLayoutRead     = errors.New("failed to read layout file")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// ErrUnknownTemplate indicates the template selector does not match a
	// known template variant.
	ErrUnknownTemplate = errors.New("unknown template")
)
