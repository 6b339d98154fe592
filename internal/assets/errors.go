package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrLayoutNotFound   = errors.New("layout theme not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)
