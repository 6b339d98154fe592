// Package assets provides the built-in CSS styles and layout themes.
// Assets are compiled into the binary and loaded by name.
package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadLayout loads a built-in layout theme by name using the default embedded
// loader. The name should not include the .resume extension or path components.
// Returns ErrLayoutNotFound if the theme does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadLayout(name string) (string, error) {
	return defaultLoader.LoadLayout(name)
}
