package nb2beamer

import (
	"errors"
	"fmt"

	"github.com/alnah/go-nb2beamer/internal/assets"
)

// AssetLoader defines the contract for loading template sets and logos.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader = assets.AssetLoader

// TemplateSet holds the presentation template and its compile scripts.
// The document declares {{TOKEN}} placeholders; see Placeholders.
type TemplateSet = assets.TemplateSet

// NewTemplateSet creates a TemplateSet from its three files.
// This is a convenience constructor for users providing templates directly.
func NewTemplateSet(name, document, unixScript, windowsScript string) *TemplateSet {
	return &TemplateSet{
		Name:          name,
		Document:      document,
		UnixScript:    unixScript,
		WindowsScript: windowsScript,
	}
}

// NewAssetLoader creates an AssetLoader for the given directories.
// If basePath is empty, template sets come from embedded assets only.
// If basePath is set, custom assets take precedence with fallback to embedded.
// If logoDir is set, logos are looked up there before basePath/logos.
//
// The basePath directory may contain:
//   - templates/{name}/presentation.tex, compile_presentation.sh and
//     compile_presentation.bat for template sets
//   - logos/{file} for theme logos
//
// Returns ErrInvalidAssetPath if a path is set but not a valid, readable directory.
func NewAssetLoader(basePath, logoDir string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath, logoDir)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return resolver, nil
}

// convertAssetError maps internal asset errors to public errors.
// Not-found and incomplete-set errors are already public aliases.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	default:
		return err
	}
}
