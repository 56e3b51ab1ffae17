package assets

import (
	"errors"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the asset is not found in the custom location.
type AssetResolver struct {
	logoDir  *FilesystemLoader // nil if no logo directory configured
	custom   AssetLoader       // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// If customBasePath is set, custom assets take precedence with fallback to embedded.
// If logoDir is set, logos are looked up there first, directly under the directory.
// Returns error if either path is set but invalid.
func NewAssetResolver(customBasePath, logoDir string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	if logoDir != "" {
		dirLoader, err := NewFilesystemLoader(logoDir)
		if err != nil {
			return nil, err
		}
		resolver.logoDir = dirLoader
	}

	return resolver, nil
}

// LoadTemplateSet loads a template set, trying custom loader first if available.
func (r *AssetResolver) LoadTemplateSet(name string) (*TemplateSet, error) {
	// If no custom loader, use embedded directly
	if r.custom == nil {
		return r.embedded.LoadTemplateSet(name)
	}

	// Try custom loader first
	ts, err := r.custom.LoadTemplateSet(name)
	if err == nil {
		return ts, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !isNotFoundError(err) {
		return nil, err
	}

	// Fall back to embedded
	return r.embedded.LoadTemplateSet(name)
}

// LoadLogo loads a logo from the logo directory, then the custom base path,
// then the embedded assets.
func (r *AssetResolver) LoadLogo(fileName string) ([]byte, error) {
	if r.logoDir != nil {
		data, err := r.logoDir.loadLogo(".", fileName)
		if err == nil || !isNotFoundError(err) {
			return data, err
		}
	}

	if r.custom != nil {
		data, err := r.custom.LoadLogo(fileName)
		if err == nil || !isNotFoundError(err) {
			return data, err
		}
	}

	return r.embedded.LoadLogo(fileName)
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrLogoNotFound)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
