package assets

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateAssetName checks that an asset name is safe for use as a directory name.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// logoExtensions are the image formats a Beamer \includegraphics or
// \includesvg call accepts.
var logoExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".pdf": true, ".svg": true,
}

// ValidateLogoName checks that a logo name is a plain image file name:
// a non-hidden base name with a supported extension.
func ValidateLogoName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\") || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	if !logoExtensions[strings.ToLower(filepath.Ext(name))] {
		return fmt.Errorf("%w: %q: unsupported image type", ErrInvalidAssetName, name)
	}
	return nil
}
