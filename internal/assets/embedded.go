package assets

import (
	"embed"
	"fmt"
	"path"
)

//go:embed templates/*
var templates embed.FS

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplateSet loads a template set by name using the embedded loader.
func LoadTemplateSet(name string) (*TemplateSet, error) {
	return defaultLoader.LoadTemplateSet(name)
}

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplateSet loads a template set from embedded assets by name.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	contents := make([][]byte, len(templateSetFiles))
	for i, file := range templateSetFiles {
		content, err := templates.ReadFile(path.Join("templates", name, file))
		if err != nil {
			if i == 0 {
				return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
			}
			return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, file)
		}
		contents[i] = content
	}
	return newTemplateSet(name, contents), nil
}

// LoadLogo always fails: no logos are embedded.
func (e *EmbeddedLoader) LoadLogo(fileName string) ([]byte, error) {
	if err := ValidateLogoName(fileName); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %q", ErrLogoNotFound, fileName)
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
