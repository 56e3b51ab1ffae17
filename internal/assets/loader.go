package assets

// AssetLoader defines the contract for loading template sets and logos.
type AssetLoader interface {
	// LoadTemplateSet loads a template set by directory name.
	// Returns ErrTemplateNotFound if the set doesn't exist.
	// Returns ErrIncompleteTemplateSet if a required file is missing.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplateSet(name string) (*TemplateSet, error)

	// LoadLogo loads a logo image by file name (with extension).
	// Returns ErrLogoNotFound if the logo doesn't exist.
	// Returns ErrInvalidAssetName if the name is not a plain image file name.
	LoadLogo(fileName string) ([]byte, error)
}
