package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for asset operations.
var (
	// ErrTemplateNotFound indicates the requested template set does not exist.
	// It wraps fs.ErrNotExist.
	ErrTemplateNotFound = fmt.Errorf("template set %w", fs.ErrNotExist)

	// ErrIncompleteTemplateSet indicates the template set is missing required files.
	ErrIncompleteTemplateSet = errors.New("template set missing required file")

	// ErrLogoNotFound indicates no loader holds the requested logo file.
	ErrLogoNotFound = errors.New("logo not found")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
