package nb2beamer

import (
	"errors"
	"io/fs"

	"github.com/alnah/go-nb2beamer/internal/assets"
	"github.com/alnah/go-nb2beamer/internal/binder"
	"github.com/alnah/go-nb2beamer/internal/dateutil"
	"github.com/alnah/go-nb2beamer/internal/fileutil"
	"github.com/alnah/go-nb2beamer/internal/notebook"
	"github.com/alnah/go-nb2beamer/internal/theme"
)

// Sentinel errors for library operations. They alias the internal package
// errors so errors.Is matches at every layer.
var (
	// ErrNotFound indicates the notebook or a template set does not exist.
	ErrNotFound = fs.ErrNotExist

	// ErrMalformedDocument indicates the notebook is not a valid cell
	// sequence, or a cell carries an undecodable payload.
	ErrMalformedDocument = notebook.ErrMalformed

	// ErrUnknownTheme indicates a theme key absent from the registry.
	ErrUnknownTheme = theme.ErrUnknownTheme

	// ErrInvalidTheme indicates a custom theme that cannot be registered.
	ErrInvalidTheme = theme.ErrInvalidTheme

	// ErrUnboundPlaceholder indicates a template token with no value.
	ErrUnboundPlaceholder = binder.ErrUnboundPlaceholder

	// ErrAssetWriteFailure indicates the output tree could not be written.
	ErrAssetWriteFailure = fileutil.ErrWriteFailed

	// ErrOutputNotOwned is returned with ErrAssetWriteFailure when the output
	// directory holds files nb2beamer did not write, such as the notebook.
	ErrOutputNotOwned = fileutil.ErrNotOwned

	// ErrTemplateNotFound indicates a missing template set. It wraps ErrNotFound.
	ErrTemplateNotFound = assets.ErrTemplateNotFound

	// ErrIncompleteTemplateSet indicates a template set missing a file.
	ErrIncompleteTemplateSet = assets.ErrIncompleteTemplateSet

	// ErrInvalidDate indicates an unusable date setting.
	ErrInvalidDate = dateutil.ErrInvalidDateFormat

	// ErrInvalidAssetPath indicates an asset or logo directory that is not a
	// readable directory, or an asset lookup escaping it.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrInvalidInput indicates missing or inconsistent generation parameters.
	ErrInvalidInput = errors.New("invalid input")
)
