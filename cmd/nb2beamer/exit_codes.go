package main

import (
	"errors"
	"os"

	"github.com/alnah/go-nb2beamer"
	"github.com/alnah/go-nb2beamer/internal/config"
)

// Exit codes for the nb2beamer CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Presentation written
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, theme or template set
	ExitIO       = 3 // Notebook not found, output not writable
	ExitDocument = 4 // Malformed notebook or template
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Document errors (exit 4)
	if errors.Is(err, nb2beamer.ErrMalformedDocument) ||
		errors.Is(err, nb2beamer.ErrUnboundPlaceholder) {
		return ExitDocument
	}

	// Usage/config/validation errors (exit 2).
	// Checked before I/O: a missing template set also matches os.ErrNotExist.
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, nb2beamer.ErrUnknownTheme) ||
		errors.Is(err, nb2beamer.ErrInvalidTheme) ||
		errors.Is(err, nb2beamer.ErrTemplateNotFound) ||
		errors.Is(err, nb2beamer.ErrIncompleteTemplateSet) ||
		errors.Is(err, nb2beamer.ErrInvalidAssetPath) ||
		errors.Is(err, nb2beamer.ErrInvalidDate) ||
		errors.Is(err, nb2beamer.ErrInvalidInput) ||
		errors.Is(err, nb2beamer.ErrOutputNotOwned) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, nb2beamer.ErrAssetWriteFailure) {
		return ExitIO
	}

	return ExitGeneral
}
