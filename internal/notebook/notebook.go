// Package notebook loads Jupyter notebooks (nbformat 4) into an ordered,
// immutable cell sequence.
package notebook

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for notebook loading.
var (
	// ErrNotFound indicates the notebook path does not resolve to a readable
	// file. It wraps fs.ErrNotExist.
	ErrNotFound = fmt.Errorf("notebook %w", fs.ErrNotExist)

	// ErrMalformed indicates the document is not a valid cell sequence.
	ErrMalformed = errors.New("malformed notebook")
)

// Kind classifies a cell. The set is closed.
type Kind int

const (
	KindMarkdown Kind = iota + 1
	KindCode
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindCode:
		return "code"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// parseKind maps an nbformat cell_type to a Kind.
func parseKind(cellType string) (Kind, bool) {
	switch cellType {
	case "markdown":
		return KindMarkdown, true
	case "code":
		return KindCode, true
	case "raw":
		return KindRaw, true
	}
	return 0, false
}

// Output is one rendered result of a code cell, reduced to its preferred
// representation.
type Output struct {
	MimeType string
	Data     string // inline text, or base64 for binary mime types
}

// Cell is one unit of notebook content.
type Cell struct {
	Index   int // position in the notebook, starting at 0
	Kind    Kind
	Source  string
	Outputs []Output // code cells only
}

// Notebook is a loaded document.
type Notebook struct {
	Cells []Cell

	// Language is the kernel language ("python", "r", ...), if declared.
	Language string
	// FileExtension is language_info.file_extension (".py"), if declared.
	FileExtension string
}

// CellError reports a problem with a specific cell.
type CellError struct {
	Index int
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %d: %v", e.Index, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
