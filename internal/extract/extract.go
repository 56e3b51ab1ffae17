// Package extract turns notebook cells into sequence-numbered asset files:
// code listings and decoded output images.
//
// Sequence numbers start at 1 and increase independently per kind in cell
// order. Generated slides embed the resulting file names, so numbering must
// stay deterministic for an unchanged notebook.
package extract

import (
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"github.com/alnah/go-nb2beamer/internal/notebook"
)

// ErrDecode indicates an image payload that is not valid base64.
// It wraps notebook.ErrMalformed.
var ErrDecode = fmt.Errorf("%w: invalid image payload", notebook.ErrMalformed)

// Kind distinguishes asset families. Each kind has its own sequence.
type Kind int

const (
	KindCode Kind = iota + 1
	KindImage
)

// Asset directories, relative to the output root.
const (
	CodeDir   = "assets/code"
	FigureDir = "assets/figures"
)

// imageExtensions maps supported image mime types to file extensions.
// Mime types not listed here are skipped.
var imageExtensions = map[string]string{
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"application/pdf": ".pdf",
	"image/svg+xml":   ".svg",
}

// textual mime types are stored inline in the notebook rather than base64.
var textual = map[string]bool{
	"image/svg+xml": true,
}

// Asset is an extracted file held in memory until the output tree is written.
type Asset struct {
	Kind      Kind
	Seq       int
	FileName  string // e.g. cell_001.py
	Data      []byte
	CellIndex int
	MimeType  string // images only
	Lines     int    // code only
}

// Path returns the asset location relative to the output root.
func (a Asset) Path() string {
	if a.Kind == KindCode {
		return path.Join(CodeDir, a.FileName)
	}
	return path.Join(FigureDir, a.FileName)
}

// Extractor assigns sequence numbers and collects assets for one run.
// It is not safe for concurrent use; cells must be fed in document order.
type Extractor struct {
	codeExt  string
	codeSeq  int
	imageSeq int
	assets   []Asset
}

// New creates an Extractor for nb. The code file extension is derived once
// from the notebook's language metadata.
func New(nb *notebook.Notebook) *Extractor {
	return &Extractor{codeExt: CodeExtension(nb.FileExtension, nb.Language)}
}

// Code extracts the source of a code cell as a listing.
// Returns false for non-code cells and cells with blank source.
func (e *Extractor) Code(cell notebook.Cell) (Asset, bool) {
	if cell.Kind != notebook.KindCode || strings.TrimSpace(cell.Source) == "" {
		return Asset{}, false
	}

	e.codeSeq++
	a := Asset{
		Kind:      KindCode,
		Seq:       e.codeSeq,
		FileName:  fileName(e.codeSeq, e.codeExt),
		Data:      []byte(cell.Source),
		CellIndex: cell.Index,
		Lines:     strings.Count(strings.TrimRight(cell.Source, "\n"), "\n") + 1,
	}
	e.assets = append(e.assets, a)
	return a, true
}

// Images extracts every image-bearing output of a code cell, in output order.
// Outputs with unsupported mime types are skipped.
func (e *Extractor) Images(cell notebook.Cell) ([]Asset, error) {
	var out []Asset
	for _, o := range cell.Outputs {
		ext, ok := imageExtensions[o.MimeType]
		if !ok {
			continue
		}

		data, err := decode(o)
		if err != nil {
			return nil, &notebook.CellError{Index: cell.Index, Err: err}
		}

		e.imageSeq++
		a := Asset{
			Kind:      KindImage,
			Seq:       e.imageSeq,
			FileName:  fileName(e.imageSeq, ext),
			Data:      data,
			CellIndex: cell.Index,
			MimeType:  o.MimeType,
		}
		e.assets = append(e.assets, a)
		out = append(out, a)
	}
	return out, nil
}

// Assets returns every asset extracted so far, in extraction order.
func (e *Extractor) Assets() []Asset {
	return append([]Asset(nil), e.assets...)
}

func decode(o notebook.Output) ([]byte, error) {
	if textual[o.MimeType] {
		return []byte(o.Data), nil
	}
	// nbformat may wrap base64 payloads across lines.
	compact := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, o.Data)

	data, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, o.MimeType, err)
	}
	return data, nil
}

func fileName(seq int, ext string) string {
	return fmt.Sprintf("cell_%03d%s", seq, ext)
}
