// Package slides converts notebook content into Beamer frames.
//
// A Builder consumes cells in document order. Markdown cells are parsed with
// goldmark and split on headings: level 1 starts a section, level 2 a
// subsection, level 3 a frame. Code cells and their images are attached to the
// frame currently open, or to a synthetic untitled frame when none is open.
// The first markdown cell doubles as the title cell when it opens with a
// level-1 heading.
//
// All text stored in a Deck is LaTeX: literal text has already been escaped
// and inline markup translated to commands.
package slides

// BlockKind tags the variant held by a Block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota + 1
	BlockBullets
	BlockCode
	BlockImage
)

// Block is one element of a frame body.
type Block struct {
	Kind BlockKind

	Text    string   // BlockParagraph
	Items   []string // BlockBullets
	Ordered bool     // BlockBullets rendered as enumerate

	Ref       string // BlockCode, BlockImage: asset file name, e.g. cell_001.py
	Lines     int    // BlockCode
	MimeType  string // BlockImage
	CellIndex int    // BlockCode, BlockImage
}

// CodeRef builds a code-reference block for an extracted listing.
func CodeRef(fileName string, lines, cellIndex int) Block {
	return Block{Kind: BlockCode, Ref: fileName, Lines: lines, CellIndex: cellIndex}
}

// ImageRef builds an image-reference block for an extracted figure.
func ImageRef(fileName, mimeType string, cellIndex int) Block {
	return Block{Kind: BlockImage, Ref: fileName, MimeType: mimeType, CellIndex: cellIndex}
}

// Frame is one slide.
type Frame struct {
	Title      string // empty for untitled frames
	Section    string
	Subsection string
	Body       []Block

	// NewSection and NewSubsection mark the first frame after a heading,
	// where the serializer emits \section or \subsection.
	NewSection    bool
	NewSubsection bool

	// HeadingsOnly marks a record for headings that no frame followed:
	// only the \section and \subsection lines are emitted.
	HeadingsOnly bool
}

// HasCode reports whether any block references a code listing.
func (f Frame) HasCode() bool {
	for _, b := range f.Body {
		if b.Kind == BlockCode {
			return true
		}
	}
	return false
}

// FrameCount returns the number of slides, skipping heading-only records.
func (d Deck) FrameCount() int {
	n := 0
	for _, f := range d.Frames {
		if !f.HeadingsOnly {
			n++
		}
	}
	return n
}

// Metadata is the presentation title block. Empty fields were not found.
type Metadata struct {
	Title     string
	Subtitle  string
	Author    string
	Institute string
}

// Deck is the converted notebook.
type Deck struct {
	Metadata Metadata
	Frames   []Frame
}
