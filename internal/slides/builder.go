package slides

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Builder accumulates frames from cells fed in document order.
// It is not safe for concurrent use.
type Builder struct {
	md   goldmark.Markdown
	deck Deck

	seenMarkdown bool

	section           string
	subsection        string
	pendingSection    bool
	pendingSubsection bool

	open int // index of the open frame in deck.Frames, -1 when none
}

// NewBuilder creates a Builder with CommonMark and GFM parsing.
func NewBuilder() *Builder {
	return &Builder{
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
		open: -1,
	}
}

// AddMarkdown converts a markdown cell.
func (b *Builder) AddMarkdown(source string) {
	src := []byte(source)
	doc := b.md.Parser().Parse(text.NewReader(src))

	first := doc.FirstChild()
	if !b.seenMarkdown {
		b.seenMarkdown = true
		first = b.titleCell(src, first)
	}

	for n := first; n != nil; n = n.NextSibling() {
		b.block(src, n)
	}
}

// Attach appends blocks produced by a code cell to the open frame,
// creating an untitled frame when none is open.
func (b *Builder) Attach(blocks ...Block) {
	for _, blk := range blocks {
		b.add(blk)
	}
}

// Deck returns the converted deck. The builder must not be used afterwards.
func (b *Builder) Deck() Deck {
	b.flushHeadings()
	return b.deck
}

func (b *Builder) block(src []byte, n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		b.heading(n.Level, renderInline(src, n))
	case *ast.ThematicBreak:
		b.closeFrame()
	default:
		if blk, ok := convertBlock(src, n); ok {
			b.add(blk)
		}
	}
}

func (b *Builder) heading(level int, title string) {
	switch {
	case level == 1:
		b.closeFrame()
		b.flushHeadings()
		b.section, b.subsection = title, ""
		b.pendingSection, b.pendingSubsection = true, false
	case level == 2:
		b.closeFrame()
		if b.pendingSubsection {
			b.flushHeadings()
		}
		b.subsection = title
		b.pendingSubsection = true
	case level == 3:
		b.startFrame(title)
	case level == 4:
		b.add(Block{Kind: BlockParagraph, Text: `\textbf{` + title + `}`})
	default:
		b.add(Block{Kind: BlockParagraph, Text: `\textit{` + title + `}`})
	}
}

func (b *Builder) startFrame(title string) {
	b.deck.Frames = append(b.deck.Frames, Frame{
		Title:         title,
		Section:       b.section,
		Subsection:    b.subsection,
		NewSection:    b.pendingSection,
		NewSubsection: b.pendingSubsection,
	})
	b.pendingSection, b.pendingSubsection = false, false
	b.open = len(b.deck.Frames) - 1
}

// flushHeadings records pending headings that no frame has claimed.
func (b *Builder) flushHeadings() {
	if !b.pendingSection && !b.pendingSubsection {
		return
	}
	b.deck.Frames = append(b.deck.Frames, Frame{
		Section:       b.section,
		Subsection:    b.subsection,
		NewSection:    b.pendingSection,
		NewSubsection: b.pendingSubsection,
		HeadingsOnly:  true,
	})
	b.pendingSection, b.pendingSubsection = false, false
}

func (b *Builder) closeFrame() {
	b.open = -1
}

func (b *Builder) add(blk Block) {
	if b.open < 0 {
		b.startFrame("")
	}
	f := &b.deck.Frames[b.open]
	f.Body = append(f.Body, blk)
}
