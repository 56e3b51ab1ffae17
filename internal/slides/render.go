package slides

import (
	"fmt"
	"path"
	"strings"

	"github.com/alnah/go-nb2beamer/internal/latex"
)

// Default listing limits, in lines.
const (
	DefaultBreakLines = 50
	DefaultMaxLines   = 200
)

// RenderOptions controls how code listings are laid out.
type RenderOptions struct {
	// BreakLines is the listing length above which a frame allows frame breaks.
	BreakLines int
	// MaxLines is the listing length above which the listing is replaced by a
	// note pointing at the extracted file.
	MaxLines int
	// CodeDir and FigureDir are the asset directories referenced from the
	// generated markup.
	CodeDir   string
	FigureDir string
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.BreakLines <= 0 {
		o.BreakLines = DefaultBreakLines
	}
	if o.MaxLines <= 0 {
		o.MaxLines = DefaultMaxLines
	}
	if o.CodeDir == "" {
		o.CodeDir = "assets/code"
	}
	if o.FigureDir == "" {
		o.FigureDir = "assets/figures"
	}
	return o
}

// Render serializes the frames of a deck to LaTeX body markup.
func Render(frames []Frame, opts RenderOptions) string {
	opts = opts.withDefaults()

	var b strings.Builder
	for _, f := range frames {
		renderFrame(&b, f, opts)
	}
	return b.String()
}

func renderFrame(b *strings.Builder, f Frame, opts RenderOptions) {
	if f.NewSection && f.Section != "" {
		fmt.Fprintf(b, "\\section{%s}\n\n", f.Section)
	}
	if f.NewSubsection && f.Subsection != "" {
		fmt.Fprintf(b, "\\subsection{%s}\n\n", f.Subsection)
	}
	if f.HeadingsOnly {
		return
	}

	b.WriteString(`\begin{frame}`)
	if o := frameOptions(f, opts); len(o) > 0 {
		b.WriteString("[" + strings.Join(o, ",") + "]")
	}
	// An explicit title group, even when empty, stops beamer from reading a
	// body starting with [ or < as frame options.
	b.WriteString("{" + f.Title + "}\n")

	for i, blk := range f.Body {
		if i > 0 {
			b.WriteString("\n")
		}
		renderBlock(b, blk, opts)
	}

	b.WriteString("\\end{frame}\n\n")
}

func frameOptions(f Frame, opts RenderOptions) []string {
	if !f.HasCode() {
		return nil
	}
	o := []string{"fragile"}
	for _, blk := range f.Body {
		if blk.Kind == BlockCode && blk.Lines > opts.BreakLines && blk.Lines <= opts.MaxLines {
			o = append(o, "allowframebreaks")
			break
		}
	}
	return o
}

func renderBlock(b *strings.Builder, blk Block, opts RenderOptions) {
	switch blk.Kind {
	case BlockParagraph:
		b.WriteString(blk.Text)
		b.WriteString("\n")
	case BlockBullets:
		b.WriteString(renderList(blk.Items, blk.Ordered, ""))
		b.WriteString("\n")
	case BlockCode:
		if blk.Lines > opts.MaxLines {
			fmt.Fprintf(b, "\\textbf{Note:} code cell %d has %d lines and is not shown.\\\\\n", blk.CellIndex, blk.Lines)
			fmt.Fprintf(b, "The complete code is in \\texttt{%s}.\n", latex.Escape(path.Join(opts.CodeDir, blk.Ref)))
			return
		}
		fmt.Fprintf(b, "\\CODE{%s}\n", blk.Ref)
	case BlockImage:
		file := path.Join(opts.FigureDir, blk.Ref)
		b.WriteString("\\begin{center}\n")
		if blk.MimeType == "image/svg+xml" {
			fmt.Fprintf(b, "  \\includesvg[width=0.85\\textwidth,height=0.7\\textheight]{%s}\n", file)
		} else {
			fmt.Fprintf(b, "  \\includegraphics[width=0.85\\textwidth,height=0.7\\textheight,keepaspectratio]{%s}\n", file)
		}
		b.WriteString("\\end{center}\n")
	}
}

// renderList renders items as an itemize or enumerate environment.
// indent prefixes every line, for lists nested in an item.
func renderList(items []string, ordered bool, indent string) string {
	env := "itemize"
	if ordered {
		env = "enumerate"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\\begin{%s}\n", indent, env)
	for _, it := range items {
		fmt.Fprintf(&b, "%s  \\item %s\n", indent, strings.ReplaceAll(it, "\n", "\n"+indent+"  "))
	}
	fmt.Fprintf(&b, "%s\\end{%s}", indent, env)
	return b.String()
}
