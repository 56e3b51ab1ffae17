package slides

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/alnah/go-nb2beamer/internal/latex"
)

// inlineRenderer translates goldmark inline nodes into LaTeX.
// Literal text is escaped before commands wrap it, so commands are never
// escaped themselves.
type inlineRenderer struct {
	src []byte
	b   strings.Builder
}

// renderInline renders the inline children of n.
// Soft line breaks become "\n", hard line breaks "\\" followed by "\n".
func renderInline(src []byte, n ast.Node) string {
	r := &inlineRenderer{src: src}
	r.children(n)
	return strings.TrimSpace(r.b.String())
}

func (r *inlineRenderer) children(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.node(c)
	}
}

func (r *inlineRenderer) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		r.b.WriteString(latex.Escape(string(n.Segment.Value(r.src))))
		switch {
		case n.HardLineBreak():
			r.b.WriteString("\\\\\n")
		case n.SoftLineBreak():
			r.b.WriteString("\n")
		}
	case *ast.String:
		r.b.WriteString(latex.Escape(string(n.Value)))
	case *ast.Emphasis:
		if n.Level >= 2 {
			r.wrap(`\textbf{`, n)
		} else {
			r.wrap(`\textit{`, n)
		}
	case *ast.CodeSpan:
		r.b.WriteString(`\texttt{`)
		r.b.WriteString(latex.Escape(plainText(r.src, n)))
		r.b.WriteString("}")
	case *ast.Link:
		r.b.WriteString(`\href{`)
		r.b.WriteString(latex.EscapeURL(string(n.Destination)))
		r.b.WriteString("}{")
		r.children(n)
		r.b.WriteString("}")
	case *ast.AutoLink:
		r.b.WriteString(`\url{`)
		r.b.WriteString(latex.EscapeURL(string(n.URL(r.src))))
		r.b.WriteString("}")
	case *ast.Image:
		// Markdown images point at files outside the notebook; keep the alt text.
		r.children(n)
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			r.b.WriteString(latex.Escape(string(seg.Value(r.src))))
		}
	case *east.TaskCheckBox:
		if n.IsChecked {
			r.b.WriteString(`$\boxtimes$ `)
		} else {
			r.b.WriteString(`$\square$ `)
		}
	default:
		// Strikethrough and unknown inline containers keep their text.
		r.children(n)
	}
}

func (r *inlineRenderer) wrap(open string, n ast.Node) {
	r.b.WriteString(open)
	r.children(n)
	r.b.WriteString("}")
}

// plainText concatenates the literal text below n without markup.
func plainText(src []byte, n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
