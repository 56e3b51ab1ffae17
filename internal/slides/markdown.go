package slides

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/alnah/go-nb2beamer/internal/latex"
)

// convertBlock translates a non-heading block node into a body block.
// HTML blocks and unknown nodes yield nothing.
func convertBlock(src []byte, n ast.Node) (Block, bool) {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		text := renderInline(src, n)
		if text == "" {
			return Block{}, false
		}
		return Block{Kind: BlockParagraph, Text: text}, true
	case *ast.List:
		return Block{Kind: BlockBullets, Items: listItems(src, n), Ordered: n.IsOrdered()}, true
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return codeParagraph(src, n)
	case *ast.Blockquote:
		var parts []string
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if blk, ok := convertBlock(src, c); ok && blk.Kind == BlockParagraph {
				parts = append(parts, blk.Text)
			}
		}
		if len(parts) == 0 {
			return Block{}, false
		}
		return Block{Kind: BlockParagraph, Text: "\\begin{quote}\n" + strings.Join(parts, "\n\n") + "\n\\end{quote}"}, true
	case *east.Table:
		return Block{Kind: BlockParagraph, Text: table(src, n)}, true
	}
	return Block{}, false
}

// listItems renders each item; nested lists are rendered in place.
func listItems(src []byte, list *ast.List) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var parts []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.List:
				parts = append(parts, renderList(listItems(src, c), c.IsOrdered(), "  "))
			default:
				if blk, ok := convertBlock(src, c); ok && blk.Kind == BlockParagraph {
					parts = append(parts, blk.Text)
				}
			}
		}
		items = append(items, strings.Join(parts, "\n"))
	}
	return items
}

// codeParagraph renders a markdown code block as monospaced lines.
func codeParagraph(src []byte, n ast.Node) (Block, bool) {
	lines := n.Lines()
	if lines.Len() == 0 {
		return Block{}, false
	}
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(src)), "\n")
		out = append(out, `\texttt{`+latex.Escape(line)+`}`)
	}
	return Block{Kind: BlockParagraph, Text: strings.Join(out, "\\\\\n")}, true
}

func table(src []byte, t *east.Table) string {
	var b strings.Builder
	b.WriteString(`\begin{tabular}{`)
	for _, a := range t.Alignments {
		switch a {
		case east.AlignCenter:
			b.WriteByte('c')
		case east.AlignRight:
			b.WriteByte('r')
		default:
			b.WriteByte('l')
		}
	}
	b.WriteString("}\n")

	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, renderInline(src, cell))
		}
		b.WriteString(strings.Join(cells, " & "))
		b.WriteString(" \\\\\n")
		if _, ok := row.(*east.TableHeader); ok {
			b.WriteString("\\hline\n")
		}
	}
	b.WriteString(`\end{tabular}`)
	return b.String()
}
