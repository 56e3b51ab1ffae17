package slides

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

var (
	authorPrefixes    = []string{"author:", "authors:", "by:", "by "}
	institutePrefixes = []string{"institute:", "institution:", "affiliation:", "university:"}
)

// titleCell reads metadata from the leading blocks of the first markdown
// cell: a level-1 heading (title), an optional level-2 heading right after it
// (subtitle) and an optional paragraph of author/institute lines.
// It returns the first node that was not consumed.
func (b *Builder) titleCell(src []byte, n ast.Node) ast.Node {
	h, ok := n.(*ast.Heading)
	if !ok || h.Level != 1 {
		return n
	}
	md := &b.deck.Metadata
	md.Title = renderInline(src, h)
	n = n.NextSibling()

	if h2, ok := n.(*ast.Heading); ok && h2.Level == 2 {
		md.Subtitle = renderInline(src, h2)
		n = n.NextSibling()
	}

	if p, ok := n.(*ast.Paragraph); ok {
		if author, institute, ok := authorLines(renderInline(src, p)); ok {
			md.Author, md.Institute = author, institute
			n = n.NextSibling()
		}
	}
	return n
}

// authorLines splits a rendered paragraph into author and institute.
// Prefixed lines ("Author: ...", "Institute: ...") go to their field;
// remaining lines fill author, then institute. A paragraph with more
// unprefixed lines than free fields is regular content.
func authorLines(text string) (author, institute string, ok bool) {
	var rest []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), `\\`))
		if line == "" {
			continue
		}
		if v, found := cutPrefixFold(line, authorPrefixes); found {
			author = v
			continue
		}
		if v, found := cutPrefixFold(line, institutePrefixes); found {
			institute = v
			continue
		}
		rest = append(rest, line)
	}

	for _, line := range rest {
		switch {
		case author == "":
			author = line
		case institute == "":
			institute = line
		default:
			return "", "", false
		}
	}
	return author, institute, author != "" || institute != ""
}

func cutPrefixFold(s string, prefixes []string) (string, bool) {
	for _, p := range prefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return strings.TrimSpace(s[len(p):]), true
		}
	}
	return "", false
}
