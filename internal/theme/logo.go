package theme

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// minorWords are skipped when building initials.
var minorWords = map[string]bool{
	"of": true, "the": true, "and": true, "at": true, "for": true, "in": true, "de": true,
}

// Initials returns the upper-case initials of an institution name,
// skipping minor words: "University of Colorado Boulder" -> "UCB".
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		if minorWords[strings.ToLower(word)] {
			continue
		}
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// PlaceholderLogoName returns the file name used for a synthesized logo.
func PlaceholderLogoName(t Theme) string {
	base := filepath.Base(t.Logo)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".svg"
}

// PlaceholderLogo renders a minimal SVG logo showing the institution initials
// in the theme's primary color.
func PlaceholderLogo(t Theme) []byte {
	c := t.Primary
	initials := xmlEscaper.Replace(Initials(t.Name))
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="300" height="300" viewBox="0 0 300 300" xmlns="http://www.w3.org/2000/svg">
  <rect width="300" height="300" fill="rgb(%[1]d,%[2]d,%[3]d)" opacity="0.1"/>
  <text x="150" y="170" font-family="Arial, sans-serif" font-size="96" font-weight="bold"
        text-anchor="middle" fill="rgb(%[1]d,%[2]d,%[3]d)">%[4]s</text>
</svg>
`, c.R, c.G, c.B, initials))
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
