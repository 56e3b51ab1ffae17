// Package latex escapes text for LaTeX source documents.
package latex

import "strings"

// replacements maps each reserved LaTeX character to its safe form.
// No replacement contains a character that needs a second pass: the braces
// in \textbackslash{} and friends are emitted by the escaper itself.
var replacements = []string{
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`#`, `\#`,
	`$`, `\$`,
	`%`, `\%`,
	`&`, `\&`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
}

// escaper is safe for concurrent use; strings.Replacer scans input once.
var escaper = strings.NewReplacer(replacements...)

// Reserved lists the characters Escape rewrites.
const Reserved = "\\{}#$%&_~^"

// Escape returns s with every reserved character replaced.
// Text without reserved characters is returned unchanged.
func Escape(s string) string {
	if !strings.ContainsAny(s, Reserved) {
		return s
	}
	return escaper.Replace(s)
}

// EscapeURL escapes a URL for the first argument of \href or \url.
// Frame bodies are read as macro arguments, so hyperref sees characters
// with their catcodes already fixed. Characters that would act as markup
// are percent-encoded, and the percent sign itself is written as \%, which
// hyperref turns back into a literal %.
func EscapeURL(s string) string {
	return urlEscaper.Replace(s)
}

var urlEscaper = strings.NewReplacer(
	`\`, `/`,
	`#`, `\#`,
	`%`, `\%`,
	`{`, `\%7B`,
	`}`, `\%7D`,
	`&`, `\%26`,
	`$`, `\%24`,
	`^`, `\%5E`,
	`~`, `\%7E`,
	`_`, `\%5F`,
)
