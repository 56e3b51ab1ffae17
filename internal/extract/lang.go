package extract

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// fallbackExtension is used when the notebook language is unknown.
const fallbackExtension = ".txt"

// validExtension matches declared extensions safe to embed in \CODE{}.
var validExtension = regexp.MustCompile(`^\.?[A-Za-z0-9_+-]+$`)

// CodeExtension picks the file extension for code listings.
// The notebook's declared extension wins when it is a plain token; otherwise
// the chroma lexer registered for the kernel language supplies one.
func CodeExtension(declared, language string) string {
	if validExtension.MatchString(declared) {
		if !strings.HasPrefix(declared, ".") {
			declared = "." + declared
		}
		return declared
	}
	if language == "" {
		return fallbackExtension
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return fallbackExtension
	}

	var first string
	for _, pattern := range lexer.Config().Filenames {
		if !strings.HasPrefix(pattern, "*.") || strings.ContainsAny(pattern[2:], "*?[") {
			continue
		}
		ext := filepath.Ext(pattern)
		if strings.EqualFold(ext, "."+language) {
			return strings.ToLower(ext)
		}
		if first == "" {
			first = ext
		}
	}
	if first == "" {
		return fallbackExtension
	}
	return first
}
