// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// LookPath finds executables on PATH. Replaced in tests.
var LookPath = exec.LookPath

// compilers are the LaTeX engines the generated compile scripts know.
var compilers = []string{"pdflatex", "tectonic"}

// ForMissingCompiler returns a hint when no LaTeX engine the compile scripts
// use is on PATH, and "" otherwise.
func ForMissingCompiler() string {
	for _, c := range compilers {
		if _, err := LookPath(c); err == nil {
			return ""
		}
	}
	return format("no LaTeX compiler found; install TeX Live (pdflatex) or tectonic to build the PDF")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/nb2beamer/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/nb2beamer/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownTheme lists the theme keys that can be used.
func ForUnknownTheme(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; define more under themes: in a config file")
}

// ForTemplateNotFound explains where custom template sets are looked up.
func ForTemplateNotFound(assetPath string) string {
	if assetPath == "" {
		return format("only the embedded \"default\" template set exists; use --asset-path to add more")
	}
	return format("expected " + filepath.Join(assetPath, "templates", "<name>") + " with presentation.tex and the compile scripts")
}

// ForUnboundPlaceholder lists the tokens the generator provides.
func ForUnboundPlaceholder(known []string) string {
	if len(known) == 0 {
		return ""
	}
	return format("templates may use: " + strings.Join(known, ", "))
}

// ForMalformedNotebook returns hints for notebook decoding errors.
func ForMalformedNotebook() string {
	return format("expected a Jupyter notebook (.ipynb, nbformat 4 JSON); re-save it from Jupyter")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForOutputNotOwned returns hints for output directories nb2beamer did not create.
func ForOutputNotOwned() string {
	return format("pass -o with a new or empty directory; only directories written by nb2beamer are replaced")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
