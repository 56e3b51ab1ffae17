package nb2beamer

import (
	"time"

	"github.com/alnah/go-nb2beamer/internal/assets"
	"github.com/alnah/go-nb2beamer/internal/slides"
	"github.com/alnah/go-nb2beamer/internal/theme"
)

// Theme is an institutional color and logo identity.
type Theme = theme.Theme

// RGB is a color triple with components in 0-255.
type RGB = theme.RGB

// Defaults applied when Input or options leave a field empty.
const (
	DefaultTheme       = theme.DefaultKey
	DefaultTemplateSet = assets.DefaultTemplateSetName
	DefaultOutputDir   = "output"
	DefaultBreakLines  = slides.DefaultBreakLines
	DefaultMaxLines    = slides.DefaultMaxLines
)

// Fallback title block values, used when neither the notebook nor Input
// provides one. The institute falls back to the theme's institution name.
const (
	DefaultTitle  = "Presentation"
	DefaultAuthor = "Author"
)

// Input contains generation parameters.
// Title block fields are plain text and are escaped for LaTeX; they override
// what the notebook's title cell provides.
type Input struct {
	Notebook  string // Path to the .ipynb file (required)
	Theme     string // Theme key (default: cu)
	OutputDir string // Output root (default: "output")

	Title     string
	Subtitle  string
	Author    string
	Institute string
	Date      string // "", "today", "auto", "auto:FORMAT", or literal text
}

// Result describes a written output tree. Paths other than Root are
// slash-separated and relative to Root.
type Result struct {
	Root            string
	Theme           string
	TemplateSet     string
	Title           string // LaTeX title as bound into the document
	Frames          int
	CodeFiles       []string
	Figures         []string
	Logo            string
	LogoSynthesized bool // true when no logo file was found and one was generated
}

// Option configures a Generator.
type Option func(*Generator)

// WithThemes registers additional themes. A theme whose key matches a
// built-in theme replaces it.
func WithThemes(themes ...Theme) Option {
	return func(g *Generator) {
		g.extraThemes = append(g.extraThemes, themes...)
	}
}

// WithAssetPath sets a custom asset directory, searched before the
// embedded assets. Ignored when WithAssetLoader is used.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.assetPath = path
	}
}

// WithLogoDir sets a directory searched for theme logos first.
// Ignored when WithAssetLoader is used.
func WithLogoDir(dir string) Option {
	return func(g *Generator) {
		g.logoDir = dir
	}
}

// WithAssetLoader sets a custom asset loader.
func WithAssetLoader(loader AssetLoader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithTemplate selects a template set by name from the asset loader.
func WithTemplate(name string) Option {
	return func(g *Generator) {
		g.templateName = name
	}
}

// WithTemplateSet uses ts directly instead of loading a set by name.
func WithTemplateSet(ts *TemplateSet) Option {
	return func(g *Generator) {
		g.templateSet = ts
	}
}

// WithCodeLimits sets the listing lengths, in lines, above which a frame
// allows frame breaks and above which the listing is replaced by a note.
// Zero keeps a default. Panics on negative values (programmer error).
func WithCodeLimits(breakLines, maxLines int) Option {
	if breakLines < 0 || maxLines < 0 {
		panic("nb2beamer: WithCodeLimits values must not be negative")
	}
	return func(g *Generator) {
		g.render.BreakLines = breakLines
		g.render.MaxLines = maxLines
	}
}

// WithClock sets the time source used to resolve "auto" dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}
