package nb2beamer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/alnah/go-nb2beamer/internal/assets"
	"github.com/alnah/go-nb2beamer/internal/binder"
	"github.com/alnah/go-nb2beamer/internal/dateutil"
	"github.com/alnah/go-nb2beamer/internal/extract"
	"github.com/alnah/go-nb2beamer/internal/fileutil"
	"github.com/alnah/go-nb2beamer/internal/latex"
	"github.com/alnah/go-nb2beamer/internal/notebook"
	"github.com/alnah/go-nb2beamer/internal/slides"
	"github.com/alnah/go-nb2beamer/internal/theme"
)

// LogoDir is the output directory holding the theme logo.
const LogoDir = "assets/logos"

// Compile-time interface implementation checks.
var (
	_ AssetLoader = (*assets.AssetResolver)(nil)
	_ AssetLoader = (*assets.EmbeddedLoader)(nil)
)

// Generator turns notebooks into Beamer presentation trees.
// Create with NewGenerator(); a Generator is safe for concurrent use as long
// as concurrent runs target different output directories.
type Generator struct {
	themes       *theme.Registry
	extraThemes  []Theme
	loader       AssetLoader
	assetPath    string
	logoDir      string
	templateName string
	templateSet  *TemplateSet
	render       slides.RenderOptions
	now          func() time.Time
}

// NewGenerator creates a Generator with the built-in themes and the embedded
// template set. Use options to customize behavior.
// Returns ErrInvalidTheme for unusable custom themes and ErrInvalidAssetPath
// for unreadable asset directories.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		templateName: DefaultTemplateSet,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	themes, err := theme.Builtin().With(g.extraThemes...)
	if err != nil {
		return nil, err
	}
	g.themes = themes

	if g.loader == nil {
		loader, err := NewAssetLoader(g.assetPath, g.logoDir)
		if err != nil {
			return nil, err
		}
		g.loader = loader
	}

	if b, m := g.render.BreakLines, g.render.MaxLines; b > 0 && m > 0 && b > m {
		return nil, fmt.Errorf("%w: break threshold %d exceeds max listing lines %d", ErrInvalidInput, b, m)
	}
	g.render.CodeDir = extract.CodeDir
	g.render.FigureDir = extract.FigureDir

	return g, nil
}

// Generate builds a presentation with a default Generator.
// An empty themeKey selects DefaultTheme.
func Generate(ctx context.Context, notebookPath, themeKey string) (*Result, error) {
	g, err := NewGenerator()
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, Input{Notebook: notebookPath, Theme: themeKey})
}

// Themes returns the registered themes sorted by key.
func (g *Generator) Themes() []Theme {
	keys := g.themes.Keys()
	themes := make([]Theme, 0, len(keys))
	for _, k := range keys {
		t, _ := g.themes.Lookup(k)
		themes = append(themes, t)
	}
	return themes
}

// Generate converts input.Notebook and writes the output tree.
// Everything is produced in memory first; the tree is written only when the
// whole presentation bound successfully, and an existing tree at the output
// directory is replaced. The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Notebook == "" {
		return nil, fmt.Errorf("%w: notebook path is required", ErrInvalidInput)
	}
	key := input.Theme
	if key == "" {
		key = DefaultTheme
	}
	root := input.OutputDir
	if root == "" {
		root = DefaultOutputDir
	}
	if fileutil.Within(root, input.Notebook) {
		return nil, fmt.Errorf("%w: %w: notebook %s is inside %s", ErrAssetWriteFailure, ErrOutputNotOwned, input.Notebook, root)
	}

	th, err := g.themes.Lookup(key)
	if err != nil {
		return nil, err
	}

	ts, err := g.loadTemplateSet()
	if err != nil {
		return nil, err
	}

	date, err := dateutil.Resolve(input.Date, g.now())
	if err != nil {
		return nil, err
	}

	nb, err := notebook.Load(input.Notebook)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deck, extracted, err := convert(nb)
	if err != nil {
		return nil, err
	}
	md := mergeMetadata(deck.Metadata, input, th)
	content := slides.Render(deck.Frames, g.render)

	logoName, logo, synthesized, err := g.resolveLogo(th)
	if err != nil {
		return nil, err
	}

	doc, err := binder.Bind(ts.Document, placeholderMap(th, md, logoName, date, content))
	if err != nil {
		return nil, fmt.Errorf("binding template set %q: %w", ts.Name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Root:            filepath.Clean(root),
		Theme:           th.Key,
		TemplateSet:     ts.Name,
		Title:           md.Title,
		Frames:          deck.FrameCount(),
		Logo:            path.Join(LogoDir, logoName),
		LogoSynthesized: synthesized,
	}

	files := []fileutil.File{
		{Path: assets.DocumentFile, Data: []byte(doc)},
		{Path: assets.UnixScriptFile, Data: []byte(ts.UnixScript), Mode: 0o755},
		{Path: assets.WindowsScriptFile, Data: []byte(ts.WindowsScript)},
		{Path: extract.CodeDir, Mode: os.ModeDir | 0o755},
		{Path: extract.FigureDir, Mode: os.ModeDir | 0o755},
		{Path: res.Logo, Data: logo},
	}
	for _, a := range extracted {
		files = append(files, fileutil.File{Path: a.Path(), Data: a.Data})
		if a.Kind == extract.KindCode {
			res.CodeFiles = append(res.CodeFiles, a.Path())
		} else {
			res.Figures = append(res.Figures, a.Path())
		}
	}

	if err := fileutil.WriteTree(root, files); err != nil {
		return nil, err
	}
	return res, nil
}

// loadTemplateSet returns the configured set, loading it by name if needed.
func (g *Generator) loadTemplateSet() (*TemplateSet, error) {
	if g.templateSet != nil {
		return g.templateSet, nil
	}
	ts, err := g.loader.LoadTemplateSet(g.templateName)
	if err != nil {
		return nil, fmt.Errorf("loading template set %q: %w", g.templateName, convertAssetError(err))
	}
	return ts, nil
}

// resolveLogo loads the theme logo, synthesizing a placeholder SVG when no
// loader has the file.
func (g *Generator) resolveLogo(th Theme) (name string, data []byte, synthesized bool, err error) {
	name = filepath.Base(th.Logo)
	data, err = g.loader.LoadLogo(name)
	switch {
	case err == nil:
		return name, data, false, nil
	case errors.Is(err, assets.ErrLogoNotFound), errors.Is(err, fs.ErrNotExist):
		return theme.PlaceholderLogoName(th), theme.PlaceholderLogo(th), true, nil
	default:
		return "", nil, false, fmt.Errorf("loading logo for theme %q: %w", th.Key, convertAssetError(err))
	}
}

// convert feeds cells in document order to the extractor and the frame
// builder. Raw cells are not rendered.
func convert(nb *notebook.Notebook) (slides.Deck, []extract.Asset, error) {
	ex := extract.New(nb)
	b := slides.NewBuilder()

	for _, cell := range nb.Cells {
		switch cell.Kind {
		case notebook.KindMarkdown:
			b.AddMarkdown(cell.Source)
		case notebook.KindCode:
			var blocks []slides.Block
			if a, ok := ex.Code(cell); ok {
				blocks = append(blocks, slides.CodeRef(a.FileName, a.Lines, cell.Index))
			}
			images, err := ex.Images(cell)
			if err != nil {
				return slides.Deck{}, nil, err
			}
			for _, img := range images {
				blocks = append(blocks, slides.ImageRef(img.FileName, img.MimeType, cell.Index))
			}
			b.Attach(blocks...)
		case notebook.KindRaw:
		}
	}

	return b.Deck(), ex.Assets(), nil
}

// mergeMetadata applies Input overrides, then defaults, to the title block
// read from the notebook.
func mergeMetadata(md slides.Metadata, input Input, th Theme) slides.Metadata {
	pick := func(override, found, fallback string) string {
		switch {
		case override != "":
			return latex.Escape(override)
		case found != "":
			return found
		default:
			return latex.Escape(fallback)
		}
	}
	return slides.Metadata{
		Title:     pick(input.Title, md.Title, DefaultTitle),
		Subtitle:  pick(input.Subtitle, md.Subtitle, ""),
		Author:    pick(input.Author, md.Author, DefaultAuthor),
		Institute: pick(input.Institute, md.Institute, th.Name),
	}
}
