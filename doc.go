// Package nb2beamer converts Jupyter notebooks into LaTeX Beamer presentations.
//
// # Quick Start
//
// Generate a presentation tree with the default theme and template set:
//
//	result, err := nb2beamer.Generate(ctx, "lecture.ipynb", "stanford")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.Root)
//
// The output root holds presentation.tex, the two compile scripts, and an
// assets/ directory with the theme logo, extracted code listings and figures.
// Compiling the document to PDF is left to the scripts (pdflatex or tectonic).
//
// # Generation Pipeline
//
// A run goes through these stages, all in memory:
//
//  1. Notebook loading and validation (nbformat 4 JSON)
//  2. Asset extraction (code cell sources, image outputs)
//  3. Frame building from markdown cells via Goldmark (GFM)
//  4. Serialization of frames to Beamer LaTeX
//  5. Placeholder binding into the template set
//
// The output tree is written only after every stage succeeded; a failing run
// leaves any previous tree in place.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := nb2beamer.NewGenerator(
//	    nb2beamer.WithLogoDir("/path/to/logos"),
//	    nb2beamer.WithCodeLimits(40, 150),
//	    nb2beamer.WithThemes(nb2beamer.Theme{Key: "acme", Name: "Acme Institute", ...}),
//	)
//
// Per-run parameters are passed via Input:
//
//	result, err := gen.Generate(ctx, nb2beamer.Input{
//	    Notebook:  "lecture.ipynb",
//	    Theme:     "mit",
//	    OutputDir: "build/lecture",
//	    Author:    "Jane Doe",
//	    Date:      "auto:iso",
//	})
//
// # Custom Assets
//
// Override the built-in template set and supply logos using AssetLoader:
//
//	loader, err := nb2beamer.NewAssetLoader("/path/to/assets", "")
//	gen, err := nb2beamer.NewGenerator(nb2beamer.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── logos/
//	│   └── stanford_logo.png
//	└── templates/
//	    └── custom/
//	        ├── presentation.tex
//	        ├── compile_presentation.sh
//	        └── compile_presentation.bat
//
// A template document must declare only the tokens returned by Placeholders.
// When no logo file is found, a placeholder SVG built from the institution's
// initials is written instead.
package nb2beamer
