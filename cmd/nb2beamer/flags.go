package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags override the title block read from the notebook.
type documentFlags struct {
	title     string
	subtitle  string
	author    string
	institute string
	date      string
}

// assetFlags holds template set and logo lookup flags.
type assetFlags struct {
	template  string // Template set name
	assetPath string // Custom asset directory
	logoDir   string // Directory searched for theme logos first
}

// codeFlags holds listing limits. Zero keeps the config or default value.
type codeFlags struct {
	breakLines int
	maxLines   int
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common   commonFlags
	output   string
	theme    string
	document documentFlags
	assets   assetFlags
	code     codeFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed output")
}

func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "presentation title (\"\" = from the title cell)")
	fs.StringVar(&f.subtitle, "subtitle", "", "presentation subtitle")
	fs.StringVar(&f.author, "author", "", "author name")
	fs.StringVar(&f.institute, "institute", "", "institute line (\"\" = theme institution)")
	fs.StringVar(&f.date, "date", "", "date: \"today\", \"auto\", \"auto:FORMAT\", or literal")
}

func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.template, "template", "", "template set name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.logoDir, "logo-dir", "", "directory searched for theme logos")
}

func addCodeFlags(fs *flag.FlagSet, f *codeFlags) {
	fs.IntVar(&f.breakLines, "code-break-lines", 0, "listing lines above which frames break (0 = 50)")
	fs.IntVar(&f.maxLines, "code-max-lines", 0, "listing lines above which a note replaces the listing (0 = 200)")
}

// newGenerateFlagSet registers the generate command flags into f.
// Usage goes to stderr on parse errors and -h.
func newGenerateFlagSet(f *generateFlags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default \"output\")")
	fs.StringVarP(&f.theme, "theme", "t", "", "theme key (default \"cu\")")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addAssetFlags(fs, &f.assets)
	addCodeFlags(fs, &f.code)

	fs.Usage = func() { printGenerateUsage(stderr) }
	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := newGenerateFlagSet(f, stderr)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
