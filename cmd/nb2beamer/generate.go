package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-nb2beamer"
	"github.com/alnah/go-nb2beamer/internal/config"
	"github.com/alnah/go-nb2beamer/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no notebook specified")
	ErrTooManyArgs = errors.New("too many arguments")
)

// runGenerateCmd parses flags, runs a generation and reports the outcome.
func runGenerateCmd(args []string, env *Environment) int {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runGenerate(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runGenerate resolves configuration and generates one presentation.
func runGenerate(ctx context.Context, positional []string, flags *generateFlags, env *Environment) error {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	notebookPath, err := resolvePositional(positional, cfg)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	// Flags and env bypass LoadConfig validation.
	if err := cfg.Validate(); err != nil {
		return err
	}

	custom, err := cfg.CustomThemes()
	if err != nil {
		return err
	}

	gen, err := nb2beamer.NewGenerator(
		nb2beamer.WithThemes(custom...),
		nb2beamer.WithAssetPath(cfg.Assets.BasePath),
		nb2beamer.WithLogoDir(cfg.Assets.LogoDir),
		nb2beamer.WithTemplate(templateName(cfg)),
		nb2beamer.WithCodeLimits(cfg.Code.BreakLines, cfg.Code.MaxLines),
		nb2beamer.WithClock(env.Now),
	)
	if err != nil {
		return err
	}

	start := env.Now()
	result, err := gen.Generate(ctx, nb2beamer.Input{
		Notebook:  notebookPath,
		Theme:     cfg.Theme,
		OutputDir: cfg.Output.Dir,
		Title:     cfg.Document.Title,
		Subtitle:  cfg.Document.Subtitle,
		Author:    cfg.Document.Author,
		Institute: cfg.Document.Institute,
		Date:      cfg.Document.Date,
	})
	if err != nil {
		return withHint(err, hintFor(err, cfg, gen))
	}

	printResult(env, result, flags.common, env.Now().Sub(start))
	return nil
}

// loadConfig loads the config named by the flag, else by NB2BEAMER_CONFIG,
// else returns defaults.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, withHint(fmt.Errorf("loading config: %w", err), hintFor(err, nil, nil))
	}
	return cfg, nil
}

// resolvePositional reads "<notebook> [theme]". A positional theme acts like
// --theme given before it, so an explicit flag still wins.
func resolvePositional(args []string, cfg *config.Config) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoInput
	case 1:
	case 2:
		cfg.Theme = args[1]
	default:
		return "", fmt.Errorf("%w: want <notebook> [theme], got %d arguments", ErrTooManyArgs, len(args))
	}
	return args[0], nil
}

// mergeFlags applies explicitly set flags over cfg (CLI wins).
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Theme, flags.theme)
	set(&cfg.Template, flags.assets.template)
	set(&cfg.Output.Dir, flags.output)
	set(&cfg.Assets.BasePath, flags.assets.assetPath)
	set(&cfg.Assets.LogoDir, flags.assets.logoDir)
	set(&cfg.Document.Title, flags.document.title)
	set(&cfg.Document.Subtitle, flags.document.subtitle)
	set(&cfg.Document.Author, flags.document.author)
	set(&cfg.Document.Institute, flags.document.institute)
	set(&cfg.Document.Date, flags.document.date)

	if flags.code.breakLines != 0 {
		cfg.Code.BreakLines = flags.code.breakLines
	}
	if flags.code.maxLines != 0 {
		cfg.Code.MaxLines = flags.code.maxLines
	}
}

func templateName(cfg *config.Config) string {
	if cfg.Template == "" {
		return nb2beamer.DefaultTemplateSet
	}
	return cfg.Template
}

func themeKeys(gen *nb2beamer.Generator) []string {
	themes := gen.Themes()
	keys := make([]string, len(themes))
	for i, t := range themes {
		keys[i] = t.Key
	}
	return keys
}

// hintFor returns an actionable hint for err, or "".
// cfg and gen may be nil when the error happened before they existed.
func hintFor(err error, cfg *config.Config, gen *nb2beamer.Generator) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, nb2beamer.ErrUnknownTheme) && gen != nil:
		return hints.ForUnknownTheme(themeKeys(gen))
	case errors.Is(err, nb2beamer.ErrTemplateNotFound) && cfg != nil:
		return hints.ForTemplateNotFound(cfg.Assets.BasePath)
	case errors.Is(err, nb2beamer.ErrUnboundPlaceholder):
		return hints.ForUnboundPlaceholder(nb2beamer.Placeholders())
	case errors.Is(err, nb2beamer.ErrMalformedDocument):
		return hints.ForMalformedNotebook()
	case errors.Is(err, nb2beamer.ErrOutputNotOwned):
		return hints.ForOutputNotOwned()
	case errors.Is(err, nb2beamer.ErrAssetWriteFailure):
		return hints.ForOutputDirectory()
	}
	return ""
}

// withHint appends hint to the error message, keeping err in the chain.
func withHint(err error, hint string) error {
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// printResult summarizes a written tree unless quiet.
func printResult(env *Environment, r *nb2beamer.Result, common commonFlags, elapsed time.Duration) {
	if r.LogoSynthesized {
		fmt.Fprintf(env.Stderr, "warning: no logo file for theme %s, wrote placeholder %s\n", r.Theme, r.Logo)
	}
	if common.quiet {
		return
	}

	fmt.Fprintf(env.Stdout, "Created %s (%d frames, %d code files, %d figures)\n",
		r.Root, r.Frames, len(r.CodeFiles), len(r.Figures))

	if common.verbose {
		fmt.Fprintf(env.Stdout, "  theme:        %s\n", r.Theme)
		fmt.Fprintf(env.Stdout, "  template set: %s\n", r.TemplateSet)
		fmt.Fprintf(env.Stdout, "  logo:         %s\n", r.Logo)
		fmt.Fprintf(env.Stdout, "  elapsed:      %s\n", elapsed.Round(time.Millisecond))
	}

	fmt.Fprintf(env.Stdout, "Compile with: cd %s && ./compile_presentation.sh\n", filepath.Clean(r.Root))
	if hint := hints.ForMissingCompiler(); hint != "" {
		fmt.Fprintf(env.Stdout, "note:%s\n", hint)
	}
}
