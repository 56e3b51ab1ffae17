package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-nb2beamer/internal/config"
	"github.com/alnah/go-nb2beamer/internal/yamlutil"
)

// themesDocument is the YAML shape printed by "themes --yaml": a themes
// section that can be pasted into a config file and edited.
type themesDocument struct {
	Themes map[string]config.ThemeConfig `yaml:"themes"`
}

// themesFlags holds flags for the themes command.
type themesFlags struct {
	config string
	asYAML bool
}

// newThemesFlagSet registers the themes command flags into f.
func newThemesFlagSet(f *themesFlags, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("themes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.asYAML, "yaml", false, "print themes as a config themes: section")
	fs.Usage = func() { printThemesUsage(stderr) }
	return fs
}

// runThemesCmd lists the registered themes, including config-defined ones.
func runThemesCmd(args []string, env *Environment) int {
	var f themesFlags
	fs := newThemesFlagSet(&f, env.Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	if err := runThemes(f.config, f.asYAML, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func runThemes(cfgName string, asYAML bool, env *Environment) error {
	cfg, err := loadConfig(cfgName, loadEnvConfig().ConfigPath)
	if err != nil {
		return err
	}
	registry, err := cfg.Registry()
	if err != nil {
		return err
	}

	if asYAML {
		doc := themesDocument{Themes: make(map[string]config.ThemeConfig, registry.Len())}
		for _, key := range registry.Keys() {
			t, _ := registry.Lookup(key)
			doc.Themes[key] = config.ThemeConfigFrom(t)
		}
		out, err := yamlutil.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tINSTITUTION\tPRIMARY\tLOGO")
	for _, key := range registry.Keys() {
		t, _ := registry.Lookup(key)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Key, t.Name, t.Primary, t.Logo)
	}
	return tw.Flush()
}
