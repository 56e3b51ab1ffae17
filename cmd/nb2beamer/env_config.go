package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alnah/go-nb2beamer/internal/config"
)

const envPrefix = "NB2BEAMER_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // NB2BEAMER_CONFIG: config file name or path
	Theme      string // NB2BEAMER_THEME: theme key
	OutputDir  string // NB2BEAMER_OUTPUT_DIR: output root
	AssetPath  string // NB2BEAMER_ASSET_PATH: custom asset directory
	LogoDir    string // NB2BEAMER_LOGO_DIR: logo directory
	Author     string // NB2BEAMER_AUTHOR: presentation author
	Institute  string // NB2BEAMER_INSTITUTE: institute line
	Date       string // NB2BEAMER_DATE: date setting
}

// knownEnvVars lists valid NB2BEAMER_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"NB2BEAMER_CONFIG":     true,
	"NB2BEAMER_THEME":      true,
	"NB2BEAMER_OUTPUT_DIR": true,
	"NB2BEAMER_ASSET_PATH": true,
	"NB2BEAMER_LOGO_DIR":   true,
	"NB2BEAMER_AUTHOR":     true,
	"NB2BEAMER_INSTITUTE":  true,
	"NB2BEAMER_DATE":       true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("NB2BEAMER_CONFIG"),
		Theme:      os.Getenv("NB2BEAMER_THEME"),
		OutputDir:  os.Getenv("NB2BEAMER_OUTPUT_DIR"),
		AssetPath:  os.Getenv("NB2BEAMER_ASSET_PATH"),
		LogoDir:    os.Getenv("NB2BEAMER_LOGO_DIR"),
		Author:     os.Getenv("NB2BEAMER_AUTHOR"),
		Institute:  os.Getenv("NB2BEAMER_INSTITUTE"),
		Date:       os.Getenv("NB2BEAMER_DATE"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized NB2BEAMER_* variables,
// sorted by name.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config file values with the set variables.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Theme, env.Theme)
	set(&cfg.Output.Dir, env.OutputDir)
	set(&cfg.Assets.BasePath, env.AssetPath)
	set(&cfg.Assets.LogoDir, env.LogoDir)
	set(&cfg.Document.Author, env.Author)
	set(&cfg.Document.Institute, env.Institute)
	set(&cfg.Document.Date, env.Date)
}
