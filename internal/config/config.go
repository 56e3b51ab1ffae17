package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/alnah/go-nb2beamer/internal/fileutil"
	"github.com/alnah/go-nb2beamer/internal/theme"
	"github.com/alnah/go-nb2beamer/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxThemeKeyLength    = 30   // "cu", "my-university"
	MaxTemplateLength    = 50   // Template set directory name
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxTitleLength       = 200  // Presentation title
	MaxSubtitleLength    = 200  // Presentation subtitle
	MaxAuthorLength      = 200  // One or more author names
	MaxInstituteLength   = 200  // Institute line
	MaxDateLength        = 30   // "2025-12-31" or "auto:DD/MM/YYYY"
	MaxInstitutionLength = 100  // Theme institution name
	MaxLogoLength        = 255  // Logo file name
	MaxCodeLines         = 100000
)

// appDirName is the directory searched under the user config directory.
const appDirName = "nb2beamer"

var themeKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Config holds all configuration for presentation generation.
type Config struct {
	Theme    string                 `yaml:"theme"`    // Theme key (empty = cu)
	Template string                 `yaml:"template"` // Template set name (empty = default)
	Output   OutputConfig           `yaml:"output"`
	Assets   AssetsConfig           `yaml:"assets"`
	Document DocumentConfig         `yaml:"document"`
	Code     CodeConfig             `yaml:"code"`
	Themes   map[string]ThemeConfig `yaml:"themes"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output root (empty = "output")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
	LogoDir  string `yaml:"logoDir"`  // Searched for theme logos before basePath/logos
}

// DocumentConfig overrides the title block read from the notebook.
type DocumentConfig struct {
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	Author    string `yaml:"author"`
	Institute string `yaml:"institute"`
	Date      string `yaml:"date"` // "auto", "auto:FORMAT", preset, or literal (empty = \today)
}

// CodeConfig defines listing limits, in lines. Zero uses the defaults.
type CodeConfig struct {
	BreakLines int `yaml:"breakLines"` // Above this, frames allow breaks (default 50)
	MaxLines   int `yaml:"maxLines"`   // Above this, a note replaces the listing (default 200)
}

// ThemeConfig defines a custom theme. Colors are [r, g, b] triples.
type ThemeConfig struct {
	Name       string `yaml:"name"`
	Primary    []int  `yaml:"primary"`
	Secondary  []int  `yaml:"secondary"`
	Tertiary   []int  `yaml:"tertiary"`
	Quaternary []int  `yaml:"quaternary"`
	Logo       string `yaml:"logo"` // File name looked up in the logo directories
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Theme != "" {
		if err := validateThemeKey("theme", c.Theme); err != nil {
			return err
		}
	}
	if err := validateFieldLength("template", c.Template, MaxTemplateLength); err != nil {
		return err
	}

	// Validate paths
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.logoDir", c.Assets.LogoDir, MaxPathLength); err != nil {
		return err
	}

	// Validate document fields
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.subtitle", c.Document.Subtitle, MaxSubtitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.author", c.Document.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.institute", c.Document.Institute, MaxInstituteLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.date", c.Document.Date, MaxDateLength); err != nil {
		return err
	}

	// Validate code limits
	if c.Code.BreakLines < 0 || c.Code.BreakLines > MaxCodeLines {
		return fmt.Errorf("%w: code.breakLines: must be between 0 and %d, got %d", ErrInvalidValue, MaxCodeLines, c.Code.BreakLines)
	}
	if c.Code.MaxLines < 0 || c.Code.MaxLines > MaxCodeLines {
		return fmt.Errorf("%w: code.maxLines: must be between 0 and %d, got %d", ErrInvalidValue, MaxCodeLines, c.Code.MaxLines)
	}
	if c.Code.BreakLines > 0 && c.Code.MaxLines > 0 && c.Code.BreakLines > c.Code.MaxLines {
		return fmt.Errorf("%w: code.breakLines (%d) exceeds code.maxLines (%d)", ErrInvalidValue, c.Code.BreakLines, c.Code.MaxLines)
	}

	// Validate custom themes in key order for stable messages
	for _, key := range c.themeKeys() {
		if err := c.Themes[key].validate(key); err != nil {
			return err
		}
	}

	return nil
}

func (tc ThemeConfig) validate(key string) error {
	field := "themes." + key
	if err := validateThemeKey(field, key); err != nil {
		return err
	}
	if strings.TrimSpace(tc.Name) == "" {
		return fmt.Errorf("%w: %s.name: required", ErrInvalidValue, field)
	}
	if err := validateFieldLength(field+".name", tc.Name, MaxInstitutionLength); err != nil {
		return err
	}
	if tc.Logo == "" {
		return fmt.Errorf("%w: %s.logo: required", ErrInvalidValue, field)
	}
	if err := validateFieldLength(field+".logo", tc.Logo, MaxLogoLength); err != nil {
		return err
	}
	if strings.ContainsAny(tc.Logo, `/\`) {
		return fmt.Errorf("%w: %s.logo: must be a file name, got %q", ErrInvalidValue, field, tc.Logo)
	}

	colors := []struct {
		name  string
		value []int
	}{
		{"primary", tc.Primary},
		{"secondary", tc.Secondary},
		{"tertiary", tc.Tertiary},
		{"quaternary", tc.Quaternary},
	}
	for _, col := range colors {
		if _, err := toRGB(col.value); err != nil {
			return fmt.Errorf("%w: %s.%s: %v", ErrInvalidValue, field, col.name, err)
		}
	}
	return nil
}

// CustomThemes converts the themes section into registry entries,
// sorted by key. The config must have passed Validate.
func (c *Config) CustomThemes() ([]theme.Theme, error) {
	themes := make([]theme.Theme, 0, len(c.Themes))
	for _, key := range c.themeKeys() {
		tc := c.Themes[key]
		if err := tc.validate(key); err != nil {
			return nil, err
		}
		// Colors were validated above.
		p, _ := toRGB(tc.Primary)
		s, _ := toRGB(tc.Secondary)
		t, _ := toRGB(tc.Tertiary)
		q, _ := toRGB(tc.Quaternary)
		themes = append(themes, theme.Theme{
			Key:        key,
			Name:       tc.Name,
			Primary:    p,
			Secondary:  s,
			Tertiary:   t,
			Quaternary: q,
			Logo:       tc.Logo,
		})
	}
	return themes, nil
}

// ThemeConfigFrom converts a registry theme into its config form.
func ThemeConfigFrom(t theme.Theme) ThemeConfig {
	rgb := func(c theme.RGB) []int { return []int{int(c.R), int(c.G), int(c.B)} }
	return ThemeConfig{
		Name:       t.Name,
		Primary:    rgb(t.Primary),
		Secondary:  rgb(t.Secondary),
		Tertiary:   rgb(t.Tertiary),
		Quaternary: rgb(t.Quaternary),
		Logo:       t.Logo,
	}
}

// Registry returns the builtin themes extended with the custom ones.
// A custom theme replaces a builtin with the same key.
func (c *Config) Registry() (*theme.Registry, error) {
	custom, err := c.CustomThemes()
	if err != nil {
		return nil, err
	}
	return theme.Builtin().With(custom...)
}

func (c *Config) themeKeys() []string {
	keys := make([]string, 0, len(c.Themes))
	for k := range c.Themes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toRGB(v []int) (theme.RGB, error) {
	if len(v) != 3 {
		return theme.RGB{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
	for _, c := range v {
		if c < 0 || c > 255 {
			return theme.RGB{}, fmt.Errorf("component %d out of range 0-255", c)
		}
	}
	return theme.RGB{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}, nil // #nosec G115 -- range checked above
}

func validateThemeKey(field, key string) error {
	if err := validateFieldLength(field, key, MaxThemeKeyLength); err != nil {
		return err
	}
	if !themeKeyPattern.MatchString(key) {
		return fmt.Errorf("%w: %s: theme key %q must be lowercase letters, digits, '-' or '_'", ErrInvalidValue, field, key)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with every field at its default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML configuration document.
// Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/nb2beamer/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
