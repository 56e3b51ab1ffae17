// Package theme holds the institutional color and logo identities used to
// brand generated presentations.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownTheme indicates a theme key absent from the registry.
var ErrUnknownTheme = errors.New("unknown theme")

// ErrInvalidTheme indicates a theme definition that cannot be registered.
var ErrInvalidTheme = errors.New("invalid theme")

// DefaultKey is the theme used when the caller does not pick one.
const DefaultKey = "cu"

// RGB is a color triple with components in 0-255.
type RGB struct {
	R, G, B uint8
}

// String formats the color as "r,g,b", the form \definecolor{..}{RGB}{..} takes.
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Theme is an immutable institutional identity.
type Theme struct {
	Key        string
	Name       string // institution name, e.g. "Stanford University"
	Primary    RGB
	Secondary  RGB
	Tertiary   RGB
	Quaternary RGB
	Logo       string // logo file name, looked up in the configured logo directories
}

// Validate checks the fields a template binding depends on.
func (t Theme) Validate() error {
	if t.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidTheme)
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: %q has no name", ErrInvalidTheme, t.Key)
	}
	if t.Logo == "" {
		return fmt.Errorf("%w: %q has no logo file", ErrInvalidTheme, t.Key)
	}
	return nil
}

// Registry is a lookup table of themes by key.
// A Registry is read-only once built; With returns a copy.
type Registry struct {
	themes map[string]Theme
}

// NewRegistry builds a registry from the given themes.
// Later themes replace earlier ones with the same key.
func NewRegistry(themes ...Theme) (*Registry, error) {
	r := &Registry{themes: make(map[string]Theme, len(themes))}
	for _, t := range themes {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		r.themes[t.Key] = t
	}
	return r, nil
}

// Builtin returns a registry holding the bundled university themes.
func Builtin() *Registry {
	r, err := NewRegistry(builtinThemes...)
	if err != nil {
		panic("theme: invalid builtin theme: " + err.Error())
	}
	return r
}

// With returns a new registry containing r's themes plus extra.
func (r *Registry) With(extra ...Theme) (*Registry, error) {
	all := make([]Theme, 0, len(r.themes)+len(extra))
	for _, k := range r.Keys() {
		all = append(all, r.themes[k])
	}
	all = append(all, extra...)
	return NewRegistry(all...)
}

// Lookup returns the theme registered under key.
func (r *Registry) Lookup(key string) (Theme, error) {
	t, ok := r.themes[key]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, key, strings.Join(r.Keys(), ", "))
	}
	return t, nil
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.themes))
	for k := range r.themes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	return len(r.themes)
}

var builtinThemes = []Theme{
	{
		Key:        "cu",
		Name:       "University of Colorado Boulder",
		Primary:    RGB{207, 184, 124}, // CU gold
		Secondary:  RGB{0, 0, 0},
		Tertiary:   RGB{86, 90, 92},
		Quaternary: RGB{162, 164, 163},
		Logo:       "cu_logo.png",
	},
	{
		Key:        "mit",
		Name:       "Massachusetts Institute of Technology",
		Primary:    RGB{163, 31, 52},
		Secondary:  RGB{138, 139, 140},
		Tertiary:   RGB{0, 0, 0},
		Quaternary: RGB{200, 200, 200},
		Logo:       "mit_logo.png",
	},
	{
		Key:        "stanford",
		Name:       "Stanford University",
		Primary:    RGB{140, 21, 21}, // cardinal
		Secondary:  RGB{46, 45, 41},
		Tertiary:   RGB{0, 0, 0},
		Quaternary: RGB{229, 229, 229},
		Logo:       "stanford_logo.png",
	},
	{
		Key:        "fiu",
		Name:       "Florida International University",
		Primary:    RGB{8, 30, 63},
		Secondary:  RGB{179, 163, 105},
		Tertiary:   RGB{0, 0, 0},
		Quaternary: RGB{200, 200, 200},
		Logo:       "fiu_logo.png",
	},
}
