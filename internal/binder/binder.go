// Package binder substitutes {{NAME}} placeholders in templates.
package binder

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnboundPlaceholder is returned when a template declares a token the map
// does not provide.
var ErrUnboundPlaceholder = errors.New("unbound placeholder")

// Map holds placeholder values keyed by token name (without braces).
type Map map[string]string

var tokenPattern = regexp.MustCompile(`\{\{([A-Z][A-Z0-9_]*)\}\}`)

// UnboundError names every token missing from the map.
type UnboundError struct {
	Tokens []string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnboundPlaceholder, strings.Join(e.Tokens, ", "))
}

func (e *UnboundError) Unwrap() error {
	return ErrUnboundPlaceholder
}

// Tokens lists the token names declared by template, in first-occurrence order.
func Tokens(template string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range tokenPattern.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Unbound returns the declared tokens absent from values.
func Unbound(template string, values Map) []string {
	var missing []string
	for _, name := range Tokens(template) {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Bind replaces every declared token with its value in a single pass.
// Substituted values are not rescanned, so a value containing "{{X}}" is
// emitted literally. Entries the template does not declare are ignored.
func Bind(template string, values Map) (string, error) {
	if missing := Unbound(template, values); len(missing) > 0 {
		return "", &UnboundError{Tokens: missing}
	}
	return tokenPattern.ReplaceAllStringFunc(template, func(tok string) string {
		return values[tok[2:len(tok)-2]]
	}), nil
}
