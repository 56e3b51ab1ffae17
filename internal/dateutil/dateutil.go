// Package dateutil resolves the presentation date setting.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// Today is the LaTeX command printing the compilation date. It is the
// resolved value of an empty setting and of "today".
const Today = `\today`

// DefaultFormat is used when "auto" is given without a format.
const DefaultFormat = "MMMM D, YYYY"

// Presets are named shortcuts for common formats, usable as "auto:NAME".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"month":    "MMMM YYYY",
}

// tokens maps format tokens to Go layout fragments, longest first.
var tokens = []struct{ token, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Layout converts a format such as "DD/MM/YYYY" into a Go time layout.
// Text inside brackets is kept literally: "[Week of] MMM D".
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	for rest := format; rest != ""; {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}
		n := 1
		frag := rest[:1]
		for _, tk := range tokens {
			if strings.HasPrefix(rest, tk.token) {
				n, frag = len(tk.token), tk.layout
				break
			}
		}
		b.WriteString(frag)
		rest = rest[n:]
	}
	return b.String(), nil
}

// Resolve turns a date setting into the text placed under \date:
//   - "" or "today" -> Today, rendered by LaTeX at compile time
//   - "auto" -> now in DefaultFormat
//   - "auto:FORMAT" or "auto:PRESET" -> now in that format
//   - anything else -> returned unchanged
func Resolve(value string, now time.Time) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(value))
	switch {
	case lower == "" || lower == "today":
		return Today, nil
	case lower == "auto":
		return format(DefaultFormat, now)
	case strings.HasPrefix(lower, "auto:"):
		f := strings.TrimSpace(value)[len("auto:"):]
		if f == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := Presets[strings.ToLower(f)]; ok {
			f = preset
		}
		return format(f, now)
	case strings.HasPrefix(lower, "auto"):
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}
	return value, nil
}

func format(f string, now time.Time) (string, error) {
	layout, err := Layout(f)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
