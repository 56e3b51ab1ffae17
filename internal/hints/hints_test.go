package hints

// ForMissingCompiler tests replace the package-level LookPath and do not run
// in parallel.

import (
	"os/exec"
	"strings"
	"testing"
)

func TestForMissingCompiler(t *testing.T) {
	orig := LookPath
	defer func() { LookPath = orig }()

	tests := []struct {
		name      string
		available map[string]bool
		wantHint  bool
	}{
		{"none installed", map[string]bool{}, true},
		{"pdflatex installed", map[string]bool{"pdflatex": true}, false},
		{"tectonic installed", map[string]bool{"tectonic": true}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			LookPath = func(file string) (string, error) {
				if tt.available[file] {
					return "/usr/bin/" + file, nil
				}
				return "", exec.ErrNotFound
			}

			got := ForMissingCompiler()
			if tt.wantHint && !strings.Contains(got, "hint:") {
				t.Errorf("ForMissingCompiler() = %q, want a hint", got)
			}
			if !tt.wantHint && got != "" {
				t.Errorf("ForMissingCompiler() = %q, want empty", got)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"work.yaml", "/home/u/.config/nb2beamer/work.yaml"})
		if !strings.Contains(hint, "--config") {
			t.Error("expected --config suggestion")
		}
		if !strings.Contains(hint, "create /home/u/.config/nb2beamer/work.yaml") {
			t.Errorf("hint = %q, want user config path", hint)
		}
	})

	t.Run("no user path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"work.yaml"})
		if strings.Contains(hint, "create") {
			t.Errorf("hint = %q, want no create suggestion", hint)
		}
	})
}

func TestForUnknownTheme(t *testing.T) {
	t.Parallel()

	if got := ForUnknownTheme(nil); got != "" {
		t.Errorf("ForUnknownTheme(nil) = %q, want empty", got)
	}

	got := ForUnknownTheme([]string{"cu", "mit"})
	if !strings.HasPrefix(got, "\n  hint: available: cu, mit") {
		t.Errorf("ForUnknownTheme() = %q", got)
	}
}

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	if got := ForTemplateNotFound(""); !strings.Contains(got, "--asset-path") {
		t.Errorf("ForTemplateNotFound(\"\") = %q, want --asset-path suggestion", got)
	}
	if got := ForTemplateNotFound("/srv/assets"); !strings.Contains(got, "templates") {
		t.Errorf("ForTemplateNotFound() = %q, want the templates directory", got)
	}
}

func TestForUnboundPlaceholder(t *testing.T) {
	t.Parallel()

	if got := ForUnboundPlaceholder(nil); got != "" {
		t.Errorf("ForUnboundPlaceholder(nil) = %q, want empty", got)
	}
	if got := ForUnboundPlaceholder([]string{"TITLE", "CONTENT"}); !strings.Contains(got, "TITLE, CONTENT") {
		t.Errorf("ForUnboundPlaceholder() = %q", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, got := range map[string]string{
		"ForMalformedNotebook": ForMalformedNotebook(),
		"ForOutputDirectory":   ForOutputDirectory(),
		"ForOutputNotOwned":    ForOutputNotOwned(),
	} {
		if !strings.HasPrefix(got, "\n  hint: ") {
			t.Errorf("%s() = %q, want hint prefix", name, got)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := format("x"); got != "\n  hint: x" {
		t.Errorf("format(\"x\") = %q", got)
	}
}
