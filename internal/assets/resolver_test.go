package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty paths use embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver("", "")
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewAssetResolver(t.TempDir(), "")
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz", "")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("invalid logo dir returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("", "/nonexistent/logos/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeTemplateSet(t, base, DefaultTemplateSetName, DocumentFile, UnixScriptFile, WindowsScriptFile)
	writeTemplateSet(t, base, "broken", DocumentFile)

	resolver, err := NewAssetResolver(base, "")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		ts, err := resolver.LoadTemplateSet(DefaultTemplateSetName)
		if err != nil {
			t.Fatalf("LoadTemplateSet() error = %v", err)
		}
		if ts.Document != "custom "+DocumentFile {
			t.Errorf("Document = %q, want the custom document", ts.Document)
		}
	})

	t.Run("incomplete custom set does not fall back", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadTemplateSet("broken")
		if !errors.Is(err, ErrIncompleteTemplateSet) {
			t.Errorf("LoadTemplateSet() error = %v, want ErrIncompleteTemplateSet", err)
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Parallel()

		_, err := resolver.LoadTemplateSet("absent")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplateSet() error = %v, want ErrTemplateNotFound", err)
		}
	})
}

func TestAssetResolver_FallsBackToEmbedded(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	ts, err := resolver.LoadTemplateSet(DefaultTemplateSetName)
	if err != nil {
		t.Fatalf("LoadTemplateSet() error = %v", err)
	}
	if ts.Document == "custom "+DocumentFile {
		t.Error("expected the embedded document")
	}
}

func TestAssetResolver_LoadLogo(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "logos"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"cu_logo.png", "mit_logo.png"} {
		if err := os.WriteFile(filepath.Join(base, "logos", name), []byte("base "+name), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	logoDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(logoDir, "cu_logo.png"), []byte("dir cu_logo.png"), 0o644); err != nil {
		t.Fatal(err)
	}

	resolver, err := NewAssetResolver(base, logoDir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tests := []struct {
		name    string
		file    string
		want    string
		wantErr error
	}{
		{"logo dir wins", "cu_logo.png", "dir cu_logo.png", nil},
		{"falls back to base path", "mit_logo.png", "base mit_logo.png", nil},
		{"missing everywhere", "fiu_logo.png", "", ErrLogoNotFound},
		{"invalid name", "logo.exe", "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolver.LoadLogo(tt.file)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadLogo(%q) error = %v, want %v", tt.file, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadLogo(%q) error = %v", tt.file, err)
			}
			if string(got) != tt.want {
				t.Errorf("LoadLogo(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}
