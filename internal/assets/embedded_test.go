package assets

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-nb2beamer/internal/binder"
)

func TestEmbeddedLoader_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("default set is complete", func(t *testing.T) {
		t.Parallel()

		ts, err := loader.LoadTemplateSet(DefaultTemplateSetName)
		if err != nil {
			t.Fatalf("LoadTemplateSet(%q) error = %v", DefaultTemplateSetName, err)
		}
		if ts.Name != DefaultTemplateSetName {
			t.Errorf("Name = %q, want %q", ts.Name, DefaultTemplateSetName)
		}
		if !strings.Contains(ts.Document, `\documentclass`) {
			t.Error("Document does not look like a LaTeX document")
		}
		if !strings.HasPrefix(ts.UnixScript, "#!") {
			t.Error("UnixScript has no shebang")
		}
		if !strings.Contains(ts.WindowsScript, "@echo off") {
			t.Error("WindowsScript does not look like a batch file")
		}
	})

	t.Run("default document declares the placeholder contract", func(t *testing.T) {
		t.Parallel()

		ts, err := loader.LoadTemplateSet(DefaultTemplateSetName)
		if err != nil {
			t.Fatalf("LoadTemplateSet() error = %v", err)
		}

		declared := make(map[string]bool)
		for _, tok := range binder.Tokens(ts.Document) {
			declared[tok] = true
		}
		for _, want := range []string{
			"UNIVERSITY_NAME",
			"PRIMARY_R", "PRIMARY_G", "PRIMARY_B",
			"SECONDARY_R", "SECONDARY_G", "SECONDARY_B",
			"TERTIARY_R", "TERTIARY_G", "TERTIARY_B",
			"QUATERNARY_R", "QUATERNARY_G", "QUATERNARY_B",
			"LOGO_FILE", "TITLE", "SUBTITLE", "AUTHOR", "INSTITUTE", "CONTENT", "DATE",
		} {
			if !declared[want] {
				t.Errorf("token %s not declared", want)
			}
		}
		if !strings.Contains(ts.Document, `\newcommand{\CODE}`) {
			t.Error(`Document does not define \CODE`)
		}
	})

	t.Run("unknown set", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplateSet("nonexistent")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplateSet() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplateSet("../default")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplateSet() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestEmbeddedLoader_LoadLogo(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	if _, err := loader.LoadLogo("cu_logo.png"); !errors.Is(err, ErrLogoNotFound) {
		t.Errorf("LoadLogo() error = %v, want ErrLogoNotFound", err)
	}
	if _, err := loader.LoadLogo("../cu_logo.png"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadLogo() error = %v, want ErrInvalidAssetName", err)
	}
}

func TestLoadTemplateSet_PackageLevel(t *testing.T) {
	t.Parallel()

	if _, err := LoadTemplateSet(DefaultTemplateSetName); err != nil {
		t.Fatalf("LoadTemplateSet() error = %v", err)
	}
}
