package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-nb2beamer/internal/fileutil"
)

func readTree(t *testing.T, root string) map[string]string {
	t.Helper()

	got := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		if rel == fileutil.TreeMarker {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		got[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return got
}

func TestWriteTree(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "output")
	files := []fileutil.File{
		{Path: "presentation.tex", Data: []byte("tex")},
		{Path: "assets/code/cell_001.py", Data: []byte("print(1)\n")},
		{Path: "compile_presentation.sh", Data: []byte("#!/bin/sh\n"), Mode: 0o755},
	}

	if err := fileutil.WriteTree(root, files); err != nil {
		t.Fatalf("WriteTree() error = %v", err)
	}

	got := readTree(t, root)
	if len(got) != 3 || got["assets/code/cell_001.py"] != "print(1)\n" {
		t.Errorf("tree = %v", got)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(root, "compile_presentation.sh"))
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o755 {
			t.Errorf("script mode = %v, want 0755", info.Mode().Perm())
		}
	}

	entries, err := os.ReadDir(filepath.Dir(root))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("parent holds %d entries, want only the output tree", len(entries))
	}
	if _, err := os.Stat(filepath.Join(root, fileutil.TreeMarker)); err != nil {
		t.Errorf("tree marker missing: %v", err)
	}
}

func TestWriteTree_ReplacesPreviousTree(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "output")
	first := []fileutil.File{
		{Path: "presentation.tex", Data: []byte("old")},
		{Path: "assets/figures/cell_009.png", Data: []byte("stale")},
	}
	if err := fileutil.WriteTree(root, first); err != nil {
		t.Fatalf("WriteTree(first) error = %v", err)
	}

	second := []fileutil.File{{Path: "presentation.tex", Data: []byte("new")}}
	if err := fileutil.WriteTree(root, second); err != nil {
		t.Fatalf("WriteTree(second) error = %v", err)
	}

	got := readTree(t, root)
	if len(got) != 1 || got["presentation.tex"] != "new" {
		t.Errorf("tree = %v, want only the new presentation", got)
	}
}

func TestWriteTree_InvalidPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   []fileutil.File
		wantErr error
	}{
		{"parent traversal", []fileutil.File{{Path: "../escape.tex"}}, fileutil.ErrUnsafePath},
		{"absolute", []fileutil.File{{Path: "/etc/passwd"}}, fileutil.ErrUnsafePath},
		{"empty", []fileutil.File{{Path: ""}}, fileutil.ErrUnsafePath},
		{"duplicate", []fileutil.File{{Path: "a/b"}, {Path: "a/./b"}}, fileutil.ErrDuplicatePath},
		{"marker", []fileutil.File{{Path: fileutil.TreeMarker}}, fileutil.ErrDuplicatePath},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := filepath.Join(t.TempDir(), "output")
			err := fileutil.WriteTree(root, tt.files)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("WriteTree() error = %v, want %v", err, tt.wantErr)
			}
			if _, statErr := os.Stat(root); !os.IsNotExist(statErr) {
				t.Error("WriteTree() left an output tree after failing")
			}
		})
	}
}

func TestWriteTree_TargetIsFile(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "output")
	if err := os.WriteFile(root, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := fileutil.WriteTree(root, []fileutil.File{{Path: "presentation.tex"}})
	if !errors.Is(err, fileutil.ErrWriteFailed) {
		t.Errorf("WriteTree() error = %v, want ErrWriteFailed", err)
	}
}

func TestWriteTree_RefusesForeignDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	userFiles := map[string]string{
		"talk.ipynb":        "{}",
		"thesis/thesis.tex": "chapter one",
	}
	for name, content := range userFiles {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	err := fileutil.WriteTree(root, []fileutil.File{{Path: "presentation.tex", Data: []byte("tex")}})
	if !errors.Is(err, fileutil.ErrNotOwned) || !errors.Is(err, fileutil.ErrWriteFailed) {
		t.Fatalf("WriteTree() error = %v, want ErrNotOwned and ErrWriteFailed", err)
	}

	got := readTree(t, root)
	if len(got) != len(userFiles) {
		t.Errorf("tree = %v, want only the user files", got)
	}
	for name, content := range userFiles {
		if got[name] != content {
			t.Errorf("%s = %q, want %q", name, got[name], content)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(root))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".staging-") {
			t.Errorf("staging directory %s left behind", e.Name())
		}
	}
}

func TestWriteTree_ReplacesEmptyDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := fileutil.WriteTree(root, []fileutil.File{{Path: "presentation.tex", Data: []byte("tex")}}); err != nil {
		t.Fatalf("WriteTree() error = %v", err)
	}
	if got := readTree(t, root); got["presentation.tex"] != "tex" {
		t.Errorf("tree = %v", got)
	}
}

func TestWithin(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "output")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"root itself", root, true},
		{"child", filepath.Join(root, "talk.ipynb"), true},
		{"nested", filepath.Join(root, "a", "b.ipynb"), true},
		{"sibling", filepath.Join(filepath.Dir(root), "talk.ipynb"), false},
		{"prefix sibling", root + "-old/talk.ipynb", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.Within(root, tt.path); got != tt.want {
				t.Errorf("Within(%q, %q) = %v, want %v", root, tt.path, got, tt.want)
			}
		})
	}
}

func TestWriteTree_EmptyDirectories(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "output")
	files := []fileutil.File{
		{Path: "assets/figures", Mode: os.ModeDir | 0o755},
		{Path: "assets/code", Mode: os.ModeDir | 0o755},
		{Path: "assets/code/cell_001.py", Data: []byte("x = 1\n")},
	}

	if err := fileutil.WriteTree(root, files); err != nil {
		t.Fatalf("WriteTree() error = %v", err)
	}

	for _, dir := range []string{"assets/figures", "assets/code"} {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(dir)))
		if err != nil {
			t.Fatalf("Stat(%s) error = %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
	if got := readTree(t, root); len(got) != 1 {
		t.Errorf("tree = %v, want only the code file", got)
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "notebook.ipynb")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "missing"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"work", false},
		{"my-config", false},
		{"./talk.yaml", true},
		{"/abs/talk.yaml", true},
		{`C:\talks\talk.yaml`, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
