// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrUnsafePath    = errors.New("path escapes tree root")
	ErrDuplicatePath = errors.New("duplicate path in tree")
	ErrWriteFailed   = errors.New("failed to write output tree")
	ErrNotOwned      = errors.New("output directory holds files nb2beamer did not write")
)

// TreeMarker is written at the root of every tree. WriteTree only replaces
// an existing directory that is empty or carries this marker.
const TreeMarker = ".nb2beamer"

var markerData = []byte("This directory was generated by nb2beamer and is replaced on every run.\n")

// File is one entry of a tree written by WriteTree.
type File struct {
	Path string // Slash-separated, relative to the tree root
	Data []byte
	Mode os.FileMode // Permission bits; zero means 0644, os.ModeDir creates an empty directory
}

// WriteTree writes files into a staging directory next to root, then renames
// the staging directory to root. An existing directory at root is replaced
// only if it is empty or holds TreeMarker; any other directory is refused
// with ErrNotOwned. On failure nothing is left at root beyond what was there
// before.
func WriteTree(root string, files []File) (err error) {
	if err := validateTree(files); err != nil {
		return err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	parent, base := filepath.Dir(absRoot), filepath.Base(absRoot)

	if info, statErr := os.Stat(absRoot); statErr == nil && !info.IsDir() {
		return fmt.Errorf("%w: %s exists and is not a directory", ErrWriteFailed, absRoot)
	}
	if err := checkOwned(absRoot); err != nil {
		return err
	}

	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWriteFailed, parent, err)
	}

	staging, err := os.MkdirTemp(parent, "."+base+".staging-*")
	if err != nil {
		return fmt.Errorf("%w: creating staging directory: %v", ErrWriteFailed, err)
	}
	defer func() {
		if err != nil {
			_ = os.RemoveAll(staging)
		}
	}()

	// MkdirTemp creates 0700 directories.
	if err := os.Chmod(staging, 0o755); err != nil { // #nosec G302 -- output tree is meant to be shared
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	for _, f := range files {
		if err := writeFile(staging, f); err != nil {
			return err
		}
	}
	if err := writeFile(staging, File{Path: TreeMarker, Data: markerData}); err != nil {
		return err
	}

	return replaceDir(staging, absRoot)
}

// checkOwned refuses to replace a non-empty directory without TreeMarker.
func checkOwned(root string) error {
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) || len(entries) == 0 {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrWriteFailed, root, err)
	}
	for _, e := range entries {
		if e.Name() == TreeMarker && e.Type().IsRegular() {
			return nil
		}
	}
	return fmt.Errorf("%w: %w: %s", ErrWriteFailed, ErrNotOwned, root)
}

// Within reports whether path is root itself or lies below it.
func Within(root, path string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return false
	}
	return rel == "." || filepath.IsLocal(rel)
}

func validateTree(files []File) error {
	seen := make(map[string]bool, len(files)+1)
	seen[TreeMarker] = true
	for _, f := range files {
		p := filepath.FromSlash(f.Path)
		if !filepath.IsLocal(p) {
			return fmt.Errorf("%w: %q", ErrUnsafePath, f.Path)
		}
		clean := filepath.Clean(p)
		if seen[clean] {
			return fmt.Errorf("%w: %q", ErrDuplicatePath, f.Path)
		}
		seen[clean] = true
	}
	return nil
}

func writeFile(dir string, f File) error {
	if f.Mode.IsDir() {
		if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(f.Path)), 0o755); err != nil {
			return fmt.Errorf("%w: creating %s: %v", ErrWriteFailed, f.Path, err)
		}
		return nil
	}

	mode := f.Mode
	if mode == 0 {
		mode = 0o644
	}

	path := filepath.Join(dir, filepath.FromSlash(f.Path))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: creating directory for %s: %v", ErrWriteFailed, f.Path, err)
	}
	if err := os.WriteFile(path, f.Data, mode); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrWriteFailed, f.Path, err)
	}
	// WriteFile applies the umask; scripts need their execute bits.
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("%w: setting mode of %s: %v", ErrWriteFailed, f.Path, err)
	}
	return nil
}

// replaceDir moves staging to target, moving any previous target aside first
// and restoring it if the final rename fails.
func replaceDir(staging, target string) error {
	var backup string
	if _, err := os.Stat(target); err == nil {
		backup = staging + ".previous"
		if err := os.Rename(target, backup); err != nil {
			return fmt.Errorf("%w: moving previous %s aside: %v", ErrWriteFailed, target, err)
		}
	}

	if err := os.Rename(staging, target); err != nil {
		if backup != "" {
			_ = os.Rename(backup, target)
		}
		return fmt.Errorf("%w: renaming into %s: %v", ErrWriteFailed, target, err)
	}

	if backup != "" {
		_ = os.RemoveAll(backup)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "work" -> false (name)
//   - "./talk.yaml" -> true (relative path)
//   - "/etc/nb2beamer/talk.yaml" -> true (absolute)
//   - "C:\talks\talk.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
