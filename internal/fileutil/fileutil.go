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
	ErrPathEmpty       = errors.New("path cannot be empty")
	ErrPathEscapesRoot = errors.New("path escapes output directory")
)

// dirPerm and filePerm are the permissions of generated output.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "docs" -> false (name)
//   - "./docs.yaml" -> true (relative path)
//   - "/absolute/docs.yaml" -> true (absolute)
//   - "C:\windows\docs.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// CountFiles returns the number of regular files below dir. A missing
// directory counts as empty.
func CountFiles(dir string) (int, error) {
	n := 0
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			n++
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("scanning %s: %w", dir, err)
	}
	return n, nil
}

// JoinUnder joins the slash-separated relative path rel onto root and
// rejects results that would land outside root.
func JoinUnder(root, rel string) (string, error) {
	if rel == "" {
		return "", ErrPathEmpty
	}
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q", ErrPathEscapesRoot, rel)
	}
	return filepath.Join(root, local), nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return ErrPathEmpty
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil { // #nosec G306 -- generated docs are world-readable
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
