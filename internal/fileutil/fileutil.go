// Package fileutil provides file and path helpers shared by the build modes.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Permissions for generated output.
const (
	DirPerm  = 0o750
	FilePerm = 0o644
)

// ErrEmptyPath is returned when an output path is empty.
var ErrEmptyPath = errors.New("path cannot be empty")

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
//
// Examples:
//   - "sitepack" -> false (name)
//   - "./sitepack.yaml" -> true
//   - "conf/site.yaml" -> true
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path string, content []byte) error {
	if path == "" {
		return ErrEmptyPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, content, FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// IsWithin reports whether path equals dir or lies below it.
// Both paths are made absolute and cleaned before comparison.
func IsWithin(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	if absPath == absDir {
		return true
	}
	// Separator suffix so /site/out does not match /site/outer.
	return strings.HasPrefix(absPath, strings.TrimSuffix(absDir, string(filepath.Separator))+string(filepath.Separator))
}

// SizeKB returns the size of the file at path in whole kilobytes, or 0 if it cannot be read.
func SizeKB(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size() / 1024
}
