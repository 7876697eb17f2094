// Package fileutil provides file and path utility functions for the CLI.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Input extensions, lower-case with the leading dot.
var (
	HTMLExtensions     = []string{".html", ".htm"}
	MarkdownExtensions = []string{".md", ".markdown"}
)

// IsHTMLFile reports whether path has an HTML extension.
func IsHTMLFile(path string) bool {
	return hasExtension(path, HTMLExtensions)
}

// IsMarkdownFile reports whether path has a Markdown extension.
func IsMarkdownFile(path string) bool {
	return hasExtension(path, MarkdownExtensions)
}

// IsInputFile reports whether path is a convertible input file.
func IsInputFile(path string) bool {
	return IsHTMLFile(path) || IsMarkdownFile(path)
}

func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// ReplaceExtension swaps the extension of path for ext (".json", ".yaml", ...).
func ReplaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never observe a partially written output.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".html2rt-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmp := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmp) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmp, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
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
//   - "strict" -> false (config name)
//   - "./strict.yaml" -> true (relative path)
//   - "C:\configs\strict.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
