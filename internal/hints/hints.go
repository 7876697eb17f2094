// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating the file in the user config directory.
func ForConfigNotFound(searchedPaths []string, appDir string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if appDir != "" && filepath.Base(filepath.Dir(p)) == appDir {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMappingTarget lists the accepted --tag and tags: targets.
func ForMappingTarget(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available targets: " + strings.Join(available, ", "))
}

// ForNoFiles returns hints when no convertible input was found.
func ForNoFiles(extensions []string) string {
	if len(extensions) == 0 {
		return format("pass - to read standard input")
	}
	return format("inputs must end in " + strings.Join(extensions, ", ") + "; pass - to read standard input")
}

// ForSelector returns hints for selector errors.
func ForSelector() string {
	return format(`use a CSS selector such as "article" or "main .content"`)
}

// ForBaseURL returns hints for invalid base URLs.
func ForBaseURL() string {
	return format("use an absolute URL with a scheme, e.g. https://example.com/docs/")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForOverwrite returns hints when an output would replace an input.
func ForOverwrite() string {
	return formatHints([]string{"use -o to pick another output", "or -f to change the extension"})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
