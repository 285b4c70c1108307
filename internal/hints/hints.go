// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-docs2md/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-docs2md") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForExistingOutput returns hints when generation was skipped because the
// output directory already holds n files.
func ForExistingOutput(n int) string {
	return formatHints([]string{
		"output already holds " + humanize.Comma(int64(n)) + " files",
		"use --force to regenerate",
	})
}

// ForInputTooLarge returns hints when an input exceeds its size limit.
func ForInputTooLarge(limit int64, flag string) string {
	hint := "limit is " + humanize.IBytes(uint64(max(limit, 0)))
	if flag != "" {
		hint += "; raise it with " + flag
	}
	return format(hint)
}

// ForInvalidExport returns hints for exports that cannot be decoded.
func ForInvalidExport() string {
	return format("expected docs.json: an entry object or an array of entries")
}

// ForPartialFailure returns hints when some pages failed to generate.
func ForPartialFailure() string {
	return format("rerun with --verbose for per-page details; other pages were written")
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
