package main

import (
	"errors"
	"os"

	docs2md "github.com/alnah/go-docs2md"
	"github.com/alnah/go-docs2md/internal/config"
)

// Exit codes for docs2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All pages written
	ExitGeneral = 1 // General/unexpected error, check found problems
	ExitUsage   = 2 // Invalid flags, config, or export
	ExitIO      = 3 // File not found, permission denied
	ExitPartial = 4 // Some pages failed, the rest were written
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Partial batch failure (exit 4)
	if errors.Is(err, ErrPartialFailure) {
		return ExitPartial
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, docs2md.ErrWritePage) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrSelectorNoMatch) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, docs2md.ErrInvalidExport) ||
		errors.Is(err, docs2md.ErrExportTooLarge) ||
		errors.Is(err, docs2md.ErrHTMLTooLarge) ||
		errors.Is(err, docs2md.ErrSchema) {
		return ExitUsage
	}

	return ExitGeneral
}
