package main

// Notes:
// - exitCodeFor: we test the sentinel errors of the CLI, the library and the
//   config package, plus wrapped errors to verify the errors.Is() chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	docs2md "github.com/alnah/go-docs2md"
	"github.com/alnah/go-docs2md/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Partial failure (exit 4)
		{"partial failure", ErrPartialFailure, ExitPartial},
		{"wrapped partial failure", fmt.Errorf("%w: 2 of 5 pages", ErrPartialFailure), ExitPartial},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"write page", docs2md.ErrWritePage, ExitIO},
		{"wrapped file not exist", fmt.Errorf("%w: %w", ErrReadInput, os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"no output", ErrNoOutput, ExitUsage},
		{"selector no match", ErrSelectorNoMatch, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"invalid export", docs2md.ErrInvalidExport, ExitUsage},
		{"export too large", docs2md.ErrExportTooLarge, ExitUsage},
		{"html too large", &docs2md.SizeError{Size: 10, Limit: 5}, ExitUsage},
		{"schema", docs2md.ErrMissingRoute, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"problems found", ErrProblemsFound, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitPartial} {
		if code >= 126 {
			t.Errorf("custom exit code %d must be below 126", code)
		}
	}
}
