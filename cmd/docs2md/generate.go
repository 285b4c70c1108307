package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	docs2md "github.com/alnah/go-docs2md"
	"github.com/alnah/go-docs2md/internal/config"
	"github.com/alnah/go-docs2md/internal/hints"
)

// runGenerate reads an export and writes one Markdown file per entry.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 1 {
		return usageError(fmt.Errorf("expected at most one export, got %d", len(positional)))
	}

	cfg, err := resolveConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeGenerateFlags(flags, positional, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Input.Path == "" {
		return ErrNoInput
	}
	if cfg.Output.Dir == "" {
		return ErrNoOutput
	}

	entries, err := readExport(cfg.Input.Path, cfg.Input.ExportLimit(), env.Stdin)
	if err != nil {
		return err
	}

	logger := buildLogger(flags.common, cfg, env.Stderr)
	conv := docs2md.NewConverter(
		docs2md.WithMaxHTMLSize(cfg.Convert.MaxHTMLSize),
		docs2md.WithLogger(logger),
	)
	gen := docs2md.NewGenerator(
		docs2md.WithConverter(conv),
		docs2md.WithWorkers(cfg.Generate.Workers),
		docs2md.WithFrontmatter(cfg.Output.FrontmatterEnabled()),
		docs2md.WithVerify(cfg.Generate.Verify),
		docs2md.WithForce(cfg.Generate.Force),
		docs2md.WithGeneratorLogger(logger),
	)

	report, err := gen.Generate(ctx, entries, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}

	if report.Skipped {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Skipped: %s is not empty%s\n", cfg.Output.Dir, hints.ForExistingOutput(report.ExistingFiles))
		}
		return nil
	}

	failed := printReport(report, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d pages%s", ErrPartialFailure, failed, len(report.Pages), hints.ForPartialFailure())
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

// mergeGenerateFlags applies explicitly set flags over cfg.
func mergeGenerateFlags(f *generateFlags, positional []string, cfg *config.Config) {
	if len(positional) == 1 {
		cfg.Input.Path = positional[0]
	}
	if f.output != "" {
		cfg.Output.Dir = f.output
	}
	if f.workersSet {
		cfg.Generate.Workers = f.workers
	}
	if f.force {
		cfg.Generate.Force = true
	}
	if f.verify {
		cfg.Generate.Verify = true
	}
	if f.noFrontmatter {
		disabled := false
		cfg.Output.Frontmatter = &disabled
	}
	if f.maxHTMLSize > 0 {
		cfg.Convert.MaxHTMLSize = f.maxHTMLSize
	}
}

// readExport decodes the export at path, or from stdin when path is "-".
func readExport(path string, limit int64, stdin io.Reader) ([]docs2md.Entry, error) {
	var r io.Reader = stdin
	if path != stdioArg {
		f, err := os.Open(path) // #nosec G304 -- export path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		defer f.Close()
		r = f
	}

	entries, err := docs2md.ReadExport(r, limit)
	switch {
	case err == nil:
		return entries, nil
	case errors.Is(err, docs2md.ErrExportTooLarge):
		return nil, fmt.Errorf("%w%s", err, hints.ForInputTooLarge(limit, "input.maxSize"))
	case errors.Is(err, docs2md.ErrInvalidExport):
		return nil, fmt.Errorf("%w%s", err, hints.ForInvalidExport())
	default:
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
}

// printReport prints per-page results and a summary, returning the number
// of failed pages. Failures are always printed, even in quiet mode.
func printReport(report *docs2md.Report, quiet, verbose bool, env *Environment) int {
	failed := report.Failed()

	for _, r := range report.Pages {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Route, r.Err)
			continue
		}
		if quiet {
			continue
		}
		for _, p := range r.Problems {
			fmt.Fprintf(env.Stderr, "WARN %s: %s\n", r.Route, p)
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n", r.Route, r.Path, humanize.IBytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond))
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "%s pages written (%s), %s failed in %v\n",
			humanize.Comma(int64(report.Written())),
			humanize.IBytes(uint64(report.BytesWritten())),
			humanize.Comma(int64(len(failed))),
			report.Duration.Round(time.Millisecond))
	}

	return len(failed)
}
