package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/alnah/go-docs2md/internal/gfm"
)

// runCheck verifies generated Markdown pages against the output contract.
// It returns ErrProblemsFound when at least one page has a problem.
func runCheck(args []string, env *Environment) error {
	flags, positional, err := parseCheckFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) != 1 {
		return usageError(fmt.Errorf("expected one Markdown file or directory, got %d arguments", len(positional)))
	}

	files, err := discoverPages(positional[0])
	if err != nil {
		return err
	}

	total := 0
	for _, path := range files {
		md, err := os.ReadFile(path) // #nosec G304 -- discovered below a user-provided root
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		problems := gfm.Verify(md)
		for _, p := range problems {
			fmt.Fprintf(env.Stdout, "%s: %s\n", path, p)
		}
		total += len(problems)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%s files checked, %s problems\n",
			humanize.Comma(int64(len(files))), humanize.Comma(int64(total)))
	}
	if total > 0 {
		return fmt.Errorf("%w: %d", ErrProblemsFound, total)
	}
	return nil
}

// discoverPages returns root itself when it is a file, or every .md file
// below it, sorted.
func discoverPages(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	sort.Strings(files)
	return files, nil
}
