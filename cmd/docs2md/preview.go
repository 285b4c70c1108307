package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docs2md/internal/fileutil"
	"github.com/alnah/go-docs2md/internal/gfm"
	"github.com/alnah/go-docs2md/internal/yamlutil"
)

// previewMeta is the part of the frontmatter preview reads.
type previewMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// runPreview renders a generated Markdown page as standalone HTML.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) != 1 {
		return usageError(fmt.Errorf("expected one Markdown file, got %d arguments", len(positional)))
	}

	md, err := os.ReadFile(positional[0]) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	title := flags.title
	if title == "" {
		title = pageTitle(md, positional[0])
	}

	out, err := gfm.NewPreviewer(flags.style).Render(ctx, md, title)
	if err != nil {
		return err
	}

	if flags.output == "" || flags.output == stdioArg {
		if _, err := env.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fileutil.WriteFile(flags.output, out); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}

// pageTitle returns the frontmatter title of md, or the file name without
// extension when there is none.
func pageTitle(md []byte, path string) string {
	front, _ := gfm.SplitFrontmatter(md)
	if len(front) > 0 {
		var meta previewMeta
		if err := yamlutil.UnmarshalStrict(front, &meta); err == nil && meta.Title != "" {
			return meta.Title
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
