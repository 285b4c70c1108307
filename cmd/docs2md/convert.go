package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	docs2md "github.com/alnah/go-docs2md"
	"github.com/alnah/go-docs2md/internal/config"
)

// runConvert converts one HTML document to Markdown on stdout.
func runConvert(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) != 1 {
		return usageError(fmt.Errorf("expected one HTML file or %q, got %d arguments", stdioArg, len(positional)))
	}
	if flags.depth < 0 {
		return usageError(fmt.Errorf("--depth must not be negative, got %d", flags.depth))
	}

	cfg, err := resolveConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergeConvertFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	html, err := readHTML(positional[0], env.Stdin)
	if err != nil {
		return err
	}

	if flags.selector != "" {
		html, err = selectRegion(html, flags.selector)
		if err != nil {
			return err
		}
	}

	conv := docs2md.NewConverter(
		docs2md.WithMaxHTMLSize(cfg.Convert.MaxHTMLSize),
		docs2md.WithLogger(buildLogger(flags.common, cfg, env.Stderr)),
	)
	md, err := conv.Convert(html, flags.depth)
	if err != nil {
		return err
	}

	if md == "" {
		return nil
	}
	if _, err := fmt.Fprintln(env.Stdout, md); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// mergeConvertFlags applies explicitly set flags over cfg.
func mergeConvertFlags(f *convertFlags, cfg *config.Config) {
	if f.maxHTMLSize > 0 {
		cfg.Convert.MaxHTMLSize = f.maxHTMLSize
	}
}

// readHTML reads path, or stdin when path is "-".
func readHTML(path string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if path == stdioArg {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- input path is user-provided
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return string(data), nil
}

// selectRegion returns the outer HTML of every element matching selector,
// in document order.
func selectRegion(html, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("%w: %v", docs2md.ErrHTMLParse, err)
	}

	sel := doc.Find(selector)
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: %q", ErrSelectorNoMatch, selector)
	}

	var sb strings.Builder
	var outerErr error
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		outer, err := goquery.OuterHtml(s)
		if err != nil {
			outerErr = err
			return false
		}
		sb.WriteString(outer)
		sb.WriteByte('\n')
		return true
	})
	if outerErr != nil {
		return "", fmt.Errorf("%w: %v", docs2md.ErrHTMLParse, outerErr)
	}
	return sb.String(), nil
}
