package main

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-docs2md/internal/gfm"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common        commonFlags
	output        string
	workers       int
	workersSet    bool
	force         bool
	noFrontmatter bool
	verify        bool
	maxHTMLSize   int
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common      commonFlags
	depth       int
	selector    string
	maxHTMLSize int
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common commonFlags
	output string
	style  string
	title  string
}

// checkFlags holds all flags for the check command.
type checkFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page details")
}

// newFlagSet creates a FlagSet that reports errors and usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, w io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := newFlagSet("generate", w, printGenerateUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.force, "force", false, "regenerate even if output is not empty")
	fs.BoolVar(&f.noFrontmatter, "no-frontmatter", false, "omit YAML frontmatter")
	fs.BoolVar(&f.verify, "verify", false, "check generated pages with goldmark")
	fs.IntVar(&f.maxHTMLSize, "max-html-size", 0, "max bytes per HTML fragment (0 = config)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.workersSet = fs.Changed("workers")

	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert", w, printConvertUsage)

	fs.IntVarP(&f.depth, "depth", "d", 0, "route depth used to rewrite docs links")
	fs.StringVarP(&f.selector, "select", "s", "", "CSS selector of the region to convert")
	fs.IntVar(&f.maxHTMLSize, "max-html-size", 0, "max bytes of HTML (0 = config)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string, w io.Writer) (*previewFlags, []string, error) {
	f := &previewFlags{}
	fs := newFlagSet("preview", w, printPreviewUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default stdout)")
	fs.StringVar(&f.style, "style", gfm.DefaultStyle, "chroma style for code blocks")
	fs.StringVar(&f.title, "title", "", "document title (default frontmatter title)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string, w io.Writer) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := newFlagSet("check", w, printCheckUsage)

	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
