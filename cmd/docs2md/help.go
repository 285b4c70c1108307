package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docs2md <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Write one Markdown file per docs.json entry")
	fmt.Fprintln(w, "  convert    Convert an HTML file to Markdown on stdout")
	fmt.Fprintln(w, "  preview    Render a generated page as HTML")
	fmt.Fprintln(w, "  check      Report output contract problems in generated pages")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docs2md help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-page details")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docs2md generate [export.json|-] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write one Markdown file per entry of a docs.json export.")
	fmt.Fprintln(w, "Nothing is written when the output directory already holds files,")
	fmt.Fprintln(w, "unless --force is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  export    docs.json path, or - for stdin (optional if config has input.path)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generation:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --force               Regenerate into a non-empty directory")
	fmt.Fprintln(w, "      --no-frontmatter      Omit the YAML frontmatter block")
	fmt.Fprintln(w, "      --verify              Check every page with goldmark")
	fmt.Fprintln(w, "      --max-html-size <n>   Max bytes per HTML fragment")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOCS2MD_CONFIG, DOCS2MD_INPUT, DOCS2MD_OUTPUT_DIR,")
	fmt.Fprintln(w, "  DOCS2MD_WORKERS, DOCS2MD_LOG_LEVEL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 error, 2 usage or config, 3 I/O, 4 some pages failed")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docs2md convert <file.html|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert an HTML document to Markdown and print it on stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -d, --depth <n>           Route depth for docs link rewriting")
	fmt.Fprintln(w, "  -s, --select <css>        Convert only the elements matching a selector")
	fmt.Fprintln(w, "      --max-html-size <n>   Max bytes of HTML")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docs2md preview <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a generated Markdown page as a standalone HTML document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preview:")
	fmt.Fprintln(w, "  -o, --output <file>       Output HTML file (default stdout)")
	fmt.Fprintln(w, "      --style <name>        Chroma style for code blocks")
	fmt.Fprintln(w, "      --title <s>           Document title (default frontmatter title)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docs2md check <file.md|dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report broken links, missing anchors, ragged tables and denied raw HTML.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: docs2md version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: docs2md help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
