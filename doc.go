// Package docs2md compiles a typst documentation export (docs.json) into a
// tree of GitHub-Flavored Markdown files.
//
// # Quick Start
//
// Convert one HTML fragment. Links to "/DOCS-BASE/..." routes are rewritten
// relative to a page at the given depth:
//
//	md, err := docs2md.ConvertHTMLToMarkdown(`<p>See <a href="/DOCS-BASE/guide/">the guide</a>.</p>`, 0)
//	// md == "See [the guide](guide.md)."
//
// Generate a whole site:
//
//	entries, err := docs2md.ReadExport(f, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := docs2md.NewGenerator().Generate(ctx, entries, "out")
//
// # Conversion Pipeline
//
// Each HTML fragment goes through these stages:
//
//  1. Size guard (MaxHTMLSize, or WithMaxHTMLSize)
//  2. HTML to Markdown AST, with whitespace collapsed and links rewritten
//  3. Rendering through the composite renderer (fast paths for flat
//     documents and tables, the standard renderer otherwise)
//
// When rendering fails or panics, the converter falls back to the plain text
// of the document and logs a warning. Parse and size errors are returned.
//
// # Page Bodies
//
// An entry body is either an HTML string or structured reference content
// (func, type, category, group, symbols). GenerateBody renders each kind with
// its own layout: signatures, parameter lists, item lists linking to other
// pages, and symbol tables. Unknown kinds produce an HTML comment.
//
// # Output Layout
//
// Entry.OutputPath maps a route to its file, consistent with link rewriting:
//
//	/DOCS-BASE/            -> index.md
//	/DOCS-BASE/guide/      -> guide.md
//	/DOCS-BASE/guide/intro/ -> guide/intro.md
//
// Generate refuses to write into a directory that already holds files unless
// the Generator was created WithForce(true); Report.Skipped is set instead.
//
// # Parallel Processing
//
// Pages are converted by a bounded worker pool (WithWorkers). A failing page
// is recorded in the Report and does not stop the others. Converter is safe
// for concurrent use.
package docs2md
