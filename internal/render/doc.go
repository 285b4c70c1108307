// Package render turns mdast trees into Markdown text.
//
// Renderers never produce final text directly. Each one returns a Result
// describing the shape of its output (inline text, block lines, or a table
// grid) and Compose assembles a sequence of results, owning all spacing
// between blocks and all table padding. This keeps block separation
// consistent no matter which renderer produced a block.
//
// Composite dispatches nodes to the fast renderers for the common block
// kinds, to the structural table renderer for tables, and to the standard
// renderer for everything else. PlainText is the last-resort extractor used
// when structured rendering fails.
package render
