// Package gfm reads generated Markdown back with goldmark.
//
// Inspect reports the structure goldmark sees (headings, tables, lists,
// links), which is how conversions are checked against their source HTML.
// Verify applies the output contract to a generated page, and Previewer
// renders pages to highlighted HTML for review.
package gfm
