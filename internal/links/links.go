// Package links rewrites documentation-export links into relative Markdown
// file links and maps export routes onto output files.
//
// Export routes are absolute paths beneath the DocsBase sentinel, such as
// "/DOCS-BASE/reference/foundations/calc/". A page written for that route is
// placed at "reference/foundations/calc.md", so a link from a page at depth
// d climbs d directories before descending to the target.
package links

import "strings"

// DocsBase is the sentinel prefix of every internal route in the export.
const DocsBase = "/DOCS-BASE/"

// indexName is the file stem used for the root route.
const indexName = "index"

// externalPrefixes are passed through untouched.
var externalPrefixes = []string{"http://", "https://", "mailto:", "tel:", "#"}

// Rewrite converts an internal documentation link into a relative Markdown
// link for a page at the given depth. External links, anchors and hrefs
// outside DocsBase are returned unchanged, as are paths containing "..".
//
//	Rewrite("/DOCS-BASE/tutorial/", 1)           -> "../tutorial.md"
//	Rewrite("/DOCS-BASE/a/b/?x=1#frag", 0)       -> "a/b.md?x=1#frag"
//	Rewrite("https://typst.app", 3)              -> "https://typst.app"
func Rewrite(href string, depth int) string {
	for _, p := range externalPrefixes {
		if strings.HasPrefix(href, p) {
			return href
		}
	}

	rest, ok := strings.CutPrefix(href, DocsBase)
	if !ok {
		return href
	}

	path, fragment, hasFragment := strings.Cut(rest, "#")
	path, query, hasQuery := strings.Cut(path, "?")

	if strings.Contains(path, "..") {
		return href
	}

	var sb strings.Builder
	if depth > 0 {
		sb.WriteString(strings.Repeat("../", depth))
	}
	sb.WriteString(stem(path))
	sb.WriteString(".md")
	if hasQuery {
		sb.WriteByte('?')
		sb.WriteString(query)
	}
	if hasFragment {
		sb.WriteByte('#')
		sb.WriteString(fragment)
	}
	return sb.String()
}

// stem maps a route path relative to DocsBase onto its file stem.
func stem(path string) string {
	if path == "" || path == "/" {
		return indexName
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return indexName
	}
	return trimmed
}

// StripBase removes the DocsBase prefix from a route. Routes without the
// prefix are returned as-is with ok set to false.
func StripBase(route string) (rest string, ok bool) {
	return strings.CutPrefix(route, DocsBase)
}

// RouteDepth returns the directory depth of the page written for route:
// the number of "/" left once DocsBase and trailing slashes are removed.
//
//	RouteDepth("/DOCS-BASE/")                   -> 0
//	RouteDepth("/DOCS-BASE/tutorial/")          -> 0
//	RouteDepth("/DOCS-BASE/reference/styling/") -> 1
func RouteDepth(route string) int {
	rest, _ := StripBase(route)
	rest = strings.TrimRight(rest, "/")
	return strings.Count(rest, "/")
}

// RelativePath returns the slash-separated output file path for route,
// consistent with the targets produced by Rewrite.
//
//	RelativePath("/DOCS-BASE/")                -> "index.md"
//	RelativePath("/DOCS-BASE/tutorial/basics/") -> "tutorial/basics.md"
func RelativePath(route string) string {
	rest, _ := StripBase(route)
	rest, _, _ = strings.Cut(rest, "#")
	rest, _, _ = strings.Cut(rest, "?")
	return stem(strings.TrimLeft(rest, "/")) + ".md"
}
