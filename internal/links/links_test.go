package links

// Notes:
// - Rewrite and RouteDepth must agree with RelativePath: a link produced for a
//   page at RouteDepth(from) must resolve to RelativePath(to) relative to the
//   directory of RelativePath(from). TestRewrite_ResolvesToWrittenFile checks that.

import (
	"path"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRewrite - Link Rewriting
// ---------------------------------------------------------------------------

func TestRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		href  string
		depth int
		want  string
	}{
		{"https passthrough", "https://typst.app/docs", 1, "https://typst.app/docs"},
		{"http passthrough", "http://example.com", 2, "http://example.com"},
		{"mailto passthrough", "mailto:a@b.c", 1, "mailto:a@b.c"},
		{"tel passthrough", "tel:+33123", 1, "tel:+33123"},
		{"anchor passthrough", "#section", 3, "#section"},
		{"foreign absolute path passthrough", "/other/page/", 1, "/other/page/"},
		{"relative path passthrough", "page.html", 1, "page.html"},
		{"root at depth 1", "/DOCS-BASE/", 1, "../index.md"},
		{"root at depth 0", "/DOCS-BASE/", 0, "index.md"},
		{"page at depth 1", "/DOCS-BASE/tutorial/", 1, "../tutorial.md"},
		{"page at depth 0", "/DOCS-BASE/tutorial/", 0, "tutorial.md"},
		{"nested page at depth 2", "/DOCS-BASE/reference/text/raw/", 2, "../../reference/text/raw.md"},
		{"no trailing slash", "/DOCS-BASE/reference/text", 0, "reference/text.md"},
		{"fragment kept", "/DOCS-BASE/reference/text/#parameters", 1, "../reference/text.md#parameters"},
		{"query kept", "/DOCS-BASE/search/?q=raw", 0, "search.md?q=raw"},
		{"query and fragment", "/DOCS-BASE/a/?q=1#f", 1, "../a.md?q=1#f"},
		{"fragment on root", "/DOCS-BASE/#intro", 0, "index.md#intro"},
		{"dot dot unchanged", "/DOCS-BASE/../etc/passwd", 1, "/DOCS-BASE/../etc/passwd"},
		{"dot dot mid path unchanged", "/DOCS-BASE/a/../b/", 0, "/DOCS-BASE/a/../b/"},
		{"negative depth treated as zero", "/DOCS-BASE/a/", -1, "a.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Rewrite(tt.href, tt.depth); got != tt.want {
				t.Errorf("Rewrite(%q, %d) = %q, want %q", tt.href, tt.depth, got, tt.want)
			}
		})
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	t.Parallel()

	hrefs := []string{
		"/DOCS-BASE/",
		"/DOCS-BASE/tutorial/",
		"/DOCS-BASE/reference/text/#params",
		"https://typst.app",
		"#top",
	}
	for _, h := range hrefs {
		once := Rewrite(h, 2)
		if twice := Rewrite(once, 2); twice != once {
			t.Errorf("Rewrite not idempotent for %q: %q then %q", h, once, twice)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRouteDepth / TestRelativePath - Route Mapping
// ---------------------------------------------------------------------------

func TestRouteDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		route string
		want  int
	}{
		{"/DOCS-BASE/", 0},
		{"/DOCS-BASE/tutorial/", 0},
		{"/DOCS-BASE/tutorial", 0},
		{"/DOCS-BASE/reference/styling/", 1},
		{"/DOCS-BASE/reference/foundations/calc/", 2},
		{"guides/page/", 1},
	}
	for _, tt := range tests {
		if got := RouteDepth(tt.route); got != tt.want {
			t.Errorf("RouteDepth(%q) = %d, want %d", tt.route, got, tt.want)
		}
	}
}

func TestRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		route string
		want  string
	}{
		{"/DOCS-BASE/", "index.md"},
		{"/DOCS-BASE/tutorial/", "tutorial.md"},
		{"/DOCS-BASE/tutorial/basics/", "tutorial/basics.md"},
		{"/DOCS-BASE/reference/text/#x", "reference/text.md"},
		{"reference", "reference.md"},
	}
	for _, tt := range tests {
		if got := RelativePath(tt.route); got != tt.want {
			t.Errorf("RelativePath(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
}

func TestRewrite_ResolvesToWrittenFile(t *testing.T) {
	t.Parallel()

	routes := []string{
		"/DOCS-BASE/",
		"/DOCS-BASE/tutorial/",
		"/DOCS-BASE/tutorial/basics/",
		"/DOCS-BASE/reference/foundations/calc/",
	}
	for _, from := range routes {
		for _, to := range routes {
			link := Rewrite(to, RouteDepth(from))
			resolved := path.Join(path.Dir(RelativePath(from)), link)
			if resolved != RelativePath(to) {
				t.Errorf("link from %s to %s resolves to %q, want %q", from, to, resolved, RelativePath(to))
			}
		}
	}
}

func TestStripBase(t *testing.T) {
	t.Parallel()

	if rest, ok := StripBase("/DOCS-BASE/a/"); !ok || rest != "a/" {
		t.Errorf("StripBase = (%q, %v), want (\"a/\", true)", rest, ok)
	}
	if rest, ok := StripBase("/x/"); ok || rest != "/x/" {
		t.Errorf("StripBase = (%q, %v), want (\"/x/\", false)", rest, ok)
	}
}
