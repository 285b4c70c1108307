package docs2md

import (
	"strings"

	"github.com/alnah/go-docs2md/internal/mdast"
	"github.com/alnah/go-docs2md/internal/render"
)

// ConvertPage converts a prose page. A leading level-one heading whose text
// equals title (ignoring case and surrounding space) is dropped, since the
// title is already carried by the page frontmatter.
func (c *Converter) ConvertPage(htmlContent string, depth int, title string) (string, error) {
	root, err := c.parse(htmlContent, depth)
	if err != nil {
		return "", err
	}
	stripTitleHeading(root, title)
	return c.render(root), nil
}

func stripTitleHeading(root *mdast.Root, title string) {
	if len(root.Children) == 0 {
		return
	}
	h, ok := root.Children[0].(*mdast.Heading)
	if !ok || h.Depth != 1 {
		return
	}
	want := strings.ToLower(strings.TrimSpace(title))
	got := strings.ToLower(strings.TrimSpace(mdast.TextContent(h)))
	if got == want {
		root.Children = root.Children[1:]
	}
}

// sections accumulates the blocks of a generated body.
type sections struct {
	parts []render.Result
}

// add appends text as one block. Blank text is ignored.
func (s *sections) add(text string) {
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		return
	}
	s.parts = append(s.parts, render.Block{text})
}

// heading appends an ATX heading of the given level.
func (s *sections) heading(level int, text string) {
	s.add(strings.Repeat("#", level) + " " + text)
}

// table appends a GFM table; rows[0] is the header.
func (s *sections) table(rows [][]string) {
	if len(rows) < 2 {
		return
	}
	s.parts = append(s.parts, render.Table{Rows: rows})
}

func (s *sections) String() string {
	return render.Compose(s.parts)
}
