package htmlconv

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-docs2md/internal/links"
	"github.com/alnah/go-docs2md/internal/mdast"
)

// droppedElements are skipped together with their subtree.
var droppedElements = map[atom.Atom]bool{
	atom.Script: true,
	atom.Iframe: true,
	atom.Object: true,
	atom.Embed:  true,
	atom.Style:  true,
	atom.Link:   true,
	atom.Head:   true,
}

var headingDepth = map[atom.Atom]int{
	atom.H1: 1,
	atom.H2: 2,
	atom.H3: 3,
	atom.H4: 4,
	atom.H5: 5,
	atom.H6: 6,
}

// Convert parses htmlContent and returns its syntax tree. Internal links are
// rewritten for a page located depth directories below the output root.
func Convert(htmlContent string, depth int) (*mdast.Root, error) {
	doc, err := parseHTML(htmlContent)
	if err != nil {
		return nil, err
	}

	c := newConverter(depth)
	c.walkChildren(doc)
	return c.finish(), nil
}

// frame is one level of the container stack.
type frame struct {
	blocks []mdast.Node
	para   []mdast.Node
	open   bool
	inline bool // inline frames keep edge whitespace for the caller to hoist
}

type converter struct {
	depth int
	stack []*frame
}

func newConverter(depth int) *converter {
	return &converter{depth: depth, stack: []*frame{{}}}
}

func (c *converter) top() *frame { return c.stack[len(c.stack)-1] }

func (c *converter) push(inline bool) {
	c.stack = append(c.stack, &frame{inline: inline})
}

func (c *converter) pop() *frame {
	c.endParagraph()
	f := c.top()
	c.stack = c.stack[:len(c.stack)-1]
	return f
}

// finish flushes the document frame and returns the root.
func (c *converter) finish() *mdast.Root {
	c.endParagraph()
	return &mdast.Root{Children: c.stack[0].blocks}
}

func (c *converter) startParagraph() {
	f := c.top()
	if !f.open {
		f.open = true
		f.para = nil
	}
}

// endParagraph flushes the open paragraph, if any, into the frame's blocks.
// Paragraphs left empty after trimming are discarded.
func (c *converter) endParagraph() {
	f := c.top()
	if !f.open {
		return
	}
	children := f.para
	if !f.inline {
		children, _, _ = trimInline(children)
	}
	f.open = false
	f.para = nil
	if len(children) > 0 {
		f.blocks = append(f.blocks, &mdast.Paragraph{Children: children})
	}
}

func (c *converter) pushBlock(n mdast.Node) {
	c.endParagraph()
	f := c.top()
	f.blocks = append(f.blocks, n)
}

func (c *converter) pushInline(n mdast.Node) {
	c.startParagraph()
	f := c.top()
	f.para = appendInline(f.para, n)
}

// pushText adds collapsed text to the open paragraph. Whitespace-only text
// never opens a paragraph; it only separates content already present.
func (c *converter) pushText(s string) {
	s = collapseSpace(s)
	if strings.TrimSpace(s) == "" {
		f := c.top()
		if f.open && len(f.para) > 0 {
			f.para = appendInline(f.para, &mdast.Text{Value: " "})
		}
		return
	}
	c.pushInline(&mdast.Text{Value: s})
}

// blockChildren converts the children of n inside a fresh container frame.
func (c *converter) blockChildren(n *html.Node) []mdast.Node {
	c.push(false)
	c.walkChildren(n)
	return c.pop().blocks
}

// inlineChildren converts the children of n into inline nodes only.
func (c *converter) inlineChildren(n *html.Node) []mdast.Node {
	c.push(true)
	c.walkChildren(n)
	f := c.pop()
	return flattenInline(f.blocks)
}

// pushWrapped emits an inline container built from children, moving edge
// whitespace outside of it so "a<em> b </em>c" keeps its word breaks.
func (c *converter) pushWrapped(children []mdast.Node, wrap func([]mdast.Node) mdast.Node) {
	children, lead, trail := trimInline(children)
	if len(children) == 0 {
		if lead || trail {
			c.pushText(" ")
		}
		return
	}
	if lead {
		c.pushText(" ")
	}
	c.pushInline(wrap(children))
	if trail {
		c.pushText(" ")
	}
}

func (c *converter) walkChildren(n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walk(child)
	}
}

func (c *converter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.pushText(n.Data)
		return
	case html.DocumentNode:
		c.walkChildren(n)
		return
	case html.ElementNode:
	default:
		return
	}

	if droppedElements[n.DataAtom] {
		return
	}
	if depth, ok := headingDepth[n.DataAtom]; ok {
		c.heading(n, depth)
		return
	}

	switch n.DataAtom {
	case atom.P:
		c.endParagraph()
		c.startParagraph()
		c.walkChildren(n)
		c.endParagraph()
	case atom.Pre:
		c.pushBlock(&mdast.Code{Value: codeBlockText(n)})
	case atom.A:
		c.anchor(n)
	case atom.Ul, atom.Ol:
		c.list(n, n.DataAtom == atom.Ol)
	case atom.Blockquote:
		c.endParagraph()
		if children := c.blockChildren(n); len(children) > 0 {
			c.pushBlock(&mdast.Blockquote{Children: children})
		}
	case atom.Code:
		if v := strings.NewReplacer("\r\n", " ", "\n", " ").Replace(rawText(n)); v != "" {
			c.pushInline(&mdast.InlineCode{Value: v})
		}
	case atom.Em, atom.I:
		c.pushWrapped(c.inlineChildren(n), func(ch []mdast.Node) mdast.Node {
			return &mdast.Emphasis{Children: ch}
		})
	case atom.Strong, atom.B:
		c.pushWrapped(c.inlineChildren(n), func(ch []mdast.Node) mdast.Node {
			return &mdast.Strong{Children: ch}
		})
	case atom.Table:
		c.endParagraph()
		if t := c.table(n); len(t.Rows) > 0 {
			c.pushBlock(t)
		}
	case atom.Br:
		c.pushText(" ")
	default:
		c.walkChildren(n)
	}
}

func (c *converter) heading(n *html.Node, depth int) {
	c.endParagraph()
	children, _, _ := trimInline(c.inlineChildren(n))
	if len(children) == 0 {
		return
	}
	c.pushBlock(&mdast.Heading{Depth: depth, Children: children})
}

func (c *converter) anchor(n *html.Node) {
	url := "#"
	if href, ok := attr(n, "href"); ok {
		url = links.Rewrite(href, c.depth)
	}
	c.pushWrapped(c.inlineChildren(n), func(ch []mdast.Node) mdast.Node {
		return &mdast.Link{URL: url, Children: ch}
	})
}

func (c *converter) list(n *html.Node, ordered bool) {
	c.endParagraph()

	list := &mdast.List{Ordered: ordered}
	if ordered {
		list.Start = 1
		if s, ok := attr(n, "start"); ok {
			if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && v >= 0 {
				list.Start = v
			}
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || child.DataAtom != atom.Li {
			continue
		}
		list.Items = append(list.Items, &mdast.ListItem{Children: c.blockChildren(child)})
	}

	if len(list.Items) > 0 {
		c.pushBlock(list)
	}
}

func (c *converter) table(n *html.Node) *mdast.Table {
	t := &mdast.Table{}
	var first []*html.Node

	addRow := func(tr *html.Node) {
		row, cells := c.tableRow(tr)
		if len(t.Rows) == 0 {
			first = cells
		}
		t.Rows = append(t.Rows, row)
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		switch child.DataAtom {
		case atom.Thead, atom.Tbody, atom.Tfoot:
			for tr := child.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.DataAtom == atom.Tr {
					addRow(tr)
				}
			}
		case atom.Tr:
			addRow(child)
		}
	}

	columns := 0
	for _, r := range t.Rows {
		columns = max(columns, len(r.Cells))
	}
	t.Align = make([]mdast.Align, columns)
	for i, cell := range first {
		t.Align[i] = cellAlign(cell)
	}
	return t
}

// tableRow converts a <tr>, returning the row and its cell elements.
func (c *converter) tableRow(tr *html.Node) (*mdast.TableRow, []*html.Node) {
	row := &mdast.TableRow{}
	var elems []*html.Node
	for cell := tr.FirstChild; cell != nil; cell = cell.NextSibling {
		if cell.Type != html.ElementNode || (cell.DataAtom != atom.Td && cell.DataAtom != atom.Th) {
			continue
		}
		children, _, _ := trimInline(c.inlineChildren(cell))
		if len(children) == 0 {
			children = []mdast.Node{&mdast.Text{Value: ""}}
		}
		row.Cells = append(row.Cells, &mdast.TableCell{Children: children})
		elems = append(elems, cell)
	}
	return row, elems
}

// cellAlign reads the align attribute, then an inline text-align style.
func cellAlign(n *html.Node) mdast.Align {
	if v, ok := attr(n, "align"); ok {
		return mdast.ParseAlign(v)
	}
	style, _ := attr(n, "style")
	for _, decl := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(prop), "text-align") {
			return mdast.ParseAlign(val)
		}
	}
	return mdast.AlignNone
}

// codeBlockText returns the verbatim text of a <pre> without trailing newlines.
func codeBlockText(n *html.Node) string {
	return strings.TrimRight(strings.ReplaceAll(rawText(n), "\r\n", "\n"), "\n")
}
