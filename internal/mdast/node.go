package mdast

import "strings"

// Kind identifies the concrete type of a Node.
type Kind int

// Node kinds.
const (
	KindRoot Kind = iota
	KindHeading
	KindParagraph
	KindText
	KindCode
	KindInlineCode
	KindLink
	KindList
	KindListItem
	KindBlockquote
	KindEmphasis
	KindStrong
	KindTable
	KindTableRow
	KindTableCell
)

var kindNames = [...]string{
	KindRoot:       "root",
	KindHeading:    "heading",
	KindParagraph:  "paragraph",
	KindText:       "text",
	KindCode:       "code",
	KindInlineCode: "inlineCode",
	KindLink:       "link",
	KindList:       "list",
	KindListItem:   "listItem",
	KindBlockquote: "blockquote",
	KindEmphasis:   "emphasis",
	KindStrong:     "strong",
	KindTable:      "table",
	KindTableRow:   "tableRow",
	KindTableCell:  "tableCell",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Align is the horizontal alignment of a table column.
type Align int

// Column alignments.
const (
	AlignNone Align = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// ParseAlign maps an HTML align value ("left", "right", "center") to Align.
func ParseAlign(s string) Align {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "start":
		return AlignLeft
	case "right", "end":
		return AlignRight
	case "center":
		return AlignCenter
	default:
		return AlignNone
	}
}

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	node()
}

// Parent is implemented by nodes holding a generic child sequence.
type Parent interface {
	Node
	ChildNodes() []Node
}

// Root is the top of a converted document.
type Root struct {
	Children []Node
}

// Heading is an ATX heading; Depth is 1 through 6.
type Heading struct {
	Depth    int
	Children []Node
}

type Paragraph struct {
	Children []Node
}

type Text struct {
	Value string
}

// Code is a fenced code block. The converter never records a language.
type Code struct {
	Value string
}

type InlineCode struct {
	Value string
}

// Link holds an already rewritten destination.
type Link struct {
	URL      string
	Children []Node
}

// List is ordered when Ordered is set; Start is the first item number.
type List struct {
	Ordered bool
	Start   int
	Items   []*ListItem
}

type ListItem struct {
	Children []Node
}

type Blockquote struct {
	Children []Node
}

type Emphasis struct {
	Children []Node
}

type Strong struct {
	Children []Node
}

// Table is a grid of rows; Align has one entry per column.
type Table struct {
	Rows  []*TableRow
	Align []Align
}

type TableRow struct {
	Cells []*TableCell
}

// TableCell holds inline content only.
type TableCell struct {
	Children []Node
}

func (*Root) Kind() Kind       { return KindRoot }
func (*Heading) Kind() Kind    { return KindHeading }
func (*Paragraph) Kind() Kind  { return KindParagraph }
func (*Text) Kind() Kind       { return KindText }
func (*Code) Kind() Kind       { return KindCode }
func (*InlineCode) Kind() Kind { return KindInlineCode }
func (*Link) Kind() Kind       { return KindLink }
func (*List) Kind() Kind       { return KindList }
func (*ListItem) Kind() Kind   { return KindListItem }
func (*Blockquote) Kind() Kind { return KindBlockquote }
func (*Emphasis) Kind() Kind   { return KindEmphasis }
func (*Strong) Kind() Kind     { return KindStrong }
func (*Table) Kind() Kind      { return KindTable }
func (*TableRow) Kind() Kind   { return KindTableRow }
func (*TableCell) Kind() Kind  { return KindTableCell }

func (*Root) node()       {}
func (*Heading) node()    {}
func (*Paragraph) node()  {}
func (*Text) node()       {}
func (*Code) node()       {}
func (*InlineCode) node() {}
func (*Link) node()       {}
func (*List) node()       {}
func (*ListItem) node()   {}
func (*Blockquote) node() {}
func (*Emphasis) node()   {}
func (*Strong) node()     {}
func (*Table) node()      {}
func (*TableRow) node()   {}
func (*TableCell) node()  {}

func (n *Root) ChildNodes() []Node       { return n.Children }
func (n *Heading) ChildNodes() []Node    { return n.Children }
func (n *Paragraph) ChildNodes() []Node  { return n.Children }
func (n *Link) ChildNodes() []Node       { return n.Children }
func (n *ListItem) ChildNodes() []Node   { return n.Children }
func (n *Blockquote) ChildNodes() []Node { return n.Children }
func (n *Emphasis) ChildNodes() []Node   { return n.Children }
func (n *Strong) ChildNodes() []Node     { return n.Children }
func (n *TableCell) ChildNodes() []Node  { return n.Children }

// Compile-time interface checks.
var (
	_ Parent = (*Root)(nil)
	_ Parent = (*Heading)(nil)
	_ Parent = (*Paragraph)(nil)
	_ Parent = (*Link)(nil)
	_ Parent = (*ListItem)(nil)
	_ Parent = (*Blockquote)(nil)
	_ Parent = (*Emphasis)(nil)
	_ Parent = (*Strong)(nil)
	_ Parent = (*TableCell)(nil)
	_ Node   = (*Text)(nil)
	_ Node   = (*Code)(nil)
	_ Node   = (*InlineCode)(nil)
	_ Node   = (*List)(nil)
	_ Node   = (*Table)(nil)
	_ Node   = (*TableRow)(nil)
)
