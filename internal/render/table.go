package render

import (
	"fmt"
	"strings"

	"github.com/alnah/go-docs2md/internal/mdast"
)

// TableRenderer renders tables structurally: each cell's inline content is
// flattened to a string and the grid is returned as a Table result, leaving
// padding and delimiter layout to Compose.
type TableRenderer struct{}

var _ Renderer = TableRenderer{}

func (TableRenderer) Render(n mdast.Node) (Result, error) {
	t, ok := n.(*mdast.Table)
	if !ok {
		return nil, fmt.Errorf("%w: table renderer got %s", ErrUnsupportedNode, kindOf(n))
	}
	return tableResult(t)
}

// tableResult flattens t into a rectangular grid with one alignment per column.
func tableResult(t *mdast.Table) (Table, error) {
	if len(t.Rows) == 0 {
		return Table{}, fmt.Errorf("%w: no rows", ErrInvalidTable)
	}

	columns := len(t.Align)
	for _, r := range t.Rows {
		columns = max(columns, len(r.Cells))
	}

	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		cells := make([]string, columns)
		for c, cell := range r.Cells {
			cells[c] = cellText(cell.Children)
		}
		rows[i] = cells
	}

	align := make([]mdast.Align, columns)
	copy(align, t.Align)

	return Table{Rows: rows, Align: align}, nil
}

// cellText flattens cell content to one line with pipes escaped.
func cellText(nodes []mdast.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		writeCell(&sb, n)
	}
	return strings.NewReplacer("\r\n", " ", "\n", " ").Replace(sb.String())
}

func writeCell(sb *strings.Builder, n mdast.Node) {
	switch v := n.(type) {
	case *mdast.Text:
		sb.WriteString(escapePipes(escapeText(v.Value)))
	case *mdast.InlineCode:
		sb.WriteString(codeSpan(escapePipes(v.Value)))
	case *mdast.Emphasis:
		sb.WriteString("*" + cellText(v.Children) + "*")
	case *mdast.Strong:
		sb.WriteString("**" + cellText(v.Children) + "**")
	case *mdast.Link:
		sb.WriteString("[" + cellText(v.Children) + "](" + destination(escapePipes(v.URL)) + ")")
	case *mdast.Paragraph:
		sb.WriteString(cellText(v.Children))
	}
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
