package render

import (
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-docs2md/internal/mdast"
)

// Result is the structural output of a renderer: Inline, Block or Table.
type Result interface {
	result()
}

// Inline is phrasing text concatenated directly with its neighbours.
type Inline string

// Block is a run of lines forming one block element, without trailing
// blank lines.
type Block []string

// Table is a rendered cell grid; the first row is the header.
type Table struct {
	Rows  [][]string
	Align []mdast.Align
}

func (Inline) result() {}
func (Block) result()  {}
func (Table) result()  {}

// minColumnWidth is the narrowest delimiter GFM accepts.
const minColumnWidth = 3

// Compose assembles results into Markdown. Inline results are concatenated
// as-is; every Block or Table is followed by one blank line unless it is the
// last result. Empty blocks and tables are skipped.
func Compose(results []Result) string {
	kept := make([]Result, 0, len(results))
	for _, r := range results {
		switch v := r.(type) {
		case Block:
			if len(v) == 0 {
				continue
			}
		case Table:
			if len(v.Rows) == 0 {
				continue
			}
		case nil:
			continue
		}
		kept = append(kept, r)
	}

	var sb strings.Builder
	for i, r := range kept {
		last := i == len(kept)-1
		switch v := r.(type) {
		case Inline:
			sb.WriteString(string(v))
			continue
		case Block:
			sb.WriteString(strings.Join(v, "\n"))
		case Table:
			sb.WriteString(strings.Join(v.lines(), "\n"))
		}
		if !last {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// lines formats the grid as a GFM table: header row, delimiter row, body.
// Short rows are padded with empty cells up to the widest row.
func (t Table) lines() []string {
	if len(t.Rows) == 0 {
		return nil
	}

	columns := 0
	for _, r := range t.Rows {
		columns = max(columns, len(r))
	}
	widths := make([]int, columns)
	for c := range widths {
		widths[c] = minColumnWidth
	}
	for _, r := range t.Rows {
		for c, cell := range r {
			widths[c] = max(widths[c], utf8.RuneCountInString(cell))
		}
	}

	out := make([]string, 0, len(t.Rows)+1)
	out = append(out, formatRow(t.Rows[0], widths))
	out = append(out, formatDelimiter(t.Align, widths))
	for _, r := range t.Rows[1:] {
		out = append(out, formatRow(r, widths))
	}
	return out
}

func formatRow(row []string, widths []int) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for c, w := range widths {
		cell := ""
		if c < len(row) {
			cell = row[c]
		}
		sb.WriteByte(' ')
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(cell)))
		sb.WriteString(" |")
	}
	return sb.String()
}

func formatDelimiter(align []mdast.Align, widths []int) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for c, w := range widths {
		a := mdast.AlignNone
		if c < len(align) {
			a = align[c]
		}
		dashes := strings.Repeat("-", w)
		switch a {
		case mdast.AlignLeft:
			sb.WriteString(" :" + dashes + " ")
		case mdast.AlignRight:
			sb.WriteString(" " + dashes + ": ")
		case mdast.AlignCenter:
			sb.WriteString(" :" + dashes + ": ")
		default:
			sb.WriteString(" " + dashes + " ")
		}
		sb.WriteByte('|')
	}
	return sb.String()
}
