package render

import (
	"strconv"
	"strings"

	"github.com/alnah/go-docs2md/internal/mdast"
)

// PlainText extracts the text of n with light Markdown decoration. It never
// fails and keeps all literal text, so it serves as the degraded output
// when structured rendering returns an error.
func PlainText(n mdast.Node) string {
	switch v := n.(type) {
	case *mdast.Root:
		return joinPlain(v.Children, "\n\n")
	case *mdast.Paragraph:
		return joinPlain(v.Children, "")
	case *mdast.Text:
		return v.Value
	case *mdast.Heading:
		return strings.Repeat("#", max(v.Depth, 1)) + " " + joinPlain(v.Children, "")
	case *mdast.Code:
		return "```\n" + v.Value + "\n```"
	case *mdast.InlineCode:
		return "`" + v.Value + "`"
	case *mdast.Link:
		return "[" + joinPlain(v.Children, "") + "](" + v.URL + ")"
	case *mdast.List:
		lines := make([]string, len(v.Items))
		for i, item := range v.Items {
			bullet := "- "
			if v.Ordered {
				bullet = strconv.Itoa(v.Start+i) + ". "
			}
			lines[i] = bullet + PlainText(item)
		}
		return strings.Join(lines, "\n")
	case *mdast.ListItem:
		return joinPlain(v.Children, "\n")
	case *mdast.Blockquote:
		text := joinPlain(v.Children, "\n")
		return "> " + strings.ReplaceAll(text, "\n", "\n> ")
	case *mdast.Emphasis:
		return "*" + joinPlain(v.Children, "") + "*"
	case *mdast.Strong:
		return "**" + joinPlain(v.Children, "") + "**"
	case *mdast.Table:
		rows := make([]string, len(v.Rows))
		for i, r := range v.Rows {
			rows[i] = PlainText(r)
		}
		return strings.Join(rows, "\n")
	case *mdast.TableRow:
		cells := make([]string, len(v.Cells))
		for i, c := range v.Cells {
			cells[i] = PlainText(c)
		}
		return strings.Join(cells, " | ")
	case *mdast.TableCell:
		return joinPlain(v.Children, "")
	default:
		return ""
	}
}

func joinPlain(nodes []mdast.Node, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = PlainText(n)
	}
	return strings.Join(parts, sep)
}
