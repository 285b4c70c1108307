package mdast

import "strings"

// IsInline reports whether n is phrasing content.
func IsInline(n Node) bool {
	switch n.(type) {
	case *Text, *InlineCode, *Link, *Emphasis, *Strong:
		return true
	default:
		return false
	}
}

// Children returns the direct children of n in document order.
// Lists, tables and rows expose their items, rows and cells.
func Children(n Node) []Node {
	switch v := n.(type) {
	case Parent:
		return v.ChildNodes()
	case *List:
		out := make([]Node, len(v.Items))
		for i, it := range v.Items {
			out[i] = it
		}
		return out
	case *Table:
		out := make([]Node, len(v.Rows))
		for i, r := range v.Rows {
			out[i] = r
		}
		return out
	case *TableRow:
		out := make([]Node, len(v.Cells))
		for i, c := range v.Cells {
			out[i] = c
		}
		return out
	default:
		return nil
	}
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the node just visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 0
	Walk(n, func(Node) bool {
		total++
		return true
	})
	return total
}

// TextContent concatenates the literal text below n, ignoring all markup.
func TextContent(n Node) string {
	var sb strings.Builder
	Walk(n, func(c Node) bool {
		switch v := c.(type) {
		case *Text:
			sb.WriteString(v.Value)
		case *InlineCode:
			sb.WriteString(v.Value)
		case *Code:
			sb.WriteString(v.Value)
		}
		return true
	})
	return sb.String()
}
