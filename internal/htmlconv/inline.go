package htmlconv

import (
	"strings"

	"github.com/alnah/go-docs2md/internal/mdast"
)

// appendInline appends n to nodes, merging adjacent text and never
// producing two consecutive spaces across the join.
func appendInline(nodes []mdast.Node, n mdast.Node) []mdast.Node {
	text, ok := n.(*mdast.Text)
	if !ok {
		return append(nodes, n)
	}
	if text.Value == "" {
		return nodes
	}
	if len(nodes) == 0 {
		return append(nodes, &mdast.Text{Value: text.Value})
	}
	last, ok := nodes[len(nodes)-1].(*mdast.Text)
	if !ok {
		if text.Value == " " && endsWithSpace(nodes[len(nodes)-1]) {
			return nodes
		}
		return append(nodes, &mdast.Text{Value: text.Value})
	}
	v := text.Value
	if strings.HasSuffix(last.Value, " ") {
		v = strings.TrimLeft(v, " ")
	}
	last.Value += v
	return nodes
}

// endsWithSpace reports whether an inline node's rendered text ends in a space.
func endsWithSpace(n mdast.Node) bool {
	if t, ok := n.(*mdast.Text); ok {
		return strings.HasSuffix(t.Value, " ")
	}
	return false
}

// trimInline removes leading and trailing spaces from the edge text nodes,
// dropping text nodes that become empty. lead and trail report whether
// anything was removed at either end.
func trimInline(nodes []mdast.Node) (out []mdast.Node, lead, trail bool) {
	out = nodes
	for len(out) > 0 {
		t, ok := out[0].(*mdast.Text)
		if !ok {
			break
		}
		v := strings.TrimLeft(t.Value, " ")
		if v != t.Value {
			lead = true
		}
		if v != "" {
			out[0] = &mdast.Text{Value: v}
			break
		}
		out = out[1:]
	}
	for len(out) > 0 {
		t, ok := out[len(out)-1].(*mdast.Text)
		if !ok {
			break
		}
		v := strings.TrimRight(t.Value, " ")
		if v != t.Value {
			trail = true
		}
		if v != "" {
			out[len(out)-1] = &mdast.Text{Value: v}
			break
		}
		out = out[:len(out)-1]
	}
	return out, lead, trail
}

// flattenInline turns block nodes collected in an inline context back into
// inline content, separating former blocks with a single space.
func flattenInline(blocks []mdast.Node) []mdast.Node {
	var out []mdast.Node
	for i, b := range blocks {
		if i > 0 {
			out = appendInline(out, &mdast.Text{Value: " "})
		}
		for _, n := range inlineOf(b) {
			out = appendInline(out, n)
		}
	}
	return out
}

func inlineOf(n mdast.Node) []mdast.Node {
	switch v := n.(type) {
	case *mdast.Paragraph:
		return v.Children
	case *mdast.Heading:
		return v.Children
	case *mdast.Code:
		return []mdast.Node{&mdast.InlineCode{Value: strings.ReplaceAll(v.Value, "\n", " ")}}
	case *mdast.List:
		var parts []mdast.Node
		for _, it := range v.Items {
			parts = append(parts, &mdast.Paragraph{Children: flattenInline(it.Children)})
		}
		return flattenInline(parts)
	case *mdast.Blockquote:
		return flattenInline(v.Children)
	case *mdast.Table:
		var parts []mdast.Node
		for _, r := range v.Rows {
			for _, cell := range r.Cells {
				parts = append(parts, &mdast.Paragraph{Children: cell.Children})
			}
		}
		return flattenInline(parts)
	default:
		if mdast.IsInline(n) {
			return []mdast.Node{n}
		}
		return nil
	}
}
