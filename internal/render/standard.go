package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-docs2md/internal/mdast"
)

// Renderer renders a single node into a structural Result.
type Renderer interface {
	Render(n mdast.Node) (Result, error)
}

// StandardRenderer serializes any node with general Markdown rules. It is
// the fallback for node kinds without a dedicated renderer and the delegate
// fast renderers use for children they do not handle themselves.
//
// Unlike the fast renderers it is strict: block content inside phrasing
// content, heading depths outside 1-6, and list items, rows or cells
// rendered outside their container are errors.
type StandardRenderer struct{}

var _ Renderer = (*StandardRenderer)(nil)

// Render returns Inline for phrasing content and Block for everything else.
func (r *StandardRenderer) Render(n mdast.Node) (Result, error) {
	if mdast.IsInline(n) {
		s, err := r.inline(n)
		if err != nil {
			return nil, err
		}
		return Inline(s), nil
	}
	lines, err := r.blockLines(n)
	if err != nil {
		return nil, err
	}
	return Block(lines), nil
}

// blockLines renders n as lines; sibling blocks are separated by one blank line.
func (r *StandardRenderer) blockLines(n mdast.Node) ([]string, error) {
	switch v := n.(type) {
	case *mdast.Root:
		return r.blocks(v.Children)
	case *mdast.Paragraph:
		s, err := r.inlines(v.Children)
		if err != nil {
			return nil, err
		}
		return []string{escapeLineStart(s)}, nil
	case *mdast.Heading:
		if v.Depth < 1 || v.Depth > 6 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidHeading, v.Depth)
		}
		s, err := r.inlines(v.Children)
		if err != nil {
			return nil, err
		}
		return []string{strings.Repeat("#", v.Depth) + " " + s}, nil
	case *mdast.Code:
		fence := codeFence(v.Value)
		lines := []string{fence}
		if v.Value != "" {
			lines = append(lines, strings.Split(v.Value, "\n")...)
		}
		return append(lines, fence), nil
	case *mdast.List:
		return r.list(v)
	case *mdast.Blockquote:
		inner, err := r.blocks(v.Children)
		if err != nil {
			return nil, err
		}
		return quote(inner), nil
	case *mdast.Table:
		t, err := tableResult(v)
		if err != nil {
			return nil, err
		}
		return t.lines(), nil
	case *mdast.ListItem, *mdast.TableRow, *mdast.TableCell:
		return nil, fmt.Errorf("%w: %s outside its container", ErrUnsupportedNode, n.Kind())
	case nil:
		return nil, fmt.Errorf("%w: nil node", ErrUnsupportedNode)
	default:
		s, err := r.inline(n)
		if err != nil {
			return nil, err
		}
		return []string{escapeLineStart(s)}, nil
	}
}

func (r *StandardRenderer) blocks(nodes []mdast.Node) ([]string, error) {
	var out []string
	for _, c := range nodes {
		lines, err := r.blockLines(c)
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, lines...)
	}
	return out, nil
}

func (r *StandardRenderer) list(l *mdast.List) ([]string, error) {
	var out []string
	for i, item := range l.Items {
		body, err := itemBody(item.Children, r.blockLines)
		if err != nil {
			return nil, err
		}
		out = append(out, itemLines(listMarker(l, i), body)...)
	}
	return out, nil
}

func (r *StandardRenderer) inlines(nodes []mdast.Node) (string, error) {
	var sb strings.Builder
	for _, n := range nodes {
		s, err := r.inline(n)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func (r *StandardRenderer) inline(n mdast.Node) (string, error) {
	switch v := n.(type) {
	case *mdast.Text:
		return escapeText(v.Value), nil
	case *mdast.InlineCode:
		return codeSpan(v.Value), nil
	case *mdast.Emphasis:
		s, err := r.inlines(v.Children)
		return "*" + s + "*", err
	case *mdast.Strong:
		s, err := r.inlines(v.Children)
		return "**" + s + "**", err
	case *mdast.Link:
		s, err := r.inlines(v.Children)
		return "[" + s + "](" + destination(v.URL) + ")", err
	case nil:
		return "", fmt.Errorf("%w: nil node", ErrUnsupportedNode)
	default:
		return "", fmt.Errorf("%w: %s in phrasing content", ErrUnsupportedNode, n.Kind())
	}
}

// itemBody joins the rendered children of a list item. A nested list right
// after the leading paragraph stays tight; any other child is preceded by a
// blank line so it cannot continue the line before it.
func itemBody(children []mdast.Node, renderChild func(mdast.Node) ([]string, error)) ([]string, error) {
	var body []string
	for i, child := range children {
		lines, err := renderChild(child)
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			continue
		}
		if len(body) > 0 && !tightAfterLead(children, i) {
			body = append(body, "")
		}
		body = append(body, lines...)
	}
	return body, nil
}

func tightAfterLead(children []mdast.Node, i int) bool {
	if i != 1 {
		return false
	}
	_, lead := children[0].(*mdast.Paragraph)
	_, list := children[1].(*mdast.List)
	return lead && list
}

// listMarker returns "- " or "N. " for item i of l.
func listMarker(l *mdast.List, i int) string {
	if !l.Ordered {
		return "- "
	}
	return strconv.Itoa(l.Start+i) + ". "
}

// itemLines prefixes the first body line with marker and indents the rest
// to the marker's width so nested content stays inside the item.
func itemLines(marker string, body []string) []string {
	if len(body) == 0 {
		return []string{strings.TrimRight(marker, " ")}
	}
	pad := strings.Repeat(" ", len(marker))
	out := make([]string, 0, len(body))
	for j, line := range body {
		switch {
		case j == 0:
			out = append(out, marker+line)
		case line == "":
			out = append(out, "")
		default:
			out = append(out, pad+line)
		}
	}
	return out
}

// quote prefixes every line with "> ", using a bare ">" for blank lines.
func quote(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if l == "" {
			out[i] = ">"
			continue
		}
		out[i] = "> " + l
	}
	return out
}
