package render

import (
	"fmt"
	"strings"

	"github.com/alnah/go-docs2md/internal/mdast"
)

// ParagraphRenderer renders a paragraph as a single line.
type ParagraphRenderer struct{}

func (ParagraphRenderer) Render(n mdast.Node) (Result, error) {
	p, ok := n.(*mdast.Paragraph)
	if !ok {
		return nil, fmt.Errorf("%w: paragraph renderer got %s", ErrUnsupportedNode, kindOf(n))
	}
	return Block{paragraphLine(p.Children)}, nil
}

// HeadingRenderer renders an ATX heading.
type HeadingRenderer struct{}

func (HeadingRenderer) Render(n mdast.Node) (Result, error) {
	h, ok := n.(*mdast.Heading)
	if !ok {
		return nil, fmt.Errorf("%w: heading renderer got %s", ErrUnsupportedNode, kindOf(n))
	}
	if h.Depth < 1 || h.Depth > 6 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeading, h.Depth)
	}
	return Block{strings.Repeat("#", h.Depth) + " " + inlineText(h.Children)}, nil
}

// ListRenderer renders ordered and unordered lists with nesting. Each
// paragraph of an item becomes one line and nested lists are indented under
// the item. Other block children go through the standard renderer.
type ListRenderer struct {
	Standard *StandardRenderer
}

func (r ListRenderer) Render(n mdast.Node) (Result, error) {
	l, ok := n.(*mdast.List)
	if !ok {
		return nil, fmt.Errorf("%w: list renderer got %s", ErrUnsupportedNode, kindOf(n))
	}
	lines, err := r.lines(l)
	if err != nil {
		return nil, err
	}
	return Block(lines), nil
}

func (r ListRenderer) lines(l *mdast.List) ([]string, error) {
	var out []string
	for i, item := range l.Items {
		body, err := itemBody(item.Children, r.child)
		if err != nil {
			return nil, err
		}
		out = append(out, itemLines(listMarker(l, i), body)...)
	}
	return out, nil
}

func (r ListRenderer) child(n mdast.Node) ([]string, error) {
	switch c := n.(type) {
	case *mdast.Paragraph:
		return []string{paragraphLine(c.Children)}, nil
	case *mdast.List:
		return r.lines(c)
	default:
		return r.standard().blockLines(n)
	}
}

func (r ListRenderer) standard() *StandardRenderer {
	if r.Standard == nil {
		return &StandardRenderer{}
	}
	return r.Standard
}

// BlockquoteRenderer renders a blockquote, prefixing each line with "> ".
// Nested blockquotes are prefixed once per level.
type BlockquoteRenderer struct {
	Standard *StandardRenderer
}

func (r BlockquoteRenderer) Render(n mdast.Node) (Result, error) {
	q, ok := n.(*mdast.Blockquote)
	if !ok {
		return nil, fmt.Errorf("%w: blockquote renderer got %s", ErrUnsupportedNode, kindOf(n))
	}
	lines, err := r.lines(q)
	if err != nil {
		return nil, err
	}
	return Block(lines), nil
}

func (r BlockquoteRenderer) lines(q *mdast.Blockquote) ([]string, error) {
	var inner []string
	for _, child := range q.Children {
		var part []string
		switch c := child.(type) {
		case *mdast.Paragraph:
			part = []string{paragraphLine(c.Children)}
		case *mdast.Heading:
			part = []string{strings.Repeat("#", min(max(c.Depth, 1), 6)) + " " + inlineText(c.Children)}
		case *mdast.Blockquote:
			nested, err := r.lines(c)
			if err != nil {
				return nil, err
			}
			part = nested
		default:
			std := r.Standard
			if std == nil {
				std = &StandardRenderer{}
			}
			other, err := std.blockLines(child)
			if err != nil {
				return nil, err
			}
			part = other
		}
		if len(inner) > 0 {
			inner = append(inner, "")
		}
		inner = append(inner, part...)
	}
	return quote(inner), nil
}

func kindOf(n mdast.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Kind().String()
}

// Compile-time interface checks.
var (
	_ Renderer = ParagraphRenderer{}
	_ Renderer = HeadingRenderer{}
	_ Renderer = ListRenderer{}
	_ Renderer = BlockquoteRenderer{}
)
