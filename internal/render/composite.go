package render

import (
	"fmt"
	"strings"

	"github.com/alnah/go-docs2md/internal/mdast"
)

// Composite routes each node to the renderer registered for its kind and
// assembles the results with Compose. Paragraphs, headings, lists and
// blockquotes go to the fast renderers, tables to the structural table
// renderer, and every other kind to the standard renderer.
type Composite struct {
	byKind   map[mdast.Kind]Renderer
	standard Renderer
}

// Option configures a Composite.
type Option func(*Composite)

// WithRenderer replaces the renderer used for kind.
func WithRenderer(kind mdast.Kind, r Renderer) Option {
	return func(c *Composite) {
		c.byKind[kind] = r
	}
}

// WithStandardRenderer replaces the renderer used for kinds without a
// dedicated renderer.
func WithStandardRenderer(r Renderer) Option {
	return func(c *Composite) {
		c.standard = r
	}
}

// NewComposite returns a Composite with the default renderer set.
func NewComposite(opts ...Option) *Composite {
	std := &StandardRenderer{}
	c := &Composite{
		byKind: map[mdast.Kind]Renderer{
			mdast.KindParagraph:  ParagraphRenderer{},
			mdast.KindHeading:    HeadingRenderer{},
			mdast.KindList:       ListRenderer{Standard: std},
			mdast.KindBlockquote: BlockquoteRenderer{Standard: std},
			mdast.KindTable:      TableRenderer{},
		},
		standard: std,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render renders a single node with the renderer registered for its kind.
// A Root renders each child individually so tables anywhere at the top
// level keep their structural treatment.
func (c *Composite) Render(n mdast.Node) (Result, error) {
	switch v := n.(type) {
	case *mdast.Root:
		s, err := c.RenderMany(v.Children)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return Block(nil), nil
		}
		return Block(strings.Split(s, "\n")), nil
	case nil:
		return nil, fmt.Errorf("%w: nil node", ErrUnsupportedNode)
	default:
		return c.renderer(n.Kind()).Render(n)
	}
}

// RenderMany renders a sibling sequence and composes it into Markdown.
func (c *Composite) RenderMany(nodes []mdast.Node) (string, error) {
	results := make([]Result, 0, len(nodes))
	for i, n := range nodes {
		if n == nil {
			return "", fmt.Errorf("rendering node %d: %w: nil node", i, ErrUnsupportedNode)
		}
		r, err := c.renderer(n.Kind()).Render(n)
		if err != nil {
			return "", fmt.Errorf("rendering %s node %d: %w", n.Kind(), i, err)
		}
		results = append(results, r)
	}
	return Compose(results), nil
}

// RenderDocument renders a whole converted document.
func (c *Composite) RenderDocument(root *mdast.Root) (string, error) {
	if root == nil {
		return "", nil
	}
	return c.RenderMany(root.Children)
}

func (c *Composite) renderer(k mdast.Kind) Renderer {
	if r, ok := c.byKind[k]; ok {
		return r
	}
	return c.standard
}
