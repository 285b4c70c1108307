package docs2md

import (
	"fmt"
	"log/slog"

	"github.com/alnah/go-docs2md/internal/htmlconv"
	"github.com/alnah/go-docs2md/internal/mdast"
	"github.com/alnah/go-docs2md/internal/render"
)

// MaxHTMLSize is the default limit on a single HTML input, in bytes.
const MaxHTMLSize = 5_000_000

// documentRenderer abstracts structured Markdown rendering.
type documentRenderer interface {
	RenderDocument(root *mdast.Root) (string, error)
}

var _ documentRenderer = (*render.Composite)(nil)

// Converter turns documentation HTML into Markdown.
//
// Conversion never fails because of rendering: when structured rendering
// returns an error (or panics) the converter logs a warning and returns a
// plain-text rendition that keeps every piece of text. Only oversized
// input and unreadable HTML are reported as errors.
//
// A Converter is safe for concurrent use.
type Converter struct {
	maxHTMLSize int
	renderer    documentRenderer
	logger      *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithMaxHTMLSize sets the input size limit in bytes.
// Panics if n is not positive.
func WithMaxHTMLSize(n int) Option {
	if n <= 0 {
		panic("docs2md: max HTML size must be positive")
	}
	return func(c *Converter) {
		c.maxHTMLSize = n
	}
}

// WithLogger sets the logger used for degradation warnings.
// A nil logger discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// NewConverter creates a Converter. Without options it enforces MaxHTMLSize
// and logs nothing.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		maxHTMLSize: MaxHTMLSize,
		renderer:    render.NewComposite(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Convert converts an HTML document or fragment to Markdown. Internal
// documentation links are rewritten relative to a page depth directories
// below the output root.
func (c *Converter) Convert(htmlContent string, depth int) (string, error) {
	root, err := c.parse(htmlContent, depth)
	if err != nil {
		return "", err
	}
	return c.render(root), nil
}

// parse applies the size guard and builds the syntax tree.
func (c *Converter) parse(htmlContent string, depth int) (*mdast.Root, error) {
	if len(htmlContent) > c.maxHTMLSize {
		return nil, &SizeError{Size: len(htmlContent), Limit: c.maxHTMLSize}
	}
	root, err := htmlconv.Convert(htmlContent, depth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}
	return root, nil
}

// render produces Markdown for root, degrading to plain text on failure.
func (c *Converter) render(root *mdast.Root) (md string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("markdown rendering panicked, falling back to plain text", "panic", r)
			md = render.PlainText(root)
		}
	}()

	var err error
	md, err = c.renderer.RenderDocument(root)
	if err != nil {
		c.logger.Warn("markdown rendering failed, falling back to plain text", "error", err)
		return render.PlainText(root)
	}
	return md
}

var defaultConverter = NewConverter()

// ConvertHTMLToMarkdown converts htmlContent with the default Converter.
func ConvertHTMLToMarkdown(htmlContent string, depth int) (string, error) {
	return defaultConverter.Convert(htmlContent, depth)
}
