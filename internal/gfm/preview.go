package gfm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrPreview indicates the preview could not be rendered.
var ErrPreview = errors.New("preview rendering failed")

// DefaultStyle is the chroma style used for code highlighting.
const DefaultStyle = "github"

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
{{.CSS}}</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Previewer renders generated Markdown pages to standalone HTML.
type Previewer struct {
	md    goldmark.Markdown
	style *chroma.Style
}

// NewPreviewer creates a Previewer highlighting code with the named chroma
// style. Unknown style names fall back to chroma's default style.
func NewPreviewer(style string) *Previewer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &Previewer{md: md, style: styles.Get(style)}
}

// Render converts a page to an HTML document. The frontmatter is dropped and
// title is used for the document title.
func (p *Previewer) Render(ctx context.Context, md []byte, title string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, body := SplitFrontmatter(md)

	var content bytes.Buffer
	if err := p.md.Convert(body, &content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreview, err)
	}

	var css bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&css, p.style); err != nil {
		return nil, fmt.Errorf("%w: writing CSS: %v", ErrPreview, err)
	}

	var out bytes.Buffer
	err := previewTemplate.Execute(&out, struct {
		Title string
		CSS   template.CSS
		Body  template.HTML
	}{
		Title: title,
		CSS:   template.CSS(css.String()),      // #nosec G203 -- generated by chroma
		Body:  template.HTML(content.String()), // #nosec G203 -- goldmark output without unsafe HTML
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreview, err)
	}
	return out.Bytes(), nil
}
