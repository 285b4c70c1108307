package gfm

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is a heading as parsed from Markdown.
type Heading struct {
	Level int
	Text  string
	ID    string
}

// TableShape is the size of a parsed table, header row included.
type TableShape struct {
	Rows    int
	Columns int
	// Ragged is set when a row has a different cell count than the header.
	Ragged bool
}

// Summary describes the structure of a Markdown document.
type Summary struct {
	Headings   []Heading
	Tables     []TableShape
	Links      []string
	Lists      int
	ListItems  int
	CodeBlocks int
	Paragraphs int
	// RawHTML holds raw HTML fragments, inline and block, in order.
	RawHTML []string
}

// HeadingIDs returns the set of heading anchors in the document.
func (s Summary) HeadingIDs() map[string]bool {
	ids := make(map[string]bool, len(s.Headings))
	for _, h := range s.Headings {
		if h.ID != "" {
			ids[h.ID] = true
		}
	}
	return ids
}

var inspector = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Inspect parses md and summarizes its structure. A leading frontmatter
// block is skipped.
func Inspect(md []byte) Summary {
	_, body := SplitFrontmatter(md)
	doc := inspector.Parser().Parse(text.NewReader(body))

	var s Summary
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			h := Heading{Level: v.Level, Text: plainText(v, body)}
			if id, ok := v.AttributeString("id"); ok {
				if b, ok := id.([]byte); ok {
					h.ID = string(b)
				}
			}
			s.Headings = append(s.Headings, h)
		case *east.Table:
			s.Tables = append(s.Tables, tableShape(v))
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			s.Links = append(s.Links, string(v.Destination))
		case *ast.AutoLink:
			s.Links = append(s.Links, string(v.URL(body)))
		case *ast.List:
			s.Lists++
		case *ast.ListItem:
			s.ListItems++
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			s.CodeBlocks++
		case *ast.Paragraph:
			s.Paragraphs++
		case *ast.RawHTML:
			var buf bytes.Buffer
			for i := 0; i < v.Segments.Len(); i++ {
				seg := v.Segments.At(i)
				buf.Write(seg.Value(body))
			}
			s.RawHTML = append(s.RawHTML, buf.String())
		case *ast.HTMLBlock:
			var buf bytes.Buffer
			lines := v.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(body))
			}
			if v.HasClosure() {
				buf.Write(v.ClosureLine.Value(body))
			}
			s.RawHTML = append(s.RawHTML, strings.TrimRight(buf.String(), "\n"))
		}
		return ast.WalkContinue, nil
	})
	return s
}

func tableShape(t *east.Table) TableShape {
	shape := TableShape{}
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		cells := row.ChildCount()
		if shape.Rows == 0 {
			shape.Columns = cells
		} else if cells != shape.Columns {
			shape.Ragged = true
		}
		shape.Rows++
	}
	return shape
}

// plainText concatenates the text below n.
func plainText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(source))
			if v.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// SplitFrontmatter separates a leading "---" delimited YAML block from the
// rest of md. front is nil when md has no frontmatter.
func SplitFrontmatter(md []byte) (front, body []byte) {
	const delim = "---\n"
	if !bytes.HasPrefix(md, []byte(delim)) {
		return nil, md
	}
	rest := md[len(delim):]
	end := bytes.Index(rest, []byte("\n"+delim))
	if end < 0 {
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("\n---")+1], nil
		}
		return nil, md
	}
	return rest[:end+1], rest[end+1+len(delim):]
}
