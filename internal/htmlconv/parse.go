package htmlconv

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrParse indicates the input could not be read as HTML.
var ErrParse = errors.New("HTML parsing failed")

// parseHTML parses content as a full document when it starts with a doctype
// or <html> tag, and as a <body> fragment otherwise. Fragment nodes are
// attached to a synthetic document node so both cases walk the same way.
func parseHTML(content string) (*html.Node, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return doc, nil
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// attr returns the value of the named attribute and whether it is present.
func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// rawText concatenates every text descendant of n verbatim, skipping the
// subtrees of dropped elements.
func rawText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
				continue
			}
			if c.Type == html.ElementNode && droppedElements[c.DataAtom] {
				continue
			}
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

// collapseSpace folds every run of HTML whitespace into a single space.
func collapseSpace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !inSpace {
				sb.WriteByte(' ')
				inSpace = true
			}
		default:
			sb.WriteRune(r)
			inSpace = false
		}
	}
	return sb.String()
}
