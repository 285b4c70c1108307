package docs2md

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-docs2md/internal/links"
	"github.com/alnah/go-docs2md/internal/render"
)

// GenerateBody renders the Markdown body of e, without frontmatter. An entry
// without a body yields an empty string. Unknown body kinds render as an
// HTML comment.
//
// Errors come from entries that fail validation, undecodable content, and
// HTML fragments that fail the size guard or cannot be parsed.
func (c *Converter) GenerateBody(e *Entry) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	if e.Body == nil {
		return "", nil
	}
	content, err := e.Body.Decode()
	if err != nil {
		return "", fmt.Errorf("route %q: %w", e.Route, err)
	}

	b := &bodyWriter{conv: c, depth: e.Depth()}
	switch v := content.(type) {
	case HTMLContent:
		return c.ConvertPage(string(v), b.depth, e.Title)
	case *FuncContent:
		err = b.function(v, 2)
	case *TypeContent:
		err = b.typeBody(v)
	case *CategoryContent:
		err = b.category(v)
	case *GroupContent:
		err = b.group(v)
	case *SymbolsContent:
		err = b.symbols(v)
	case UnknownContent:
		return fmt.Sprintf("<!-- Unknown body kind: %s -->", commentSafe(v.Kind)), nil
	}
	if err != nil {
		return "", fmt.Errorf("route %q: %w", e.Route, err)
	}
	return b.out.String(), nil
}

// GenerateBodyMarkdown renders the body of e with the default Converter.
func GenerateBodyMarkdown(e *Entry) (string, error) {
	return defaultConverter.GenerateBody(e)
}

// bodyWriter builds the sections of one structured body.
type bodyWriter struct {
	conv  *Converter
	depth int
	out   sections
}

// details converts a details-like field to Markdown and appends it.
func (b *bodyWriter) details(raw []byte) error {
	md, err := b.markdown(raw)
	if err != nil {
		return err
	}
	b.out.add(md)
	return nil
}

// markdown converts a details-like field to Markdown.
func (b *bodyWriter) markdown(raw []byte) (string, error) {
	src := detailsHTML(raw)
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	return b.conv.Convert(src, b.depth)
}

func (b *bodyWriter) typeBody(t *TypeContent) error {
	if err := b.details(t.Details); err != nil {
		return err
	}
	if t.Constructor != nil {
		b.out.heading(2, "Constructor")
		if err := b.function(t.Constructor, 3); err != nil {
			return fmt.Errorf("constructor: %w", err)
		}
	}
	if len(t.Scope) > 0 {
		b.out.heading(2, "Methods")
		for i := range t.Scope {
			if err := b.member(&t.Scope[i], 3); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *bodyWriter) category(cat *CategoryContent) error {
	if err := b.details(cat.Details); err != nil {
		return err
	}
	if len(cat.Items) == 0 {
		return nil
	}
	b.out.heading(2, "Items")
	lines := make([]string, 0, len(cat.Items))
	for _, it := range cat.Items {
		name := it.Name
		if it.Code {
			name = render.CodeSpan(name)
		}
		line := fmt.Sprintf("- [%s](%s)", name, links.Rewrite(it.Route, b.depth))
		if it.Oneliner != "" {
			line += " - " + it.Oneliner
		}
		lines = append(lines, line)
	}
	b.out.add(strings.Join(lines, "\n"))
	return nil
}

// group lists the functions of a group, split into plain functions and
// element functions, each linking to its subsection further down the page.
func (b *bodyWriter) group(g *GroupContent) error {
	if err := b.details(g.Details); err != nil {
		return err
	}

	var funcs, elems []string
	for _, f := range g.Functions {
		title := f.Title
		if title == "" {
			title = f.Name
		}
		line := fmt.Sprintf("- [%s](#%s)", title, headingAnchor(f.Name))
		if f.Oneliner != "" {
			line += " - " + f.Oneliner
		}
		if f.Element {
			elems = append(elems, line)
		} else {
			funcs = append(funcs, line)
		}
	}
	if len(funcs) > 0 {
		b.out.heading(2, "Functions")
		b.out.add(strings.Join(funcs, "\n"))
	}
	if len(elems) > 0 {
		b.out.heading(2, "Elements")
		b.out.add(strings.Join(elems, "\n"))
	}

	if len(g.Functions) > 0 {
		b.out.heading(2, "Definitions")
		for i := range g.Functions {
			if err := b.member(&g.Functions[i], 3); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *bodyWriter) symbols(s *SymbolsContent) error {
	if err := b.details(s.Details); err != nil {
		return err
	}
	if len(s.List) == 0 {
		return nil
	}
	rows := [][]string{{"Name", "Markup", "Math", "Unicode"}}
	for _, sym := range s.List {
		rows = append(rows, []string{
			escapeCell(sym.Name),
			escapeCell(shorthand(sym.MarkupShorthand)),
			escapeCell(shorthand(sym.MathShorthand)),
			unicodeLabel(sym),
		})
	}
	b.out.heading(2, "Symbols")
	b.out.table(rows)
	return nil
}

func shorthand(s string) string {
	if s == "" {
		return "-"
	}
	return render.CodeSpan(s)
}

// commentSafe keeps s from closing the HTML comment it is written into.
func commentSafe(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.TrimSuffix(s, "-")
}

// unicodeLabel formats the codepoint of sym as U+XXXX, falling back to the
// first rune of its value.
func unicodeLabel(sym Symbol) string {
	if sym.Codepoint != nil {
		return fmt.Sprintf("U+%04X", *sym.Codepoint)
	}
	if r, size := utf8.DecodeRuneInString(sym.Value); size > 0 && r != utf8.RuneError {
		return fmt.Sprintf("U+%04X", r)
	}
	return "-"
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// headingAnchor returns the GitHub-style anchor of a heading whose text is
// name in a code span.
func headingAnchor(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r == ' ':
			sb.WriteByte('-')
		case r == '-' || r == '_':
			sb.WriteRune(r)
		case r < utf8.RuneSelf && !isASCIIAlnum(byte(r)):
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isASCIIAlnum(b byte) bool {
	return isASCIILetter(b) || (b >= '0' && b <= '9')
}
