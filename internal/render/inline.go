package render

import (
	"strings"

	"github.com/alnah/go-docs2md/internal/mdast"
)

// inlineText renders phrasing content. Nodes that are not phrasing content
// render as the empty string.
func inlineText(nodes []mdast.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		writeInline(&sb, n)
	}
	return sb.String()
}

func writeInline(sb *strings.Builder, n mdast.Node) {
	switch v := n.(type) {
	case *mdast.Text:
		sb.WriteString(escapeText(v.Value))
	case *mdast.Emphasis:
		sb.WriteString("*" + inlineText(v.Children) + "*")
	case *mdast.Strong:
		sb.WriteString("**" + inlineText(v.Children) + "**")
	case *mdast.Link:
		sb.WriteString("[" + inlineText(v.Children) + "](" + destination(v.URL) + ")")
	case *mdast.InlineCode:
		sb.WriteString(codeSpan(v.Value))
	}
}

// codeSpan wraps s in a backtick fence longer than any backtick run inside it.
func codeSpan(s string) string {
	if !strings.Contains(s, "`") {
		return "`" + s + "`"
	}
	fence := strings.Repeat("`", longestRun(s, '`')+1)
	return fence + " " + s + " " + fence
}

// codeFence returns a fence of at least three backticks that does not occur
// in s.
func codeFence(s string) string {
	return strings.Repeat("`", max(3, longestRun(s, '`')+1))
}

func longestRun(s string, b byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return longest
}

// escapeText backslash-escapes characters that would otherwise be read as
// inline Markdown, and "<" where it would open an HTML tag, comment or
// declaration, so decoded entities never turn into raw HTML.
func escapeText(s string) string {
	if !strings.ContainsAny(s, "\\*_`[]~<") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '*', '_', '`', '[', ']', '~':
			sb.WriteByte('\\')
		case '<':
			if i+1 < len(s) && opensTag(s[i+1]) {
				sb.WriteByte('\\')
			}
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// escapeLineStart escapes a rendered paragraph line whose first characters
// would open a heading, blockquote, list item or thematic break.
func escapeLineStart(line string) string {
	if line == "" {
		return line
	}
	switch c := line[0]; {
	case c == '#' || c == '>':
		return "\\" + line
	case c == '-' || c == '+':
		if len(line) == 1 || line[1] == ' ' || line[1] == '\t' || (c == '-' && isThematicBreak(line)) {
			return "\\" + line
		}
	case c >= '0' && c <= '9':
		n := 0
		for n < len(line) && n < 10 && line[n] >= '0' && line[n] <= '9' {
			n++
		}
		if n < 10 && n < len(line) && (line[n] == '.' || line[n] == ')') &&
			(n+1 == len(line) || line[n+1] == ' ' || line[n+1] == '\t') {
			return line[:n] + "\\" + line[n:]
		}
	}
	return line
}

func isThematicBreak(line string) bool {
	dashes := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '-':
			dashes++
		case ' ', '\t':
		default:
			return false
		}
	}
	return dashes >= 3
}

// paragraphLine renders phrasing content as one paragraph line.
func paragraphLine(nodes []mdast.Node) string {
	return escapeLineStart(inlineText(nodes))
}

// CodeSpan returns s as an inline code span, fenced with more backticks
// than any run inside it.
func CodeSpan(s string) string {
	return codeSpan(s)
}

func opensTag(b byte) bool {
	return b == '/' || b == '!' || b == '?' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// destination brackets link targets containing spaces.
func destination(url string) string {
	if strings.ContainsAny(url, " \t") {
		return "<" + url + ">"
	}
	return url
}
