package docs2md

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/alnah/go-docs2md/internal/htmlconv"
	"github.com/alnah/go-docs2md/internal/mdast"
)

// detailsHTML returns the HTML held by a details or example field. The field
// is either an HTML string or an array of {kind, content} blocks, of which
// only "html" blocks are kept, separated by a blank line.
func detailsHTML(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	v := gjson.ParseBytes(raw)
	switch {
	case v.Type == gjson.String:
		return v.String()
	case v.IsArray():
		var parts []string
		v.ForEach(func(_, block gjson.Result) bool {
			content := block.Get("content")
			if block.Get("kind").String() == KindHTML && content.Type == gjson.String {
				parts = append(parts, content.String())
			}
			return true
		})
		return strings.Join(parts, "\n\n")
	default:
		return ""
	}
}

// defaultText renders a parameter default as plain text. ok is false when
// the parameter has no default.
//
// Strings carrying markup are reduced to their text with whitespace
// collapsed; other strings are kept; any other JSON value is compacted.
func defaultText(raw json.RawMessage) (text string, ok bool) {
	if len(raw) == 0 {
		return "", false
	}
	v := gjson.ParseBytes(raw)
	switch v.Type {
	case gjson.Null:
		return "", false
	case gjson.String:
		s := v.String()
		if !strings.ContainsRune(s, '<') {
			return s, true
		}
		return markupText(s), true
	default:
		return string(pretty.Ugly(raw)), true
	}
}

// markupText strips HTML markup from s and collapses whitespace.
func markupText(s string) string {
	text := s
	if root, err := htmlconv.Convert(s, 0); err == nil {
		text = mdast.TextContent(root)
	}
	return strings.Join(strings.Fields(text), " ")
}
