package docs2md

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alnah/go-docs2md/internal/links"
)

// Entry is one page of the documentation export.
//
// Fields the schema does not know are kept in Extra and written back by
// MarshalJSON, so an export survives a decode/encode cycle.
type Entry struct {
	Route       string        `json:"route"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Part        string        `json:"part,omitempty"`
	Outline     []OutlineItem `json:"outline"`
	Body        *Body         `json:"body,omitempty"`
	Children    []Entry       `json:"children"`

	Extra map[string]json.RawMessage `json:"-"`
}

// OutlineItem is a heading in a page's table of contents.
type OutlineItem struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Children []OutlineItem `json:"children"`
}

// Body is the tagged page content: Kind selects how Content is read.
type Body struct {
	Kind    string          `json:"kind"`
	Content json.RawMessage `json:"content"`
}

// entryFields lists the JSON keys decoded into Entry fields.
var entryFields = []string{"route", "title", "description", "part", "outline", "body", "children"}

// entryAlias drops the Entry methods to avoid recursion.
type entryAlias Entry

// UnmarshalJSON decodes an entry and keeps unknown fields in Extra.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var a entryAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range entryFields {
		delete(all, k)
	}
	if len(all) > 0 {
		a.Extra = all
	}
	*e = Entry(a)
	return nil
}

// MarshalJSON encodes an entry together with its Extra fields. Known fields
// take precedence over extras with the same key.
func (e Entry) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(entryAlias(e))
	if err != nil {
		return nil, err
	}
	if len(e.Extra) == 0 {
		return known, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for k, v := range e.Extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// Validate checks the route and title of e. Children are not visited.
//
// The route must be non-empty and, once the DOCS-BASE prefix is removed,
// must be neither rooted nor contain a ".." segment.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Route) == "" {
		return ErrMissingRoute
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w (route %q)", ErrMissingTitle, e.Route)
	}

	rest, _ := links.StripBase(e.Route)
	if isRooted(rest) {
		return fmt.Errorf("%w: %q", ErrAbsoluteRoute, e.Route)
	}
	for _, seg := range strings.FieldsFunc(rest, isPathSeparator) {
		if seg == ".." {
			return fmt.Errorf("%w: %q", ErrRouteTraversal, e.Route)
		}
	}
	return nil
}

// Depth returns the output directory depth of the page for e.
func (e *Entry) Depth() int {
	return links.RouteDepth(e.Route)
}

// OutputPath returns the slash-separated output file path for e.
func (e *Entry) OutputPath() string {
	return links.RelativePath(e.Route)
}

func isPathSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// isRooted reports whether p is absolute on any platform: a leading
// separator or a drive letter.
func isRooted(p string) bool {
	if p == "" {
		return false
	}
	if isPathSeparator(rune(p[0])) {
		return true
	}
	return len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0])
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
