package gfm

import (
	"fmt"
	"regexp"
	"strings"
)

// Problem is a breach of the output contract found in a generated page.
type Problem struct {
	Kind   string
	Detail string
}

func (p Problem) String() string {
	return p.Kind + ": " + p.Detail
}

// Problem kinds reported by Verify.
const (
	ProblemLink    = "link"
	ProblemAnchor  = "anchor"
	ProblemTable   = "table"
	ProblemRawHTML = "raw-html"
)

// deniedTag matches raw HTML tags that must never survive conversion.
var deniedTag = regexp.MustCompile(`(?i)<\s*/?\s*(script|style|iframe|object|embed|link)\b`)

// externalPrefixes are link targets Verify does not check.
var externalPrefixes = []string{"http://", "https://", "mailto:", "tel:"}

// Verify checks a generated page: internal links point at .md files,
// in-page anchors exist, tables are rectangular, and no denied raw HTML
// tag is present.
func Verify(md []byte) []Problem {
	return Inspect(md).Problems()
}

// Problems applies the output contract to an inspected document.
func (s Summary) Problems() []Problem {
	var problems []Problem
	ids := s.HeadingIDs()

	for _, dest := range s.Links {
		if p, ok := checkLink(dest, ids); !ok {
			problems = append(problems, p)
		}
	}
	for i, t := range s.Tables {
		if t.Ragged {
			problems = append(problems, Problem{
				Kind:   ProblemTable,
				Detail: fmt.Sprintf("table %d has rows with a different cell count than its header", i+1),
			})
		}
	}
	for _, raw := range s.RawHTML {
		if deniedTag.MatchString(raw) {
			problems = append(problems, Problem{Kind: ProblemRawHTML, Detail: raw})
		}
	}
	return problems
}

func checkLink(dest string, ids map[string]bool) (Problem, bool) {
	for _, p := range externalPrefixes {
		if strings.HasPrefix(dest, p) {
			return Problem{}, true
		}
	}
	if anchor, ok := strings.CutPrefix(dest, "#"); ok {
		if anchor == "" || ids[anchor] {
			return Problem{}, true
		}
		return Problem{Kind: ProblemAnchor, Detail: fmt.Sprintf("no heading with id %q", anchor)}, false
	}
	if strings.Contains(dest, "/DOCS-BASE/") {
		return Problem{Kind: ProblemLink, Detail: fmt.Sprintf("unrewritten route %q", dest)}, false
	}
	path, _, _ := strings.Cut(dest, "#")
	path, _, _ = strings.Cut(path, "?")
	if !strings.HasSuffix(path, ".md") {
		return Problem{Kind: ProblemLink, Detail: fmt.Sprintf("internal link %q does not target a .md file", dest)}, false
	}
	return Problem{}, true
}
