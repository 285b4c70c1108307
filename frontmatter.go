package docs2md

import (
	"github.com/alnah/go-docs2md/internal/yamlutil"
)

// pageMeta is the frontmatter of a generated page.
type pageMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

// Frontmatter returns the YAML block written at the top of the page for e.
func Frontmatter(e *Entry) (string, error) {
	return yamlutil.Frontmatter(pageMeta{Title: e.Title, Description: e.Description})
}
