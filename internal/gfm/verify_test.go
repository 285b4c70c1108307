package gfm

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestVerify - Output contract checks
// ---------------------------------------------------------------------------

func TestVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		md        string
		wantKinds []string
	}{
		{
			name: "clean page",
			md: "## Functions\n\n- [abs](#abs)\n\n### `abs`\n\n" +
				"See [text](../text.md#size), [root](index.md) and [site](https://typst.app).\n",
		},
		{
			name:      "unrewritten route",
			md:        "[x](/DOCS-BASE/tutorial/)\n",
			wantKinds: []string{ProblemLink},
		},
		{
			name:      "link to directory",
			md:        "[x](../tutorial/)\n",
			wantKinds: []string{ProblemLink},
		},
		{
			name:      "missing anchor",
			md:        "# Title\n\n[x](#nowhere)\n",
			wantKinds: []string{ProblemAnchor},
		},
		{
			name:      "denied raw html",
			md:        "<script>alert(1)</script>\n",
			wantKinds: []string{ProblemRawHTML},
		},
		{
			name: "comment is allowed",
			md:   "<!-- Unknown body kind: widget -->\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			problems := Verify([]byte(tt.md))
			if len(problems) != len(tt.wantKinds) {
				t.Fatalf("Verify() = %v, want kinds %v", problems, tt.wantKinds)
			}
			for i, p := range problems {
				if p.Kind != tt.wantKinds[i] {
					t.Errorf("problem %d kind = %q, want %q", i, p.Kind, tt.wantKinds[i])
				}
			}
		})
	}
}
