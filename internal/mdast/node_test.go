package mdast

import "testing"

func sampleTree() *Root {
	return &Root{Children: []Node{
		&Heading{Depth: 1, Children: []Node{&Text{Value: "Title"}}},
		&Paragraph{Children: []Node{
			&Text{Value: "see "},
			&Link{URL: "a.md", Children: []Node{&Strong{Children: []Node{&Text{Value: "A"}}}}},
			&InlineCode{Value: "x"},
		}},
		&List{Items: []*ListItem{
			{Children: []Node{&Paragraph{Children: []Node{&Text{Value: "one"}}}}},
		}},
		&Table{
			Rows: []*TableRow{
				{Cells: []*TableCell{{Children: []Node{&Text{Value: "c"}}}}},
			},
			Align: []Align{AlignNone},
		},
		&Code{Value: "fn()"},
	}}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindRoot, "root"},
		{KindInlineCode, "inlineCode"},
		{KindTableCell, "tableCell"},
		{Kind(99), "unknown"},
		{Kind(-1), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
			}
		})
	}
}

func TestParseAlign(t *testing.T) {
	t.Parallel()

	tests := map[string]Align{
		"left":    AlignLeft,
		" Right ": AlignRight,
		"CENTER":  AlignCenter,
		"justify": AlignNone,
		"":        AlignNone,
		"end":     AlignRight,
		"start":   AlignLeft,
	}
	for in, want := range tests {
		if got := ParseAlign(in); got != want {
			t.Errorf("ParseAlign(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	// root, heading, text, paragraph, text, link, strong, text, inlineCode,
	// list, item, paragraph, text, table, row, cell, text, code
	if got := Count(sampleTree()); got != 18 {
		t.Errorf("Count() = %d, want 18", got)
	}
}

func TestTextContent(t *testing.T) {
	t.Parallel()

	got := TextContent(sampleTree())
	want := "Titlesee Axonecfn()"
	if got != want {
		t.Errorf("TextContent() = %q, want %q", got, want)
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	t.Parallel()

	var kinds []Kind
	Walk(sampleTree(), func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() == KindRoot
	})
	want := []Kind{KindRoot, KindHeading, KindParagraph, KindList, KindTable, KindCode}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestIsInline(t *testing.T) {
	t.Parallel()

	inline := []Node{&Text{}, &InlineCode{}, &Link{}, &Emphasis{}, &Strong{}}
	for _, n := range inline {
		if !IsInline(n) {
			t.Errorf("IsInline(%v) = false, want true", n.Kind())
		}
	}
	block := []Node{&Root{}, &Heading{}, &Paragraph{}, &Code{}, &List{}, &ListItem{}, &Blockquote{}, &Table{}, &TableRow{}, &TableCell{}}
	for _, n := range block {
		if IsInline(n) {
			t.Errorf("IsInline(%v) = true, want false", n.Kind())
		}
	}
}
