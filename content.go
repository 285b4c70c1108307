package docs2md

import (
	"encoding/json"
	"fmt"
)

// Body kinds of the documentation export.
const (
	KindHTML     = "html"
	KindFunc     = "func"
	KindType     = "type"
	KindCategory = "category"
	KindGroup    = "group"
	KindSymbols  = "symbols"
)

// BodyContent is the decoded content of a Body. It is one of HTMLContent,
// *FuncContent, *TypeContent, *CategoryContent, *GroupContent,
// *SymbolsContent or UnknownContent.
type BodyContent interface {
	bodyContent()
}

// HTMLContent is a prose page.
type HTMLContent string

// UnknownContent stands for a body kind this package does not render.
type UnknownContent struct {
	Kind string
}

// FuncContent describes a function, element function or method.
type FuncContent struct {
	Path        []string        `json:"path"`
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Keywords    []string        `json:"keywords"`
	Oneliner    string          `json:"oneliner"`
	Element     bool            `json:"element"`
	Contextual  bool            `json:"contextual"`
	Deprecation string          `json:"deprecation,omitempty"`
	Details     json.RawMessage `json:"details,omitempty"`
	Example     json.RawMessage `json:"example,omitempty"`
	Self        bool            `json:"self"`
	Params      []ParamContent  `json:"params"`
	Returns     []string        `json:"returns"`
	Scope       []FuncContent   `json:"scope"`
}

// ParamContent describes one function parameter.
type ParamContent struct {
	Name       string          `json:"name"`
	Details    json.RawMessage `json:"details,omitempty"`
	Example    json.RawMessage `json:"example,omitempty"`
	Types      []string        `json:"types"`
	Strings    []StringOption  `json:"strings"`
	Default    json.RawMessage `json:"default,omitempty"`
	Positional bool            `json:"positional"`
	Named      bool            `json:"named"`
	Required   bool            `json:"required"`
	Variadic   bool            `json:"variadic"`
	Settable   bool            `json:"settable"`
}

// StringOption is one accepted string value of a parameter.
type StringOption struct {
	String  string          `json:"string"`
	Details json.RawMessage `json:"details,omitempty"`
}

// TypeContent describes a type with its constructor and methods.
type TypeContent struct {
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Keywords    []string        `json:"keywords"`
	Oneliner    string          `json:"oneliner"`
	Details     json.RawMessage `json:"details,omitempty"`
	Constructor *FuncContent    `json:"constructor,omitempty"`
	Scope       []FuncContent   `json:"scope"`
}

// CategoryContent lists the pages of a reference category.
type CategoryContent struct {
	Name    string          `json:"name"`
	Title   string          `json:"title"`
	Details json.RawMessage `json:"details,omitempty"`
	Items   []CategoryItem  `json:"items"`
}

// CategoryItem links to one page of a category.
type CategoryItem struct {
	Name     string `json:"name"`
	Route    string `json:"route"`
	Oneliner string `json:"oneliner"`
	Code     bool   `json:"code"`
}

// GroupContent documents several functions on a single page.
type GroupContent struct {
	Name      string          `json:"name"`
	Title     string          `json:"title"`
	Details   json.RawMessage `json:"details,omitempty"`
	Functions []FuncContent   `json:"functions"`
}

// SymbolsContent is a symbol table page.
type SymbolsContent struct {
	Name    string          `json:"name"`
	Title   string          `json:"title"`
	Details json.RawMessage `json:"details,omitempty"`
	List    []Symbol        `json:"list"`
}

// Symbol is one row of a symbol table. Missing shorthands are empty and a
// missing codepoint is nil.
type Symbol struct {
	Name            string
	MarkupShorthand string
	MathShorthand   string
	Codepoint       *uint32
	Value           string
}

// UnmarshalJSON accepts both camelCase and snake_case shorthand keys.
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name                 string  `json:"name"`
		MarkupShorthand      *string `json:"markupShorthand"`
		MarkupShorthandSnake *string `json:"markup_shorthand"`
		MathShorthand        *string `json:"mathShorthand"`
		MathShorthandSnake   *string `json:"math_shorthand"`
		Codepoint            *uint32 `json:"codepoint"`
		Value                *string `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Symbol{
		Name:            raw.Name,
		MarkupShorthand: firstNonNil(raw.MarkupShorthand, raw.MarkupShorthandSnake),
		MathShorthand:   firstNonNil(raw.MathShorthand, raw.MathShorthandSnake),
		Codepoint:       raw.Codepoint,
	}
	if raw.Value != nil {
		s.Value = *raw.Value
	}
	return nil
}

func firstNonNil(vals ...*string) string {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return ""
}

func (HTMLContent) bodyContent()      {}
func (UnknownContent) bodyContent()   {}
func (*FuncContent) bodyContent()     {}
func (*TypeContent) bodyContent()     {}
func (*CategoryContent) bodyContent() {}
func (*GroupContent) bodyContent()    {}
func (*SymbolsContent) bodyContent()  {}

// Decode reads b.Content according to b.Kind. Unknown kinds decode to
// UnknownContent without error.
func (b *Body) Decode() (BodyContent, error) {
	switch b.Kind {
	case KindHTML:
		var s string
		if err := json.Unmarshal(b.Content, &s); err != nil {
			return nil, fmt.Errorf("%w: html body must be a string", ErrInvalidContent)
		}
		return HTMLContent(s), nil
	case KindFunc:
		return decodeContent[FuncContent](b)
	case KindType:
		return decodeContent[TypeContent](b)
	case KindCategory:
		return decodeContent[CategoryContent](b)
	case KindGroup:
		return decodeContent[GroupContent](b)
	case KindSymbols:
		return decodeContent[SymbolsContent](b)
	default:
		return UnknownContent{Kind: b.Kind}, nil
	}
}

// decodeContent unmarshals a structured body. The pointer type must
// implement BodyContent.
func decodeContent[T any, PT interface {
	*T
	BodyContent
}](b *Body) (BodyContent, error) {
	if len(b.Content) == 0 || string(b.Content) == "null" {
		return nil, fmt.Errorf("%w: %s body has no content", ErrInvalidContent, b.Kind)
	}
	var v T
	if err := json.Unmarshal(b.Content, &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContent, b.Kind, err)
	}
	return PT(&v), nil
}
