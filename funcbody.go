package docs2md

import (
	"fmt"
	"strings"

	"github.com/alnah/go-docs2md/internal/render"
)

// function renders a function page. level is the heading level of its
// sections; nested methods go one level deeper.
func (b *bodyWriter) function(f *FuncContent, level int) error {
	b.out.heading(level, "Signature")
	b.out.add(signature(f))
	b.out.add(f.Oneliner)
	if err := b.details(f.Details); err != nil {
		return err
	}

	if len(f.Example) > 0 {
		example, err := b.markdown(f.Example)
		if err != nil {
			return err
		}
		if example != "" {
			b.out.heading(level, "Example")
			b.out.add(example)
		}
	}

	if len(f.Params) > 0 {
		b.out.heading(level, "Parameters")
		items := make([]string, 0, len(f.Params))
		for i := range f.Params {
			item, err := b.parameter(&f.Params[i])
			if err != nil {
				return fmt.Errorf("parameter %q: %w", f.Params[i].Name, err)
			}
			items = append(items, item)
		}
		b.out.add(strings.Join(items, "\n\n"))
	}

	if len(f.Returns) > 0 {
		b.out.heading(level, "Returns")
		b.out.add(render.CodeSpan(strings.Join(f.Returns, " | ")))
	}

	if len(f.Scope) > 0 {
		b.out.heading(level, "Methods")
		for i := range f.Scope {
			if err := b.member(&f.Scope[i], level+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// member renders a method or group function as a subsection.
func (b *bodyWriter) member(f *FuncContent, level int) error {
	b.out.heading(level, render.CodeSpan(f.Name))
	b.out.add(signature(f))
	b.out.add(f.Oneliner)
	if err := b.details(f.Details); err != nil {
		return fmt.Errorf("%s: %w", f.Name, err)
	}
	return nil
}

// parameter renders one parameter as a list item holding its name, types,
// flags and default, with the description and example indented below.
func (b *bodyWriter) parameter(p *ParamContent) (string, error) {
	var sb strings.Builder
	sb.WriteString("- **" + p.Name + "**")
	if len(p.Types) > 0 {
		sb.WriteString(" (" + render.CodeSpan(strings.Join(p.Types, " | ")) + ")")
	}
	sb.WriteString(", " + strings.Join(paramFlags(p), ", "))
	if def, ok := defaultText(p.Default); ok {
		sb.WriteString(", default: " + render.CodeSpan(def))
	}
	sb.WriteString(":")

	details, err := b.markdown(p.Details)
	if err != nil {
		return "", err
	}
	writeIndented(&sb, details)

	example, err := b.markdown(p.Example)
	if err != nil {
		return "", err
	}
	if example != "" {
		sb.WriteString("\n\n  Example:")
		writeIndented(&sb, example)
	}
	return sb.String(), nil
}

func paramFlags(p *ParamContent) []string {
	flags := []string{"optional"}
	if p.Required {
		flags[0] = "required"
	}
	if p.Positional {
		flags = append(flags, "positional")
	}
	if p.Named {
		flags = append(flags, "named")
	}
	if p.Variadic {
		flags = append(flags, "variadic")
	}
	if p.Settable {
		flags = append(flags, "settable")
	}
	return flags
}

// writeIndented writes md below a list item, indented to stay inside it.
func writeIndented(sb *strings.Builder, md string) {
	if md == "" {
		return
	}
	for _, line := range strings.Split(md, "\n") {
		sb.WriteByte('\n')
		if line != "" {
			sb.WriteString("  " + line)
		}
	}
}

// signature formats the call signature of f as a code span:
//
//	`calc.round(value: int | float, digits: int = 0) -> int | float`
func signature(f *FuncContent) string {
	var sb strings.Builder
	if len(f.Path) > 0 {
		sb.WriteString(strings.Join(f.Path, ".") + ".")
	}
	sb.WriteString(f.Name + "(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		if len(p.Types) > 0 {
			sb.WriteString(": " + strings.Join(p.Types, " | "))
		}
		if def, ok := defaultText(p.Default); ok {
			sb.WriteString(" = " + def)
		}
	}
	sb.WriteByte(')')
	if len(f.Returns) > 0 {
		sb.WriteString(" -> " + strings.Join(f.Returns, " | "))
	}
	return render.CodeSpan(sb.String())
}
