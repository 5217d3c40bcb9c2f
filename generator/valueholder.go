package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aslandrive/aslandrive/schema"
)

const genHeader = "// Code generated by aslandrive generate. DO NOT EDIT.\n\n"

// EmitValueHolder renders the value-holder struct file for one table.
//
// Required fields (primary key or non-nullable) come first in their
// original relative order, then the optional fields as pointers, also in
// original relative order. The reorder keeps the layout usable for
// targets with positional constructors; it is pinned by tests either way.
func EmitValueHolder(t schema.Table) string {
	className := pascalCase(t.Name)

	var required, optional []schema.Column
	for _, c := range t.Columns {
		if c.Required() {
			required = append(required, c)
		} else {
			optional = append(optional, c)
		}
	}

	type field struct {
		name    string
		typ     string
		comment string
	}
	imports := make(map[string]struct{})
	build := func(cols []schema.Column, pointer bool) []field {
		fields := make([]field, 0, len(cols))
		for _, c := range cols {
			typ, imp := goType(c.Semantic)
			if imp != "" {
				imports[imp] = struct{}{}
			}
			if pointer {
				typ = "*" + typ
			}
			fields = append(fields, field{name: pascalCase(c.Name), typ: typ, comment: c.Description})
		}
		return fields
	}
	reqFields := build(required, false)
	optFields := build(optional, true)

	width := 0
	for _, f := range append(append([]field{}, reqFields...), optFields...) {
		if len(f.name) > width {
			width = len(f.name)
		}
	}

	var b strings.Builder
	b.WriteString(genHeader)
	b.WriteString("package models\n\n")
	if len(imports) > 0 {
		paths := make([]string, 0, len(imports))
		for p := range imports {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		b.WriteString("import (\n")
		for _, p := range paths {
			fmt.Fprintf(&b, "\t%q\n", p)
		}
		b.WriteString(")\n\n")
	}

	fmt.Fprintf(&b, "// %s is the value holder for the %s table.\n", className, t.Name)
	if t.Description != "" {
		fmt.Fprintf(&b, "//\n// %s\n", t.Description)
	}
	fmt.Fprintf(&b, "type %s struct {\n", className)

	writeFields := func(fields []field) {
		for _, f := range fields {
			if f.comment != "" {
				fmt.Fprintf(&b, "\t// %s\n", f.comment)
			}
			fmt.Fprintf(&b, "\t%s%s%s\n", f.name, strings.Repeat(" ", width-len(f.name)+1), f.typ)
		}
	}
	writeFields(reqFields)
	if len(reqFields) > 0 && len(optFields) > 0 {
		b.WriteString("\n")
	}
	writeFields(optFields)

	b.WriteString("}\n")
	return b.String()
}
