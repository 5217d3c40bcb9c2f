package generator

import (
	"fmt"
	"strings"

	"github.com/aslandrive/aslandrive/schema"
)

// ormImport is the runtime package every mapping artifact depends on.
const ormImport = "github.com/aslandrive/aslandrive/orm"

// MappingArtifact is one table's mapping definition, with its import
// dependencies kept apart from the body so the combined emitter can
// merge imports without line surgery.
type MappingArtifact struct {
	Imports []string
	Body    string
}

// EmitMapping renders the mapping definition for one table against the
// named registry. The registry identifier is always passed in by the
// caller; there is no package-wide default.
func EmitMapping(t schema.Table, registryVar string) MappingArtifact {
	className := pascalCase(t.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "// %s maps the %s table.\n", className, t.Name)
	if t.Description != "" {
		fmt.Fprintf(&b, "//\n// %s\n", t.Description)
	}
	fmt.Fprintf(&b, "var %s = %s.MustTable(%q,\n", className, registryVar, t.Name)
	for _, c := range t.Columns {
		fmt.Fprintf(&b, "\torm.Column(%q, %s", c.Name, constructorFor(c.Type))
		if c.PrimaryKey {
			b.WriteString(", orm.PrimaryKey()")
		}
		if c.Required() {
			b.WriteString(", orm.NotNull()")
		}
		if c.Default != "" {
			if c.Default == "CURRENT_TIMESTAMP" {
				b.WriteString(", orm.DefaultNow()")
			} else {
				fmt.Fprintf(&b, ", orm.Default(%q)", c.Default)
			}
		}
		b.WriteString("),\n")
	}
	b.WriteString(")\n")

	return MappingArtifact{Imports: []string{ormImport}, Body: b.String()}
}

// RenderMapping renders the standalone per-table mapping file. Each file
// carries its own registry so it stands alone; the combined module is
// the one that shares a single registry across every table.
func RenderMapping(t schema.Table) string {
	registryVar := camelCase(t.Name) + "Registry"
	art := EmitMapping(t, registryVar)

	var b strings.Builder
	b.WriteString(genHeader)
	b.WriteString("package mappings\n\n")
	b.WriteString(importBlock(art.Imports))
	b.WriteString("\n")
	fmt.Fprintf(&b, "var %s = orm.NewRegistry()\n\n", registryVar)
	b.WriteString(art.Body)
	return b.String()
}

func importBlock(paths []string) string {
	var b strings.Builder
	b.WriteString("import (\n")
	for _, p := range paths {
		fmt.Fprintf(&b, "\t%q\n", p)
	}
	b.WriteString(")\n")
	return b.String()
}
