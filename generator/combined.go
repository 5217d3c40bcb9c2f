package generator

import (
	"sort"
	"strings"

	"github.com/aslandrive/aslandrive/schema"
)

// EmitCombined renders the combined mapping module: a deduplicated,
// sorted import set, exactly one shared registry, then every table body
// in schema order. A registry per table would break cross-table features
// of the runtime, so all tables register against the single Registry.
func EmitCombined(s *schema.Schema) string {
	importSet := make(map[string]struct{})
	bodies := make([]string, 0, len(s.Tables))
	for _, t := range s.Tables {
		art := EmitMapping(t, "Registry")
		for _, imp := range art.Imports {
			importSet[imp] = struct{}{}
		}
		bodies = append(bodies, art.Body)
	}

	imports := make([]string, 0, len(importSet))
	for p := range importSet {
		imports = append(imports, p)
	}
	sort.Strings(imports)

	var b strings.Builder
	b.WriteString(genHeader)
	b.WriteString("package db\n\n")
	b.WriteString(importBlock(imports))
	b.WriteString("\n")
	b.WriteString("// Registry is the shared registry for every generated table mapping.\n")
	b.WriteString("var Registry = orm.NewRegistry()\n\n")
	b.WriteString(strings.Join(bodies, "\n"))
	return b.String()
}
