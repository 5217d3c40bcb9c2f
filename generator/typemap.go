package generator

import (
	"strings"

	"github.com/aslandrive/aslandrive/schema"
)

// goType returns the value-holder field type for a semantic tag together
// with the import it needs, if any.
func goType(s schema.SemanticType) (typ, imp string) {
	switch s {
	case schema.SemanticInteger, schema.SemanticBigInteger:
		return "int64", ""
	case schema.SemanticDecimal:
		return "float64", ""
	case schema.SemanticDate, schema.SemanticDateTime:
		return "time.Time", "time"
	case schema.SemanticBoolean:
		return "bool", ""
	default:
		return "string", ""
	}
}

// constructorNames maps DDL base types onto mapping-layer constructors.
var constructorNames = map[string]string{
	"VARCHAR":                  "String",
	"CHAR":                     "String",
	"TEXT":                     "String",
	"INTEGER":                  "BigInteger",
	"BIGINT":                   "BigInteger",
	"DECIMAL":                  "Numeric",
	"NUMERIC":                  "Numeric",
	"DATE":                     "Date",
	"TIMESTAMP":                "DateTime",
	"TIMESTAMP WITH TIME ZONE": "DateTime",
	"BOOLEAN":                  "Boolean",
}

// constructorFor renders the orm constructor call for a column type.
// Unmapped bases fall back to the generic string constructor; only the
// sized constructors carry the type parameters through.
func constructorFor(t schema.TypeRef) string {
	name, ok := constructorNames[t.Base]
	if !ok {
		name = "String"
	}
	args := ""
	if len(t.Params) > 0 && (name == "String" || name == "Numeric") {
		args = strings.Join(t.Params, ", ")
	}
	return "orm." + name + "(" + args + ")"
}

// pascalCase converts a snake_case table or column name to PascalCase.
func pascalCase(s string) string {
	parts := strings.Split(s, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return strings.Join(parts, "")
}

// camelCase is pascalCase with a lowercase first segment, used for
// unexported identifiers in per-table artifacts.
func camelCase(s string) string {
	p := pascalCase(s)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}
