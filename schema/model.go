package schema

import "strings"

// Schema is the in-memory form of one schema document. Table order is
// the declaration order from the source file and is preserved end-to-end.
type Schema struct {
	Version string
	Tables  []Table
}

// Table describes one table definition.
type Table struct {
	Name        string
	Description string
	Columns     []Column
	Indexes     []Index
}

// PrimaryKeyColumns returns the names of primary key columns in
// declaration order.
func (t Table) PrimaryKeyColumns() []string {
	var cols []string
	for _, c := range t.Columns {
		if c.PrimaryKey {
			cols = append(cols, c.Name)
		}
	}
	return cols
}

// Column describes one column definition.
type Column struct {
	Name        string
	Type        TypeRef
	Semantic    SemanticType
	PrimaryKey  bool
	Nullable    bool // defaults to true
	Default     string
	Description string
}

// Required reports whether the column is non-nullable in the emitted
// artifacts. Primary key columns are required regardless of Nullable.
func (c Column) Required() bool {
	return c.PrimaryKey || !c.Nullable
}

// Index describes one single- or multi-column index.
type Index struct {
	Name    string   `yaml:"name" json:"name"`
	Columns []string `yaml:"columns" json:"columns"`
	Unique  bool     `yaml:"unique" json:"unique"`
}

// TypeRef is the structured form of a possibly parameterized DDL type.
// Raw keeps the verbatim token for DDL emission; Base and Params feed
// the mapping layer. Built once at load time so every emitter sees the
// same decomposition.
type TypeRef struct {
	Raw    string
	Base   string
	Params []string
}

// ParseTypeRef splits a DDL type token at the first parenthesis.
// "DECIMAL(15,4)" becomes base "DECIMAL" with params ["15", "4"].
func ParseTypeRef(s string) TypeRef {
	t := TypeRef{Raw: s}
	open := strings.Index(s, "(")
	if open < 0 {
		t.Base = s
		return t
	}
	t.Base = s[:open]
	inner := strings.TrimSuffix(s[open+1:], ")")
	for _, p := range strings.Split(inner, ",") {
		t.Params = append(t.Params, strings.TrimSpace(p))
	}
	return t
}

// SemanticType is the closed set of recognized column semantics.
type SemanticType string

const (
	SemanticString     SemanticType = "String"
	SemanticInteger    SemanticType = "Integer"
	SemanticBigInteger SemanticType = "BigInteger"
	SemanticDecimal    SemanticType = "Decimal"
	SemanticDate       SemanticType = "Date"
	SemanticDateTime   SemanticType = "DateTime"
	SemanticBoolean    SemanticType = "Boolean"
)

// ParseSemanticType maps the free-form tag from the schema document onto
// the closed variant. Unknown tags deliberately fall back to String.
func ParseSemanticType(s string) SemanticType {
	switch s {
	case "str", "string", "String":
		return SemanticString
	case "int", "integer", "Integer":
		return SemanticInteger
	case "bigint", "BigInteger":
		return SemanticBigInteger
	case "Decimal", "decimal", "numeric":
		return SemanticDecimal
	case "date", "Date":
		return SemanticDate
	case "datetime", "DateTime", "timestamp":
		return SemanticDateTime
	case "bool", "boolean", "Boolean":
		return SemanticBoolean
	default:
		return SemanticString
	}
}
