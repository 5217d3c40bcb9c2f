package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aslandrive/aslandrive/schema"
)

func TestEmitValueHolder(t *testing.T) {
	want := `// Code generated by aslandrive generate. DO NOT EDIT.

package models

// TestTable is the value holder for the test_table table.
//
// Test table
type TestTable struct {
	Id    int64
	Name  string

	Price *float64
}
`
	assert.Equal(t, want, EmitValueHolder(testTable()))
}

func TestEmitValueHolderReordersRequiredFirst(t *testing.T) {
	tbl := schema.Table{
		Name: "t",
		Columns: []schema.Column{
			{Name: "note", Type: schema.ParseTypeRef("TEXT"), Semantic: schema.SemanticString, Nullable: true},
			{Name: "id", Type: schema.ParseTypeRef("INTEGER"), Semantic: schema.SemanticInteger, PrimaryKey: true, Nullable: false},
			{Name: "extra", Type: schema.ParseTypeRef("TEXT"), Semantic: schema.SemanticString, Nullable: true},
		},
	}
	out := EmitValueHolder(tbl)

	assert.Less(t, strings.Index(out, "Id "), strings.Index(out, "Note "))
	assert.Less(t, strings.Index(out, "Note "), strings.Index(out, "Extra"))
	assert.Contains(t, out, "*string")
}

func TestEmitValueHolderTimeImport(t *testing.T) {
	tbl := schema.Table{
		Name: "t",
		Columns: []schema.Column{
			{Name: "date", Type: schema.ParseTypeRef("DATE"), Semantic: schema.SemanticDate, Nullable: false},
		},
	}
	out := EmitValueHolder(tbl)
	assert.Contains(t, out, "import (\n\t\"time\"\n)\n")
	assert.Contains(t, out, "time.Time")
}

func TestEmitValueHolderFieldDescriptions(t *testing.T) {
	tbl := schema.Table{
		Name: "t",
		Columns: []schema.Column{
			{Name: "symbol", Type: schema.ParseTypeRef("VARCHAR(20)"), Semantic: schema.SemanticString, Nullable: false, Description: "Ticker symbol"},
		},
	}
	assert.Contains(t, EmitValueHolder(tbl), "\t// Ticker symbol\n\tSymbol string\n")
}
