package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTypeRef(t *testing.T) {
	tests := []struct {
		in     string
		base   string
		params []string
	}{
		{"VARCHAR(50)", "VARCHAR", []string{"50"}},
		{"DECIMAL(15,4)", "DECIMAL", []string{"15", "4"}},
		{"DECIMAL(15, 4)", "DECIMAL", []string{"15", "4"}},
		{"INTEGER", "INTEGER", nil},
		{"TIMESTAMP WITH TIME ZONE", "TIMESTAMP WITH TIME ZONE", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ref := ParseTypeRef(tt.in)
			assert.Equal(t, tt.in, ref.Raw)
			assert.Equal(t, tt.base, ref.Base)
			assert.Equal(t, tt.params, ref.Params)
		})
	}
}

func TestParseSemanticType(t *testing.T) {
	tests := []struct {
		in   string
		want SemanticType
	}{
		{"str", SemanticString},
		{"int", SemanticInteger},
		{"bigint", SemanticBigInteger},
		{"Decimal", SemanticDecimal},
		{"date", SemanticDate},
		{"datetime", SemanticDateTime},
		{"bool", SemanticBoolean},
		{"no_such_kind", SemanticString}, // deliberate default arm
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSemanticType(tt.in), tt.in)
	}
}

func TestColumnRequired(t *testing.T) {
	assert.True(t, Column{PrimaryKey: true, Nullable: true}.Required())
	assert.True(t, Column{Nullable: false}.Required())
	assert.False(t, Column{Nullable: true}.Required())
}

func TestPrimaryKeyColumns(t *testing.T) {
	tbl := Table{Columns: []Column{
		{Name: "a", PrimaryKey: true},
		{Name: "b"},
		{Name: "c", PrimaryKey: true},
	}}
	assert.Equal(t, []string{"a", "c"}, tbl.PrimaryKeyColumns())
}
