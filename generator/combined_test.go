package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aslandrive/aslandrive/schema"
)

func TestEmitCombined(t *testing.T) {
	s := &schema.Schema{
		Version: "1.0.0",
		Tables: []schema.Table{
			testTable(),
			{
				Name: "second_table",
				Columns: []schema.Column{
					{Name: "id", Type: schema.ParseTypeRef("BIGINT"), Semantic: schema.SemanticBigInteger, PrimaryKey: true, Nullable: false},
				},
			},
		},
	}
	out := EmitCombined(s)

	// exactly one shared registry, no matter how many tables
	assert.Equal(t, 1, strings.Count(out, "orm.NewRegistry()"))
	assert.Equal(t, 1, strings.Count(out, "import ("))

	assert.Contains(t, out, "package db\n")
	assert.Contains(t, out, "var Registry = orm.NewRegistry()\n")
	assert.Contains(t, out, `var TestTable = Registry.MustTable("test_table",`)
	assert.Contains(t, out, `var SecondTable = Registry.MustTable("second_table",`)

	// table bodies keep schema order
	assert.Less(t, strings.Index(out, "TestTable"), strings.Index(out, "SecondTable"))
}
