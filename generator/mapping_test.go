package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aslandrive/aslandrive/schema"
)

func TestEmitMapping(t *testing.T) {
	art := EmitMapping(testTable(), "Registry")

	assert.Equal(t, []string{ormImport}, art.Imports)

	want := `// TestTable maps the test_table table.
//
// Test table
var TestTable = Registry.MustTable("test_table",
	orm.Column("id", orm.BigInteger(), orm.PrimaryKey(), orm.NotNull()),
	orm.Column("name", orm.String(50), orm.NotNull()),
	orm.Column("price", orm.Numeric(10, 2)),
)
`
	assert.Equal(t, want, art.Body)
}

func TestEmitMappingDefaults(t *testing.T) {
	tbl := schema.Table{
		Name: "t",
		Columns: []schema.Column{
			{Name: "created_at", Type: schema.ParseTypeRef("TIMESTAMP"), Semantic: schema.SemanticDateTime, Nullable: false, Default: "CURRENT_TIMESTAMP"},
			{Name: "active", Type: schema.ParseTypeRef("BOOLEAN"), Semantic: schema.SemanticBoolean, Nullable: false, Default: "true"},
		},
	}
	body := EmitMapping(tbl, "Registry").Body

	assert.Contains(t, body, `orm.Column("created_at", orm.DateTime(), orm.NotNull(), orm.DefaultNow())`)
	assert.Contains(t, body, `orm.Column("active", orm.Boolean(), orm.NotNull(), orm.Default("true"))`)
}

func TestConstructorFor(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"VARCHAR(255)", "orm.String(255)"},
		{"CHAR(3)", "orm.String(3)"},
		{"TEXT", "orm.String()"},
		{"INTEGER", "orm.BigInteger()"},
		{"BIGINT", "orm.BigInteger()"},
		{"DECIMAL(15,4)", "orm.Numeric(15, 4)"},
		{"DATE", "orm.Date()"},
		{"TIMESTAMP WITH TIME ZONE", "orm.DateTime()"},
		{"BOOLEAN", "orm.Boolean()"},
		// unmapped bases fall back to the string constructor
		{"GEOMETRY", "orm.String()"},
		{"GEOMETRY(4326)", "orm.String(4326)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, constructorFor(schema.ParseTypeRef(tt.raw)), tt.raw)
	}
}

func TestRenderMapping(t *testing.T) {
	out := RenderMapping(testTable())

	assert.Contains(t, out, "// Code generated by aslandrive generate. DO NOT EDIT.\n")
	assert.Contains(t, out, "package mappings\n")
	assert.Contains(t, out, "var testTableRegistry = orm.NewRegistry()\n")
	assert.Contains(t, out, "var TestTable = testTableRegistry.MustTable(\"test_table\",\n")
}

func TestNameCasing(t *testing.T) {
	assert.Equal(t, "DailyOhlcv", pascalCase("daily_ohlcv"))
	assert.Equal(t, "Id", pascalCase("id"))
	assert.Equal(t, "dailyOhlcv", camelCase("daily_ohlcv"))
}
