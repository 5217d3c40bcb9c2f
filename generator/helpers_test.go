package generator

import "github.com/aslandrive/aslandrive/schema"

// testTable is the three-column fixture used across the emitter tests:
// one integer primary key, one required varchar, one optional decimal.
func testTable() schema.Table {
	return schema.Table{
		Name:        "test_table",
		Description: "Test table",
		Columns: []schema.Column{
			{Name: "id", Type: schema.ParseTypeRef("INTEGER"), Semantic: schema.SemanticInteger, PrimaryKey: true, Nullable: false},
			{Name: "name", Type: schema.ParseTypeRef("VARCHAR(50)"), Semantic: schema.SemanticString, Nullable: false},
			{Name: "price", Type: schema.ParseTypeRef("DECIMAL(10,2)"), Semantic: schema.SemanticDecimal, Nullable: true},
		},
	}
}

func testSchema() *schema.Schema {
	return &schema.Schema{
		Version: "1.0.0",
		Tables:  []schema.Table{testTable()},
	}
}
