package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "version": "1.0.0",
  "tables": {
    "test_table": {
      "description": "Test table",
      "columns": {
        "id": {"type": "INTEGER", "semantic_type": "int", "primary_key": true, "nullable": false},
        "name": {"type": "VARCHAR(50)", "semantic_type": "str", "nullable": false},
        "price": {"type": "DECIMAL(10,2)", "semantic_type": "Decimal", "nullable": true},
        "note": {"type": "TEXT", "semantic_type": "str"}
      },
      "indexes": [
        {"name": "idx_test_name", "columns": ["name"], "unique": true}
      ]
    }
  }
}`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	s, err := Load(writeSchema(t, sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", s.Version)
	require.Len(t, s.Tables, 1)

	tbl := s.Tables[0]
	assert.Equal(t, "test_table", tbl.Name)
	assert.Equal(t, "Test table", tbl.Description)

	require.Len(t, tbl.Columns, 4)
	assert.Equal(t, "id", tbl.Columns[0].Name)
	assert.Equal(t, "name", tbl.Columns[1].Name)
	assert.Equal(t, "price", tbl.Columns[2].Name)
	assert.Equal(t, "note", tbl.Columns[3].Name)

	id := tbl.Columns[0]
	assert.True(t, id.PrimaryKey)
	assert.False(t, id.Nullable)
	assert.Equal(t, SemanticInteger, id.Semantic)
	assert.Equal(t, "INTEGER", id.Type.Raw)

	name := tbl.Columns[1]
	assert.Equal(t, "VARCHAR(50)", name.Type.Raw)
	assert.Equal(t, "VARCHAR", name.Type.Base)
	assert.Equal(t, []string{"50"}, name.Type.Params)

	// nullable defaults to true when omitted
	assert.True(t, tbl.Columns[3].Nullable)
	assert.False(t, tbl.Columns[3].PrimaryKey)

	require.Len(t, tbl.Indexes, 1)
	assert.Equal(t, "idx_test_name", tbl.Indexes[0].Name)
	assert.Equal(t, []string{"name"}, tbl.Indexes[0].Columns)
	assert.True(t, tbl.Indexes[0].Unique)
}

func TestLoadPreservesTableOrder(t *testing.T) {
	content := `{
  "version": "0.1",
  "tables": {
    "zebra": {"columns": {"id": {"type": "INTEGER", "semantic_type": "int"}}},
    "alpha": {"columns": {"id": {"type": "INTEGER", "semantic_type": "int"}}},
    "middle": {"columns": {"id": {"type": "INTEGER", "semantic_type": "int"}}}
  }
}`
	s, err := Load(writeSchema(t, content))
	require.NoError(t, err)

	var names []string
	for _, tbl := range s.Tables {
		names = append(names, tbl.Name)
	}
	assert.Equal(t, []string{"zebra", "alpha", "middle"}, names)
}

func TestLoadYAML(t *testing.T) {
	content := `
version: "2.0"
tables:
  events:
    columns:
      id:
        type: BIGINT
        semantic_type: bigint
        primary_key: true
        nullable: false
      payload:
        type: TEXT
        semantic_type: str
`
	s, err := Load(writeSchema(t, content))
	require.NoError(t, err)

	assert.Equal(t, "2.0", s.Version)
	require.Len(t, s.Tables, 1)
	assert.Equal(t, "events", s.Tables[0].Name)
	require.Len(t, s.Tables[0].Columns, 2)
	assert.Equal(t, SemanticBigInteger, s.Tables[0].Columns[0].Semantic)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading schema")
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeSchema(t, "{ this is not : valid : json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing schema")
}
