package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScript = `-- Migration script generated from JSON schema
-- Schema version: 1.0.0

-- Create table: test_table
CREATE TABLE IF NOT EXISTS test_table (
    id INTEGER NOT NULL,
    name VARCHAR(50) NOT NULL,
    PRIMARY KEY (id)
);

CREATE INDEX IF NOT EXISTS idx_test_name ON test_table (name);
`

func TestSplitStatements(t *testing.T) {
	stmts := SplitStatements(sampleScript)
	require.Len(t, stmts, 2)

	assert.True(t, strings.HasPrefix(stmts[0], "CREATE TABLE IF NOT EXISTS test_table"))
	assert.Contains(t, stmts[0], "PRIMARY KEY (id)")
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS idx_test_name ON test_table (name)", stmts[1])

	for _, stmt := range stmts {
		assert.NotContains(t, stmt, "--")
	}
}

func TestSplitStatementsEmpty(t *testing.T) {
	assert.Empty(t, SplitStatements(""))
	assert.Empty(t, SplitStatements("-- only comments\n-- nothing else\n"))
	assert.Empty(t, SplitStatements(";;;\n"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "0123456789...", truncate("0123456789abcdef", 10))
}
