package generator

import (
	"fmt"
	"strings"

	"github.com/aslandrive/aslandrive/schema"
)

// EmitTableDDL renders one idempotent CREATE TABLE statement. IF NOT
// EXISTS only guards against re-declaration errors; it does not alter an
// existing table's shape. The DDL type token is emitted verbatim whether
// or not the mapping layer recognizes it.
func EmitTableDDL(t schema.Table) string {
	var lines []string
	for _, c := range t.Columns {
		line := "    " + c.Name + " " + c.Type.Raw
		if c.Required() {
			line += " NOT NULL"
		}
		if c.Default != "" {
			line += " DEFAULT " + c.Default
		}
		lines = append(lines, line)
	}
	if pk := t.PrimaryKeyColumns(); len(pk) > 0 {
		lines = append(lines, "    PRIMARY KEY ("+strings.Join(pk, ", ")+")")
	}
	return "CREATE TABLE IF NOT EXISTS " + t.Name + " (\n" + strings.Join(lines, ",\n") + "\n);\n"
}

// EmitIndexDDL renders one CREATE INDEX statement per declared index, in
// declaration order.
func EmitIndexDDL(t schema.Table) []string {
	var stmts []string
	for _, idx := range t.Indexes {
		kind := "INDEX"
		if idx.Unique {
			kind = "UNIQUE INDEX"
		}
		stmts = append(stmts, fmt.Sprintf("CREATE %s IF NOT EXISTS %s ON %s (%s);",
			kind, idx.Name, t.Name, strings.Join(idx.Columns, ", ")))
	}
	return stmts
}

// EmitMigration concatenates the DDL for every table in schema order.
// The header carries only the schema version, never a timestamp, so
// rerunning generation yields byte-identical output.
func EmitMigration(s *schema.Schema) string {
	version := s.Version
	if version == "" {
		version = "unknown"
	}

	var b strings.Builder
	b.WriteString("-- Migration script generated from JSON schema\n")
	fmt.Fprintf(&b, "-- Schema version: %s\n\n", version)

	for i, t := range s.Tables {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "-- Create table: %s\n", t.Name)
		b.WriteString(EmitTableDDL(t))
		if stmts := EmitIndexDDL(t); len(stmts) > 0 {
			b.WriteString("\n")
			for _, stmt := range stmts {
				b.WriteString(stmt + "\n")
			}
		}
	}
	return b.String()
}
