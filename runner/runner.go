// Package runner applies a generated migration script to the database.
package runner

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aslandrive/aslandrive/database"
)

// ApplyScript reads a migration script and executes every statement in
// order against the connection pool. Returns the number of statements
// applied; on failure that count covers the statements that did run.
func ApplyScript(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading migration script: %w", err)
	}

	pool, err := database.GetPool()
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, stmt := range SplitStatements(string(data)) {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return applied, fmt.Errorf("executing %q: %w", truncate(stmt, 60), err)
		}
		applied++
	}
	return applied, nil
}

// SplitStatements drops comment lines and splits the script into
// individual statements on semicolons.
func SplitStatements(script string) []string {
	var kept []string
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	var stmts []string
	for _, part := range strings.Split(strings.Join(kept, "\n"), ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			stmts = append(stmts, part)
		}
	}
	return stmts
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
