package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aslandrive/aslandrive/runner"
)

var migrationFile string

func init() {
	migrateCmd.Flags().StringVarP(&migrationFile, "file", "f", "generated/migration.sql", "Migration script to apply")
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the generated migration script to the database",
	Long: `Apply the generated migration script to the database.

Every statement is idempotent (CREATE ... IF NOT EXISTS), so reapplying
the script against an up-to-date database is a no-op.

Examples:
  aslandrive migrate                      # apply generated/migration.sql
  aslandrive migrate -f build/migration.sql
`,
	Run: func(cmd *cobra.Command, args []string) {
		applied, err := runner.ApplyScript(context.Background(), migrationFile)
		if err != nil {
			fmt.Println("❌ Applying migration:", err)
			os.Exit(1)
		}
		color.Green("✅ Applied %d statements from %s", applied, migrationFile)
	},
}
