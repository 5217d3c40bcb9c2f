package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aslandrive",
	Short: "Schema-driven code generation and market data services",
	Long: `aslandrive turns one JSON schema into value holders, table mappings
and migration SQL, and ships the services that consume them.

Examples:

  aslandrive generate
  aslandrive migrate
  aslandrive ingest --days 30
  aslandrive serve
  aslandrive health
`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(healthCmd)
}
