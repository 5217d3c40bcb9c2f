package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aslandrive/aslandrive/generator"
	"github.com/aslandrive/aslandrive/schema"
)

var (
	schemaFile string
	outputDir  string
)

func init() {
	generateCmd.Flags().StringVarP(&schemaFile, "schema", "s", "schemas/market_data.json", "Schema file to load")
	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "generated", "Output directory for generated files")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate value holders, mappings and migration SQL from a schema",
	Long: `Generate code from a schema definition.

For every table the generator emits a value-holder struct and a table
mapping, then one combined mapping module sharing a single registry,
then one migration.sql concatenating all DDL in schema order.

Output is deterministic: rerunning with the same schema and output
directory reproduces byte-identical files.

Examples:
  aslandrive generate                          # schemas/market_data.json -> generated/
  aslandrive generate -s custom.json -o build  # custom schema and output directory
`,
	Run: func(cmd *cobra.Command, args []string) {
		sch, err := schema.Load(schemaFile)
		if err != nil {
			fmt.Println("❌ Loading schema:", err)
			os.Exit(1)
		}

		outs := generator.Generate(sch)
		files, err := generator.WriteOutputs(outputDir, outs)
		if err != nil {
			fmt.Println("❌ Writing generated files:", err)
			os.Exit(1)
		}

		color.Green("✅ Generated %d files from %s", len(files), schemaFile)
		for _, f := range files {
			fmt.Println("  -", f)
		}
	},
}
