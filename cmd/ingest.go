package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aslandrive/aslandrive/database"
	"github.com/aslandrive/aslandrive/generated/db"
	"github.com/aslandrive/aslandrive/mockdata"
)

var (
	ingestDays   int
	ingestSeed   int64
	ingestDryRun bool
)

func init() {
	ingestCmd.Flags().IntVar(&ingestDays, "days", 30, "Number of business days to backfill")
	ingestCmd.Flags().Int64Var(&ingestSeed, "seed", 42, "Random seed for reproducible data")
	ingestCmd.Flags().BoolVar(&ingestDryRun, "dry-run", false, "Print generated bars without writing to the database")
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Generate mock OHLCV data and load it into the database",
	Long: `Generate mock daily OHLCV data for the built-in symbol universe and
load it into the database.

The generator is a seeded random walk, so the same seed always produces
the same bars. Existing rows are left untouched (ON CONFLICT DO NOTHING).

Examples:
  aslandrive ingest                   # backfill 30 business days
  aslandrive ingest --days 90         # longer backfill
  aslandrive ingest --dry-run         # preview without writing
`,
	Run: func(cmd *cobra.Command, args []string) {
		gen := mockdata.New(ingestSeed)
		bars := gen.Backfill(ingestDays, time.Now())

		if ingestDryRun {
			fmt.Printf("Generated %d bars for %d symbols over %d business days:\n",
				len(bars), len(mockdata.Universe()), ingestDays)
			for _, b := range bars[:min(len(bars), 10)] {
				fmt.Printf("  %s %s  O=%.2f H=%.2f L=%.2f C=%.2f V=%d\n",
					b.Symbol, b.Date.Format("2006-01-02"), b.Open, b.High, b.Low, b.Close, b.Volume)
			}
			if len(bars) > 10 {
				fmt.Printf("  ... and %d more\n", len(bars)-10)
			}
			fmt.Println("(Dry run only. Nothing was written.)")
			return
		}

		if err := ingest(context.Background(), bars); err != nil {
			fmt.Println("❌ Ingesting data:", err)
			os.Exit(1)
		}
		color.Green("✅ Ingested %d bars across %d symbols", len(bars), len(mockdata.Universe()))
	},
}

func ingest(ctx context.Context, bars []mockdata.Bar) error {
	pool, err := database.GetPool()
	if err != nil {
		return err
	}

	symbolsInsert := fmt.Sprintf(
		"INSERT INTO %s (symbol, name, asset_class, exchange, currency, active) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (symbol) DO NOTHING",
		db.Symbols.Name)
	for _, m := range mockdata.Universe() {
		if _, err := pool.Exec(ctx, symbolsInsert, m.Symbol, m.Name, m.AssetClass, m.Exchange, m.Currency, m.Active); err != nil {
			return fmt.Errorf("seeding symbol %s: %w", m.Symbol, err)
		}
	}

	barsInsert := fmt.Sprintf(
		"INSERT INTO %s (symbol, date, open, high, low, close, volume) VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (symbol, date) DO NOTHING",
		db.DailyOhlcv.Name)
	for _, b := range bars {
		if _, err := pool.Exec(ctx, barsInsert, b.Symbol, b.Date, b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			return fmt.Errorf("inserting bar %s %s: %w", b.Symbol, b.Date.Format("2006-01-02"), err)
		}
	}
	return nil
}
