package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/aslandrive/aslandrive/database"
	"github.com/aslandrive/aslandrive/generated/db"
	"github.com/aslandrive/aslandrive/notify"
	"github.com/aslandrive/aslandrive/utils"
)

var healthTimeout time.Duration

func init() {
	healthCmd.Flags().DurationVarP(&healthTimeout, "timeout", "t", 10*time.Second, "Timeout for health check")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database connectivity and daily data freshness",
	Long: `Check that the database is reachable and that OHLCV data exists for
the expected trading day, then report the result to Slack.

On weekends the check targets the previous Friday; before noon a
missing day falls back to the previous business day. Without a
SLACK_WEBHOOK_URL the notification is logged instead of sent.

Examples:
  aslandrive health                    # check and notify
  aslandrive health --timeout 30s      # set custom timeout
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHealthCheck(); err != nil {
			fmt.Printf("❌ Health check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Health check passed")
	},
}

func runHealthCheck() error {
	utils.LoadEnv()
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	notifier := notify.New(utils.Getenv("SLACK_WEBHOOK_URL", ""))

	now := time.Now()
	checkDate := lastBusinessDay(now)
	dateStr := checkDate.Format("2006-01-02")

	pool, err := database.GetPool()
	if err != nil {
		_ = notifier.HealthCheckFailed(ctx, dateStr, err.Error(), false)
		return fmt.Errorf("database connection: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE date = $1", db.DailyOhlcv.Name)
	var records int
	if err := pool.QueryRow(ctx, countQuery, checkDate).Scan(&records); err != nil {
		_ = notifier.HealthCheckFailed(ctx, dateStr, err.Error(), true)
		return fmt.Errorf("counting rows for %s: %w", dateStr, err)
	}

	// Early in the day today's ingestion may not have run yet; accept
	// the previous business day instead.
	if records == 0 && now.Hour() < 12 {
		fallback := previousBusinessDay(checkDate)
		if err := pool.QueryRow(ctx, countQuery, fallback).Scan(&records); err != nil {
			_ = notifier.HealthCheckFailed(ctx, dateStr, err.Error(), true)
			return fmt.Errorf("counting rows for fallback day: %w", err)
		}
		if records > 0 {
			checkDate = fallback
			dateStr = checkDate.Format("2006-01-02")
		}
	}

	if records == 0 {
		msg := fmt.Sprintf("No data found for %s. Data ingestion may have failed.", dateStr)
		_ = notifier.HealthCheckFailed(ctx, dateStr, msg, true)
		return fmt.Errorf("no data for %s", dateStr)
	}

	stats, err := gatherStats(ctx, pool, checkDate)
	if err != nil {
		_ = notifier.HealthCheckFailed(ctx, dateStr, err.Error(), true)
		return err
	}

	fmt.Printf("📊 %d records for %s across %d symbols\n", records, dateStr, len(stats.symbols))
	return notifier.HealthCheckPassed(ctx, dateStr, records, stats.symbols,
		stats.totalRecords, stats.totalSymbols, stats.latestDate)
}

type healthStats struct {
	symbols      []string
	totalRecords int64
	totalSymbols int64
	latestDate   string
}

func gatherStats(ctx context.Context, pool *pgxpool.Pool, checkDate time.Time) (healthStats, error) {
	var stats healthStats

	symbolsQuery := fmt.Sprintf("SELECT DISTINCT symbol FROM %s WHERE date = $1 ORDER BY symbol", db.DailyOhlcv.Name)
	rows, err := pool.Query(ctx, symbolsQuery, checkDate)
	if err != nil {
		return stats, fmt.Errorf("listing symbols: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return stats, fmt.Errorf("scanning symbol: %w", err)
		}
		stats.symbols = append(stats.symbols, s)
	}
	if rows.Err() != nil {
		return stats, fmt.Errorf("listing symbols: %w", rows.Err())
	}

	totalsQuery := fmt.Sprintf("SELECT COUNT(*), MAX(date) FROM %s", db.DailyOhlcv.Name)
	var latest *time.Time
	if err := pool.QueryRow(ctx, totalsQuery).Scan(&stats.totalRecords, &latest); err != nil {
		return stats, fmt.Errorf("counting records: %w", err)
	}
	if latest != nil {
		stats.latestDate = latest.Format("2006-01-02")
	}

	activeQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE active = true", db.Symbols.Name)
	if err := pool.QueryRow(ctx, activeQuery).Scan(&stats.totalSymbols); err != nil {
		return stats, fmt.Errorf("counting active symbols: %w", err)
	}

	return stats, nil
}

func lastBusinessDay(t time.Time) time.Time {
	for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

func previousBusinessDay(t time.Time) time.Time {
	return lastBusinessDay(t.AddDate(0, 0, -1))
}
