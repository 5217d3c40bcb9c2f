// Package mockdata produces realistic daily OHLCV bars for a fixed
// symbol universe, driven by a seeded random walk so runs are
// reproducible.
package mockdata

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Bar is one day of open/high/low/close/volume data for a symbol.
type Bar struct {
	Symbol string
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// SymbolMeta describes one instrument in the mock universe, matching the
// symbols table shape.
type SymbolMeta struct {
	Symbol     string
	Name       string
	AssetClass string
	Exchange   string
	Currency   string
	Active     bool
}

var universe = []SymbolMeta{
	{"AAPL", "Apple Inc.", "equity", "NASDAQ", "USD", true},
	{"GOOGL", "Alphabet Inc.", "equity", "NASDAQ", "USD", true},
	{"MSFT", "Microsoft Corporation", "equity", "NASDAQ", "USD", true},
	{"TSLA", "Tesla, Inc.", "equity", "NASDAQ", "USD", true},
	{"AMZN", "Amazon.com, Inc.", "equity", "NASDAQ", "USD", true},
	{"NVDA", "NVIDIA Corporation", "equity", "NASDAQ", "USD", true},
	{"META", "Meta Platforms, Inc.", "equity", "NASDAQ", "USD", true},
	{"NFLX", "Netflix, Inc.", "equity", "NASDAQ", "USD", true},
	{"SPY", "SPDR S&P 500 ETF Trust", "etf", "NYSE", "USD", true},
	{"QQQ", "Invesco QQQ Trust", "etf", "NASDAQ", "USD", true},
}

var startingPrices = map[string]float64{
	"AAPL":  150.00,
	"GOOGL": 2800.00,
	"MSFT":  330.00,
	"TSLA":  250.00,
	"AMZN":  140.00,
	"NVDA":  450.00,
	"META":  320.00,
	"NFLX":  400.00,
	"SPY":   420.00,
	"QQQ":   350.00,
}

var baseVolumes = map[string]int64{
	"AAPL":  50_000_000,
	"GOOGL": 25_000_000,
	"MSFT":  30_000_000,
	"TSLA":  75_000_000,
	"AMZN":  35_000_000,
	"NVDA":  45_000_000,
	"META":  20_000_000,
	"NFLX":  8_000_000,
	"SPY":   80_000_000,
	"QQQ":   40_000_000,
}

// Universe returns the mock instrument metadata in a fixed order.
func Universe() []SymbolMeta {
	out := make([]SymbolMeta, len(universe))
	copy(out, universe)
	return out
}

// Generator walks each symbol's price forward one trading day at a time.
type Generator struct {
	rng    *rand.Rand
	prices map[string]float64
}

// New returns a generator seeded for reproducible output.
func New(seed int64) *Generator {
	g := &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		prices: make(map[string]float64, len(startingPrices)),
	}
	for s, p := range startingPrices {
		g.prices[s] = p
	}
	return g
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// Bar generates one day's OHLCV bar for a symbol and advances the
// symbol's price to the new close.
func (g *Generator) Bar(symbol string, day time.Time) (Bar, error) {
	prev, ok := g.prices[symbol]
	if !ok {
		return Bar{}, fmt.Errorf("unknown symbol %q", symbol)
	}

	// Daily volatility is typically 1-3% for liquid names.
	volatility := g.uniform(0.01, 0.03)
	move := g.rng.NormFloat64() * volatility
	dayRange := prev * math.Abs(move)

	open := prev * (1 + g.uniform(-0.005, 0.005))
	closep := prev * (1 + move)

	highRange := dayRange * g.uniform(0.5, 1.0)
	lowRange := dayRange * g.uniform(0.5, 1.0)

	var high, low float64
	if move > 0 {
		high = math.Max(open, closep) + highRange
		low = math.Min(open, closep) - lowRange*0.3
	} else {
		high = math.Max(open, closep) + highRange*0.3
		low = math.Min(open, closep) - lowRange
	}

	// Keep the OHLC relationships consistent before rounding; rounding
	// is monotonic so they survive it.
	high = math.Max(high, math.Max(open, closep))
	low = math.Min(low, math.Min(open, closep))

	base := baseVolumes[symbol]
	if base == 0 {
		base = 10_000_000
	}
	volume := int64(float64(base) * g.uniform(0.5, 2.0))

	g.prices[symbol] = closep

	return Bar{
		Symbol: symbol,
		Date:   day,
		Open:   round2(open),
		High:   round2(high),
		Low:    round2(low),
		Close:  round2(closep),
		Volume: volume,
	}, nil
}

// Backfill generates bars for the most recent business days up to and
// including end (weekends skipped), oldest day first, every universe
// symbol per day.
func (g *Generator) Backfill(days int, end time.Time) []Bar {
	var dates []time.Time
	for d := end; len(dates) < days; d = d.AddDate(0, 0, -1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dates = append(dates, d)
	}
	for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
		dates[i], dates[j] = dates[j], dates[i]
	}

	var bars []Bar
	for _, day := range dates {
		for _, m := range universe {
			bar, err := g.Bar(m.Symbol, day)
			if err != nil {
				continue
			}
			bars = append(bars, bar)
		}
	}
	return bars
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
