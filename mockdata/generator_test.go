package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-08-15 is a Friday.
var endDay = time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

func TestBarInvariants(t *testing.T) {
	g := New(42)
	day := endDay
	for i := 0; i < 250; i++ {
		for _, m := range Universe() {
			bar, err := g.Bar(m.Symbol, day)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, bar.High, bar.Open, "%s day %d", m.Symbol, i)
			assert.GreaterOrEqual(t, bar.High, bar.Close, "%s day %d", m.Symbol, i)
			assert.LessOrEqual(t, bar.Low, bar.Open, "%s day %d", m.Symbol, i)
			assert.LessOrEqual(t, bar.Low, bar.Close, "%s day %d", m.Symbol, i)
			assert.Greater(t, bar.Volume, int64(0))
			assert.Greater(t, bar.Low, 0.0)
		}
		day = day.AddDate(0, 0, 1)
	}
}

func TestBarUnknownSymbol(t *testing.T) {
	_, err := New(1).Bar("NOPE", endDay)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown symbol")
}

func TestBackfillDeterministic(t *testing.T) {
	a := New(42).Backfill(10, endDay)
	b := New(42).Backfill(10, endDay)
	assert.Equal(t, a, b)

	c := New(7).Backfill(10, endDay)
	assert.NotEqual(t, a, c)
}

func TestBackfillSkipsWeekends(t *testing.T) {
	// ending on a Sunday: the weekend is skipped entirely
	sunday := time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC)
	bars := New(42).Backfill(5, sunday)

	require.Len(t, bars, 5*len(Universe()))
	for _, bar := range bars {
		wd := bar.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}

	// oldest first, newest last
	assert.True(t, bars[0].Date.Before(bars[len(bars)-1].Date))
	assert.Equal(t, endDay, bars[len(bars)-1].Date, "last business day before the Sunday end")
}

func TestBackfillCoversUniverse(t *testing.T) {
	bars := New(42).Backfill(3, endDay)
	seen := make(map[string]int)
	for _, bar := range bars {
		seen[bar.Symbol]++
	}
	for _, m := range Universe() {
		assert.Equal(t, 3, seen[m.Symbol], m.Symbol)
	}
}
