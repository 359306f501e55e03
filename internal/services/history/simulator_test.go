package history_test

import (
	"testing"

	"github.com/Houeta/price-radar/internal/models"
	"github.com/Houeta/price-radar/internal/services/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHistory(t *testing.T) {
	sim := history.NewSimulator()

	testCases := []struct {
		price  int
		points int
	}{
		{price: 1, points: 1},
		{price: 999, points: 2},
		{price: 15000, points: 4},
		{price: 74999, points: 12},
		{price: 120, points: 24},
	}

	for _, tc := range testCases {
		for range 20 {
			series := sim.GenerateHistory(tc.price, tc.points)

			require.Len(t, series, tc.points)
			assert.Equal(t, tc.price, series[len(series)-1])
			for _, v := range series[:len(series)-1] {
				// The floor keeps every point at or above 85% of the current price.
				assert.GreaterOrEqual(t, v, int(float64(tc.price)*0.85)-1)
			}
		}
	}
}

func TestGenerateHistory_Seeded(t *testing.T) {
	a := history.NewSeededSimulator(42).GenerateHistory(10000, 12)
	b := history.NewSeededSimulator(42).GenerateHistory(10000, 12)

	assert.Equal(t, a, b)
}

func TestGenerateHistory_NoPoints(t *testing.T) {
	assert.Empty(t, history.NewSimulator().GenerateHistory(100, 0))
}

func TestGenerateRange(t *testing.T) {
	sim := history.NewSimulator()

	assert.Len(t, sim.GenerateRange(500, models.RangeShort), 4)
	assert.Len(t, sim.GenerateRange(500, models.RangeMedium), 12)
	assert.Len(t, sim.GenerateRange(500, models.RangeLong), 24)
}

func TestGenerateForecast(t *testing.T) {
	t.Run("discounted product", func(t *testing.T) {
		f := history.GenerateForecast(10000, true)

		assert.Equal(t, models.ForecastBands{
			WindowDays:     7,
			DropLow:        300,
			DropHigh:       600,
			DropTypical:    400,
			SaleLow:        7500,
			SaleHigh:       8500,
			Recommendation: models.RecommendBuy,
		}, f)
	})

	t.Run("full price product", func(t *testing.T) {
		f := history.GenerateForecast(1999, false)

		assert.Equal(t, 60, f.DropLow)
		assert.Equal(t, 120, f.DropHigh)
		assert.Equal(t, 1499, f.SaleLow)
		assert.Equal(t, 1699, f.SaleHigh)
		assert.Equal(t, models.RecommendWait, f.Recommendation)
	})
}
