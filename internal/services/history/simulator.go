// Package history produces synthetic price-history series and heuristic
// forecast bands. The numbers are illustrations, not predictions.
package history

import (
	"math"
	"math/rand/v2"

	"github.com/Houeta/price-radar/internal/models"
)

const (
	startMarkup      = 1.18
	trendDrop        = 0.15
	noiseShare       = 0.04
	floorShare       = 0.85
	forecastWindow   = 7
	dropLowShare     = 0.03
	dropTypicalShare = 0.04
	dropHighShare    = 0.06
	saleLowShare     = 0.75
	saleHighShare    = 0.85
)

// Simulator generates history series using its own random source.
type Simulator struct {
	rnd *rand.Rand
}

// NewSimulator returns a simulator with a randomly seeded source.
func NewSimulator() *Simulator {
	return &Simulator{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))} //nolint:gosec // not security sensitive
}

// NewSeededSimulator returns a simulator whose noise is reproducible.
func NewSeededSimulator(seed uint64) *Simulator {
	return &Simulator{rnd: rand.New(rand.NewPCG(seed, seed))} //nolint:gosec // not security sensitive
}

// GenerateHistory returns pointCount weekly prices trending down to
// currentPrice. The last point is always currentPrice exactly.
func (s *Simulator) GenerateHistory(currentPrice, pointCount int) []int {
	if pointCount < 1 {
		return []int{}
	}

	price := float64(currentPrice)
	current := price * startMarkup
	series := make([]int, 0, pointCount)

	for i := range pointCount {
		progress := 0.0
		if pointCount > 1 {
			progress = float64(i) / float64(pointCount-1)
		}

		trend := current * (1 - progress*trendDrop)
		noise := (s.rnd.Float64() - 0.5) * price * noiseShare
		current = math.Max(price*floorShare, trend+noise)
		series = append(series, int(math.Round(current)))
	}

	series[len(series)-1] = currentPrice

	return series
}

// GenerateRange is GenerateHistory sized by a named range.
func (s *Simulator) GenerateRange(currentPrice int, r models.Range) []int {
	return s.GenerateHistory(currentPrice, r.Points())
}

// GenerateForecast derives the short-term drop band, the sale-event price
// band and a buy-or-wait verdict from the current price.
func GenerateForecast(currentPrice int, hasDiscount bool) models.ForecastBands {
	price := float64(currentPrice)

	rec := models.RecommendWait
	if hasDiscount {
		rec = models.RecommendBuy
	}

	return models.ForecastBands{
		WindowDays:     forecastWindow,
		DropLow:        roundInt(price * dropLowShare),
		DropHigh:       roundInt(price * dropHighShare),
		DropTypical:    roundInt(price * dropTypicalShare),
		SaleLow:        roundInt(price * saleLowShare),
		SaleHigh:       roundInt(price * saleHighShare),
		Recommendation: rec,
	}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
