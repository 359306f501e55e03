package models

import (
	"fmt"
	"strings"
)

// Range is a named window of simulated price history.
type Range string

const (
	RangeShort  Range = "1M"
	RangeMedium Range = "3M"
	RangeLong   Range = "6M"
)

// rangePoints maps each range to its number of weekly samples.
var rangePoints = map[Range]int{
	RangeShort:  4,
	RangeMedium: 12,
	RangeLong:   24,
}

// Points returns the weekly sample count of the range, defaulting to the short one.
func (r Range) Points() int {
	if n, ok := rangePoints[r]; ok {
		return n
	}

	return rangePoints[RangeShort]
}

// ParseRange accepts 1M/3M/6M as well as short/medium/long.
func ParseRange(s string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1m", "short", "":
		return RangeShort, nil
	case "3m", "medium":
		return RangeMedium, nil
	case "6m", "long":
		return RangeLong, nil
	}

	return "", fmt.Errorf("unknown history range %q", s)
}

// Recommendation is the buy-or-wait verdict of a forecast.
type Recommendation string

const (
	RecommendBuy  Recommendation = "buy"
	RecommendWait Recommendation = "wait"
)

// ForecastBands are heuristic estimates derived from the current price.
type ForecastBands struct {
	// WindowDays is the near-term window the drop band refers to.
	WindowDays int
	// DropLow..DropHigh is the predicted absolute drop over the window.
	DropLow  int
	DropHigh int
	// DropTypical is the single headline drop figure.
	DropTypical int
	// SaleLow..SaleHigh is the predicted price during a sale event.
	SaleLow        int
	SaleHigh       int
	Recommendation Recommendation
}

// Insight is everything shown after picking one search result.
type Insight struct {
	Product    PriceRecord
	Comparison Comparison
	Range      Range
	// AnchorPrice is the price the history ends at.
	AnchorPrice int
	History     []int
	Forecast    ForecastBands
}
