package models

// ComparisonRow is one platform's offer for a compared product.
type ComparisonRow struct {
	Platform string   `json:"platform"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Rating   *float64 `json:"rating"`
	URL      string   `json:"url"`
}

// RankedRow is a comparison row with its position relative to the best offer.
type RankedRow struct {
	ComparisonRow

	Best bool
	// PriceDelta is price minus the best price, never negative.
	PriceDelta int
	// RelativeFill is round(best/price*100), used to draw proportional bars.
	RelativeFill int
}

// Comparison is the ranked cross-platform listing for one product name.
type Comparison struct {
	Product string
	Mode    Mode
	Rows    []RankedRow
}

// Available reports whether any platform offered the product.
func (c Comparison) Available() bool {
	return len(c.Rows) > 0
}

// Best returns row 0 when the comparison is available.
func (c Comparison) Best() (RankedRow, bool) {
	if len(c.Rows) == 0 {
		return RankedRow{}, false
	}

	return c.Rows[0], true
}
