package comparator

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"

	"github.com/Houeta/price-radar/internal/models"
)

// Source looks up raw comparison rows for a product name.
type Source interface {
	Compare(ctx context.Context, productName string) models.Result[[]models.ComparisonRow]
}

// Comparator ranks cross-platform offers for one product.
type Comparator struct {
	log    *slog.Logger
	source Source
}

// NewComparator creates a new Comparator instance.
func NewComparator(log *slog.Logger, source Source) *Comparator {
	return &Comparator{log: log, source: source}
}

// Compare fetches the offers for productName and ranks them. An empty
// comparison means no platform offered the product.
func (c *Comparator) Compare(ctx context.Context, productName string) models.Comparison {
	const opn = "comparator.Compare"

	res := c.source.Compare(ctx, productName)
	rows := Rank(res.Data)

	c.log.DebugContext(ctx, "Comparison ranked", "op", opn, "product", productName, "rows", len(rows), "mode", res.Mode)

	return models.Comparison{Product: productName, Mode: res.Mode, Rows: rows}
}

// Rank orders rows ascending by price and computes each row's delta and bar
// fill against row 0. The input is left untouched.
func Rank(rows []models.ComparisonRow) []models.RankedRow {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b models.ComparisonRow) int {
		return cmp.Compare(a.Price, b.Price)
	})

	ranked := make([]models.RankedRow, 0, len(sorted))
	if len(sorted) == 0 {
		return ranked
	}

	best := sorted[0].Price
	for i, row := range sorted {
		ranked = append(ranked, models.RankedRow{
			ComparisonRow: row,
			Best:          i == 0,
			PriceDelta:    row.Price - best,
			RelativeFill:  relativeFill(best, row.Price, i == 0),
		})
	}

	return ranked
}

func relativeFill(best, price int, isBest bool) int {
	if isBest || price <= 0 {
		return 100
	}

	return int(math.Round(float64(best) / float64(price) * 100))
}
