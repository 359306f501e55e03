// Package tracker ties retrieval to the aggregation, comparison and
// history services behind the operations a user triggers.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/Houeta/price-radar/internal/models"
	"github.com/Houeta/price-radar/internal/services/aggregator"
	"github.com/Houeta/price-radar/internal/services/comparator"
	"github.com/Houeta/price-radar/internal/services/history"
)

// ErrEmptyQuery is returned when a search query is blank.
var ErrEmptyQuery = errors.New("empty search query")

// Searcher retrieves platform buckets for a query.
type Searcher interface {
	Search(ctx context.Context, query string, platforms []string) models.Result[[]models.PlatformBucket]
}

// Tracker runs searches and builds product insights.
type Tracker struct {
	log        *slog.Logger
	searcher   Searcher
	comparator *comparator.Comparator

	mu  sync.Mutex
	sim *history.Simulator
}

// NewTracker creates a new Tracker instance.
func NewTracker(log *slog.Logger, searcher Searcher, cmp *comparator.Comparator, sim *history.Simulator) *Tracker {
	return &Tracker{log: log, searcher: searcher, comparator: cmp, sim: sim}
}

// Search retrieves query across platforms and aggregates the buckets. An
// empty result set is a valid outcome, not an error.
func (t *Tracker) Search(ctx context.Context, query string, platforms []string) (models.Result[models.SearchResultSet], error) {
	const opn = "tracker.Search"

	query = strings.TrimSpace(query)
	if query == "" {
		return models.Result[models.SearchResultSet]{}, ErrEmptyQuery
	}

	res := t.searcher.Search(ctx, query, platforms)
	set := aggregator.Aggregate(query, res.Data)

	t.log.InfoContext(ctx, "Search completed", "op", opn, "query", query, "results", len(set.All), "mode", res.Mode)

	return models.Result[models.SearchResultSet]{Mode: res.Mode, Data: set}, nil
}

// Inspect compares record across platforms and simulates its history over r.
// The history ends at the best compared price, or at the record's own price
// when no platform offered it.
func (t *Tracker) Inspect(ctx context.Context, record models.PriceRecord, r models.Range) *models.Insight {
	const opn = "tracker.Inspect"

	comparison := t.comparator.Compare(ctx, record.Name)

	anchor := record.Price
	if best, ok := comparison.Best(); ok {
		anchor = best.Price
	}

	t.log.DebugContext(ctx, "Product inspected", "op", opn, "product", record.Name, "anchor", anchor, "range", r)

	return &models.Insight{
		Product:     record,
		Comparison:  comparison,
		Range:       r,
		AnchorPrice: anchor,
		History:     t.History(anchor, r),
		Forecast:    history.GenerateForecast(anchor, record.HasDiscount()),
	}
}

// History regenerates a series ending at price for another range.
func (t *Tracker) History(price int, r models.Range) []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.sim.GenerateRange(price, r)
}
