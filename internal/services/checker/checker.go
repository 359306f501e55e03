package checker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Houeta/price-radar/internal/models"
	"golang.org/x/time/rate"
)

// Searcher retrieves platform buckets for a query.
type Searcher interface {
	Search(ctx context.Context, query string, platforms []string) models.Result[[]models.PlatformBucket]
}

// AlertLister exposes the stored alerts.
type AlertLister interface {
	List() []models.Alert
}

// Checker is an orchestrator that evaluates every stored alert against live prices.
type Checker struct {
	log      *slog.Logger
	searcher Searcher
	alerts   AlertLister
	limiter  *rate.Limiter

	mu sync.Mutex
	// notified holds the price each alert was last delivered at.
	notified map[int64]int
}

type Interface interface {
	// CheckAlerts returns the alerts whose target price has been reached.
	CheckAlerts(ctx context.Context) ([]models.Trigger, error)
	// MarkNotified records triggers that reached their owner.
	MarkNotified(triggers []models.Trigger)
}

// NewChecker creates a new Checker instance. The limiter paces live lookups.
func NewChecker(log *slog.Logger, searcher Searcher, alerts AlertLister, limiter *rate.Limiter) *Checker {
	return &Checker{
		log:      log,
		searcher: searcher,
		alerts:   alerts,
		limiter:  limiter,
		notified: make(map[int64]int),
	}
}

// CheckAlerts looks up every alerted product once and reports the alerts
// whose target is met by the cheapest live price, at or below the target.
// Once an alert is marked notified it is reported again only after the price
// drops below the one it was delivered at.
func (c *Checker) CheckAlerts(ctx context.Context) ([]models.Trigger, error) {
	const opn = "checker.CheckAlerts"
	log := c.log.With("op", opn)

	alerts := c.alerts.List()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.forgetDeleted(alerts)

	if len(alerts) == 0 {
		log.DebugContext(ctx, "No alerts to check")
		return nil, nil
	}

	byProduct := make(map[string][]models.Alert)
	order := make([]string, 0, len(alerts))
	for _, a := range alerts {
		key := strings.ToLower(strings.TrimSpace(a.Product))
		if _, ok := byProduct[key]; !ok {
			order = append(order, key)
		}
		byProduct[key] = append(byProduct[key], a)
	}

	var triggers []models.Trigger
	for _, key := range order {
		if err := c.limiter.Wait(ctx); err != nil {
			return triggers, fmt.Errorf("%s: rate limiter wait: %w", opn, err)
		}

		group := byProduct[key]
		res := c.searcher.Search(ctx, group[0].Product, nil)
		if res.IsSimulated() {
			log.DebugContext(ctx, "Skipping simulated prices", "product", group[0].Product)
			continue
		}

		cheapest, ok := cheapestRecord(res.Data)
		if !ok {
			continue
		}

		for _, a := range group {
			// Reaching the target counts.
			if float64(cheapest.Price) > a.TargetPrice {
				continue
			}
			if last, seen := c.notified[a.ID]; seen && cheapest.Price >= last {
				continue
			}
			triggers = append(triggers, models.Trigger{Alert: a, Record: cheapest})
		}
	}

	log.InfoContext(ctx, "Alert check complete", "alerts", len(alerts), "products", len(order), "triggered", len(triggers))

	return triggers, nil
}

// MarkNotified remembers the price each trigger was delivered at. Triggers
// that were never marked are reported again on the next check.
func (c *Checker) MarkNotified(triggers []models.Trigger) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range triggers {
		c.notified[t.Alert.ID] = t.Record.Price
	}
}

// forgetDeleted drops notification state of alerts that no longer exist.
func (c *Checker) forgetDeleted(alerts []models.Alert) {
	live := make(map[int64]struct{}, len(alerts))
	for _, a := range alerts {
		live[a.ID] = struct{}{}
	}

	for id := range c.notified {
		if _, ok := live[id]; !ok {
			delete(c.notified, id)
		}
	}
}

func cheapestRecord(buckets []models.PlatformBucket) (models.PriceRecord, bool) {
	var (
		best  models.PriceRecord
		found bool
	)

	for _, b := range buckets {
		for _, r := range b.Records {
			if !found || r.Price < best.Price {
				best, found = r, true
			}
		}
	}

	return best, found
}
