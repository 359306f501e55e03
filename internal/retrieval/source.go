package retrieval

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/Houeta/price-radar/internal/cache"
	"github.com/Houeta/price-radar/internal/metrics"
	"github.com/Houeta/price-radar/internal/models"
)

// Remote is the network side of retrieval.
type Remote interface {
	Search(ctx context.Context, query string, platforms []string) ([]models.PlatformBucket, error)
	Compare(ctx context.Context, productName string) ([]models.ComparisonRow, error)
	Ping(ctx context.Context) error
}

// Source retrieves live data and degrades to simulated data when the remote
// API fails. Callers branch on the Mode of the returned result.
type Source struct {
	log      *slog.Logger
	remote   Remote
	fallback *Fallback
	cache    cache.Cache
	ttl      time.Duration
	metrics  *metrics.Metrics
}

// Option configures a Source.
type Option func(*Source)

// WithMetrics counts every lookup by the mode it was served in.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Source) { s.metrics = m }
}

// NewSource wires the remote API, the fallback and the response cache.
// A nil remote always yields simulated data.
func NewSource(log *slog.Logger, remote Remote, fallback *Fallback, c cache.Cache, ttl time.Duration, opts ...Option) *Source {
	if c == nil {
		c = cache.Nop{}
	}

	s := &Source{log: log, remote: remote, fallback: fallback, cache: c, ttl: ttl}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Search returns the platform buckets for query.
func (s *Source) Search(ctx context.Context, query string, platforms []string) models.Result[[]models.PlatformBucket] {
	res := s.search(ctx, query, platforms)
	s.metrics.ObserveLookup(metrics.KindSearch, res.Mode)

	return res
}

func (s *Source) search(ctx context.Context, query string, platforms []string) models.Result[[]models.PlatformBucket] {
	const opn = "retrieval.Source.Search"
	log := s.log.With("op", opn, "query", query)

	platforms = NormalisePlatforms(platforms)
	key := searchKey(query, platforms)

	var cached []models.PlatformBucket
	if s.cacheGet(ctx, key, &cached) {
		log.DebugContext(ctx, "Cache hit")
		return models.Live(cached)
	}

	if s.remote == nil {
		return models.Simulated(s.fallback.Search(query, platforms))
	}

	buckets, err := s.remote.Search(ctx, query, platforms)
	if err != nil {
		log.WarnContext(ctx, "Search retrieval failed, using simulated data", "error", err)
		return models.Simulated(s.fallback.Search(query, platforms))
	}

	if hasRecords(buckets) {
		s.cacheSet(ctx, key, buckets)
	}

	return models.Live(buckets)
}

// Compare returns the cross-platform rows for productName.
func (s *Source) Compare(ctx context.Context, productName string) models.Result[[]models.ComparisonRow] {
	res := s.compare(ctx, productName)
	s.metrics.ObserveLookup(metrics.KindCompare, res.Mode)

	return res
}

func (s *Source) compare(ctx context.Context, productName string) models.Result[[]models.ComparisonRow] {
	const opn = "retrieval.Source.Compare"
	log := s.log.With("op", opn, "product", productName)

	key := "compare:" + strings.ToLower(strings.TrimSpace(productName))

	var cached []models.ComparisonRow
	if s.cacheGet(ctx, key, &cached) {
		log.DebugContext(ctx, "Cache hit")
		return models.Live(cached)
	}

	if s.remote == nil {
		return models.Simulated(s.fallback.Compare(productName))
	}

	rows, err := s.remote.Compare(ctx, productName)
	if err != nil {
		log.WarnContext(ctx, "Compare retrieval failed, using simulated data", "error", err)
		return models.Simulated(s.fallback.Compare(productName))
	}

	if len(rows) > 0 {
		s.cacheSet(ctx, key, rows)
	}

	return models.Live(rows)
}

// Healthy reports whether the remote API answers its health check. It only
// feeds the demo-mode indicator.
func (s *Source) Healthy(ctx context.Context) bool {
	if s.remote == nil {
		return false
	}

	if err := s.remote.Ping(ctx); err != nil {
		s.log.WarnContext(ctx, "Health check failed", "op", "retrieval.Source.Healthy", "error", err)
		return false
	}

	return true
}

func (s *Source) cacheGet(ctx context.Context, key string, dst any) bool {
	found, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		s.log.WarnContext(ctx, "Cache read failed", "key", key, "error", err)
		return false
	}

	return found
}

func (s *Source) cacheSet(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.log.WarnContext(ctx, "Cache write failed", "key", key, "error", err)
	}
}

func searchKey(query string, platforms []string) string {
	sorted := slices.Sorted(slices.Values(platforms))
	return "search:" + strings.ToLower(strings.TrimSpace(query)) + "|" + strings.Join(sorted, ",")
}

func hasRecords(buckets []models.PlatformBucket) bool {
	for _, b := range buckets {
		if len(b.Records) > 0 {
			return true
		}
	}

	return false
}
