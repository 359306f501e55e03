// Package aggregator turns platform-partitioned search results into sorted,
// filterable views. Every function is a pure transform over its input.
package aggregator

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/Houeta/price-radar/internal/models"
)

// AllPlatforms selects the whole result set in PartitionByPlatform.
const AllPlatforms = "all"

// Aggregate merges the buckets into one set sorted ascending by price.
// Records are regrouped by their own platform, so a record with an empty
// platform inherits the one of the bucket it came in.
func Aggregate(query string, buckets []models.PlatformBucket) models.SearchResultSet {
	set := models.SearchResultSet{
		Query:      query,
		All:        []models.PriceRecord{},
		ByPlatform: make(map[string][]models.PriceRecord, len(buckets)),
	}

	for _, bucket := range buckets {
		bucketKey := models.PlatformKey(bucket.Platform)
		if bucketKey != "" {
			addPlatform(&set, bucketKey)
		}

		for _, rec := range bucket.Records {
			if models.PlatformKey(rec.Platform) == "" {
				rec.Platform = models.DisplayPlatform(bucketKey)
			}

			key := rec.PlatformKey()
			addPlatform(&set, key)
			set.ByPlatform[key] = append(set.ByPlatform[key], rec)
			set.All = append(set.All, rec)
		}
	}

	slices.SortStableFunc(set.All, func(a, b models.PriceRecord) int {
		return cmp.Compare(a.Price, b.Price)
	})

	return set
}

// addPlatform registers an empty partition for key the first time it is seen.
func addPlatform(set *models.SearchResultSet, key string) {
	if _, ok := set.ByPlatform[key]; ok {
		return
	}
	set.ByPlatform[key] = []models.PriceRecord{}
	set.Platforms = append(set.Platforms, key)
}

// Bounds is the filter predicate applied by Filter.
type Bounds struct {
	MinPrice    int
	MaxPrice    int
	MinDiscount int
}

// DefaultBounds accepts every record.
func DefaultBounds() Bounds {
	return Bounds{MinPrice: 0, MaxPrice: math.MaxInt, MinDiscount: 0}
}

// ParseBounds reads user supplied bounds. Each field is read up to its
// first non-digit, so "1500.5" is 1500 and "500abc" is 500. Blank or
// non-numeric input, and a zero bound, fall back to the default for that
// bound; a max of 0 therefore means no upper limit.
func ParseBounds(minPrice, maxPrice, minDiscount string) Bounds {
	b := DefaultBounds()
	if v, ok := parseInt(minPrice); ok && v != 0 {
		b.MinPrice = v
	}
	if v, ok := parseInt(maxPrice); ok && v != 0 {
		b.MaxPrice = v
	}
	if v, ok := parseInt(minDiscount); ok && v != 0 {
		b.MinDiscount = v
	}

	return b
}

// parseInt reads an optionally signed run of leading digits.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return v, true
}

// Match reports whether the record satisfies the bounds.
func (b Bounds) Match(rec models.PriceRecord) bool {
	return rec.Price >= b.MinPrice && rec.Price <= b.MaxPrice && rec.DiscountPercent >= b.MinDiscount
}

// Filter returns the records of set.All that match the bounds, in their original order.
func Filter(set models.SearchResultSet, bounds Bounds) []models.PriceRecord {
	out := make([]models.PriceRecord, 0, len(set.All))
	for _, rec := range set.All {
		if bounds.Match(rec) {
			out = append(out, rec)
		}
	}

	return out
}

// SortKey selects the ordering applied by Sort.
type SortKey string

const (
	SortPriceAsc     SortKey = "price_asc"
	SortPriceDesc    SortKey = "price_desc"
	SortDiscountDesc SortKey = "discount"
	SortRatingDesc   SortKey = "rating"
)

// ParseSortKey validates a user supplied sort key.
func ParseSortKey(s string) (SortKey, bool) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case SortPriceAsc, SortPriceDesc, SortDiscountDesc, SortRatingDesc:
		return key, true
	}

	return "", false
}

// Sort returns a stably sorted copy of records. Unknown keys keep the input order.
func Sort(records []models.PriceRecord, key SortKey) []models.PriceRecord {
	out := slices.Clone(records)
	if out == nil {
		out = []models.PriceRecord{}
	}

	var less func(a, b models.PriceRecord) int
	switch key {
	case SortPriceAsc:
		less = func(a, b models.PriceRecord) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceDesc:
		less = func(a, b models.PriceRecord) int { return cmp.Compare(b.Price, a.Price) }
	case SortDiscountDesc:
		less = func(a, b models.PriceRecord) int { return cmp.Compare(b.DiscountPercent, a.DiscountPercent) }
	case SortRatingDesc:
		less = func(a, b models.PriceRecord) int { return cmp.Compare(b.RatingValue(), a.RatingValue()) }
	default:
		return out
	}

	slices.SortStableFunc(out, less)

	return out
}

// PartitionByPlatform returns the records of one platform. It reads the
// partition view first and falls back to scanning set.All.
func PartitionByPlatform(set models.SearchResultSet, platform string) []models.PriceRecord {
	key := models.PlatformKey(platform)
	if key == AllPlatforms {
		return slices.Clone(set.All)
	}

	if records, ok := set.ByPlatform[key]; ok {
		return slices.Clone(records)
	}

	out := []models.PriceRecord{}
	for _, rec := range set.All {
		if rec.PlatformKey() == key {
			out = append(out, rec)
		}
	}

	return out
}
