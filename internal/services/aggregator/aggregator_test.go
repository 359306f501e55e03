package aggregator_test

import (
	"math"
	"testing"

	"github.com/Houeta/price-radar/internal/models"
	"github.com/Houeta/price-radar/internal/services/aggregator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func rec(name, platform string, price int, mrp *int, rating *float64) models.PriceRecord {
	return models.NewPriceRecord(name, price, mrp, platform, rating, "", "")
}

func sampleBuckets() []models.PlatformBucket {
	return []models.PlatformBucket{
		{Platform: "amazon", Records: []models.PriceRecord{
			rec("A1", "Amazon", 500, intPtr(1000), floatPtr(4.1)),
			rec("A2", "Amazon", 300, nil, nil),
		}},
		{Platform: "flipkart", Records: []models.PriceRecord{
			rec("F1", "Flipkart", 300, intPtr(400), floatPtr(4.5)),
			rec("F2", "Flipkart", 900, intPtr(1000), floatPtr(3.9)),
		}},
		{Platform: "myntra", Records: nil},
	}
}

func TestAggregate(t *testing.T) {
	t.Run("sorted ascending and stable on ties", func(t *testing.T) {
		// Act
		set := aggregator.Aggregate("phone", sampleBuckets())

		// Assert
		require.Len(t, set.All, 4)
		names := make([]string, 0, len(set.All))
		for _, r := range set.All {
			names = append(names, r.Name)
		}
		assert.Equal(t, []string{"A2", "F1", "A1", "F2"}, names)
		assert.Equal(t, "phone", set.Query)
	})

	t.Run("partition view matches the union of all", func(t *testing.T) {
		set := aggregator.Aggregate("phone", sampleBuckets())

		var union []models.PriceRecord
		for key, records := range set.ByPlatform {
			for _, r := range records {
				assert.Equal(t, key, r.PlatformKey())
			}
			union = append(union, records...)
		}

		assert.ElementsMatch(t, set.All, union)
		assert.Equal(t, []string{"amazon", "flipkart", "myntra"}, set.Platforms)
		assert.Empty(t, set.ByPlatform["myntra"])
	})

	t.Run("record without platform inherits the bucket", func(t *testing.T) {
		buckets := []models.PlatformBucket{
			{Platform: "croma", Records: []models.PriceRecord{rec("C1", "", 100, nil, nil)}},
		}

		set := aggregator.Aggregate("tv", buckets)

		require.Len(t, set.ByPlatform["croma"], 1)
		assert.Equal(t, "Croma", set.All[0].Platform)
	})

	t.Run("all buckets empty", func(t *testing.T) {
		set := aggregator.Aggregate("nothing", []models.PlatformBucket{{Platform: "amazon"}})

		assert.True(t, set.Empty())
		assert.NotNil(t, set.All)
	})
}

func TestFilter(t *testing.T) {
	set := aggregator.Aggregate("phone", sampleBuckets())

	testCases := []struct {
		name     string
		bounds   aggregator.Bounds
		expected []string
	}{
		{
			name:     "default bounds keep everything in order",
			bounds:   aggregator.DefaultBounds(),
			expected: []string{"A2", "F1", "A1", "F2"},
		},
		{
			name:     "price window is inclusive",
			bounds:   aggregator.Bounds{MinPrice: 300, MaxPrice: 500, MinDiscount: 0},
			expected: []string{"A2", "F1", "A1"},
		},
		{
			name:     "minimum discount",
			bounds:   aggregator.Bounds{MinPrice: 0, MaxPrice: math.MaxInt, MinDiscount: 25},
			expected: []string{"F1", "A1"},
		},
		{
			name:     "nothing matches",
			bounds:   aggregator.Bounds{MinPrice: 10000, MaxPrice: math.MaxInt},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := aggregator.Filter(set, tc.bounds)

			names := []string{}
			for _, r := range got {
				assert.True(t, tc.bounds.Match(r))
				names = append(names, r.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestParseBounds(t *testing.T) {
	testCases := []struct {
		name                  string
		minPrice, maxPrice, d string
		expected              aggregator.Bounds
	}{
		{
			name: "numeric input", minPrice: "100", maxPrice: " 2000 ", d: "10",
			expected: aggregator.Bounds{MinPrice: 100, MaxPrice: 2000, MinDiscount: 10},
		},
		{
			name: "non numeric input falls back to defaults", minPrice: "abc", maxPrice: "", d: "ten",
			expected: aggregator.DefaultBounds(),
		},
		{
			name: "decimal max is truncated", minPrice: "0", maxPrice: "1500.5", d: "",
			expected: aggregator.Bounds{MinPrice: 0, MaxPrice: 1500, MinDiscount: 0},
		},
		{
			name: "leading digits are kept", minPrice: "500abc", maxPrice: "", d: "12.9%",
			expected: aggregator.Bounds{MinPrice: 500, MaxPrice: math.MaxInt, MinDiscount: 12},
		},
		{
			name: "zero max means no upper limit", minPrice: "0", maxPrice: "0", d: "0",
			expected: aggregator.DefaultBounds(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := aggregator.ParseBounds(tc.minPrice, tc.maxPrice, tc.d)

			assert.Equal(t, tc.expected, b)
		})
	}
}

func TestFilter_DecimalMaxBound(t *testing.T) {
	// Arrange
	set := aggregator.Aggregate("phone", []models.PlatformBucket{{
		Platform: "amazon",
		Records: []models.PriceRecord{
			rec("cheap", "Amazon", 1000, nil, nil),
			rec("dear", "Amazon", 5000, nil, nil),
		},
	}})

	// Act
	got := aggregator.Filter(set, aggregator.ParseBounds("0", "1500.5", ""))

	// Assert
	require.Len(t, got, 1)
	assert.Equal(t, "cheap", got[0].Name)
}

func TestSort(t *testing.T) {
	input := []models.PriceRecord{
		rec("first", "Amazon", 200, intPtr(400), nil),
		rec("second", "Amazon", 100, nil, floatPtr(4.0)),
		rec("third", "Amazon", 200, intPtr(400), floatPtr(4.0)),
		rec("fourth", "Amazon", 50, nil, nil),
	}
	original := append([]models.PriceRecord(nil), input...)

	testCases := []struct {
		key      aggregator.SortKey
		expected []string
	}{
		{aggregator.SortPriceAsc, []string{"fourth", "second", "first", "third"}},
		{aggregator.SortPriceDesc, []string{"first", "third", "second", "fourth"}},
		{aggregator.SortDiscountDesc, []string{"first", "third", "second", "fourth"}},
		{aggregator.SortRatingDesc, []string{"second", "third", "first", "fourth"}},
		{aggregator.SortKey("bogus"), []string{"first", "second", "third", "fourth"}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.key), func(t *testing.T) {
			got := aggregator.Sort(input, tc.key)

			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, tc.expected, names)
			assert.Equal(t, original, input, "input must not be reordered")
		})
	}
}

func TestParseSortKey(t *testing.T) {
	key, ok := aggregator.ParseSortKey(" Price_Desc ")
	assert.True(t, ok)
	assert.Equal(t, aggregator.SortPriceDesc, key)

	_, ok = aggregator.ParseSortKey("cheapest")
	assert.False(t, ok)
}

func TestPartitionByPlatform(t *testing.T) {
	set := aggregator.Aggregate("phone", sampleBuckets())

	t.Run("partition view", func(t *testing.T) {
		got := aggregator.PartitionByPlatform(set, "FLIPKART")

		require.Len(t, got, 2)
		assert.Equal(t, "F1", got[0].Name)
	})

	t.Run("fallback scan agrees with the partition view", func(t *testing.T) {
		withoutView := set
		withoutView.ByPlatform = map[string][]models.PriceRecord{}

		assert.Equal(t,
			aggregator.PartitionByPlatform(set, "amazon"),
			aggregator.PartitionByPlatform(withoutView, "amazon"),
		)
	})

	t.Run("all", func(t *testing.T) {
		assert.Equal(t, set.All, aggregator.PartitionByPlatform(set, "all"))
	})

	t.Run("unknown platform", func(t *testing.T) {
		assert.Empty(t, aggregator.PartitionByPlatform(set, "ebay"))
	})
}
