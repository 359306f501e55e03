package models_test

import (
	"testing"

	"github.com/Houeta/price-radar/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	testCases := []struct {
		name     string
		price    int
		mrp      *int
		expected int
	}{
		{name: "quarter off", price: 750, mrp: intPtr(1000), expected: 25},
		{name: "no mrp", price: 750, mrp: nil, expected: 0},
		{name: "mrp equals price", price: 750, mrp: intPtr(750), expected: 0},
		{name: "mrp below price", price: 750, mrp: intPtr(500), expected: 0},
		{name: "rounds half up", price: 875, mrp: intPtr(1000), expected: 13},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, models.DiscountPercent(tc.price, tc.mrp))
		})
	}
}

func TestNewPriceRecord(t *testing.T) {
	mrp := 1000
	r := models.NewPriceRecord("Phone", 750, &mrp, "Amazon", nil, "", "")

	assert.Equal(t, 25, r.DiscountPercent)
	assert.Equal(t, models.PlaceholderURL, r.URL)
	assert.Equal(t, "amazon", r.PlatformKey())
	assert.InDelta(t, 0.0, r.RatingValue(), 0)
	assert.True(t, r.HasDiscount())
}

func TestDisplayPlatform(t *testing.T) {
	assert.Equal(t, "Flipkart", models.DisplayPlatform("flipkart"))
	assert.Equal(t, "Snapdeal", models.DisplayPlatform(" SNAPDEAL "))
}

func TestParseRange(t *testing.T) {
	r, err := models.ParseRange("3m")
	assert.NoError(t, err)
	assert.Equal(t, 12, r.Points())

	r, err = models.ParseRange("long")
	assert.NoError(t, err)
	assert.Equal(t, 24, r.Points())

	_, err = models.ParseRange("1Y")
	assert.Error(t, err)

	assert.Equal(t, 4, models.Range("bogus").Points())
}
