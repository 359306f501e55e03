package models

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PlaceholderURL is used when a record has no outbound link.
const PlaceholderURL = "#"

// PriceRecord is one observed price of a product on one platform.
type PriceRecord struct {
	Name            string   `json:"name"`
	Price           int      `json:"price"`
	MRP             *int     `json:"mrp"`
	DiscountPercent int      `json:"discount"`
	Platform        string   `json:"platform"`
	Rating          *float64 `json:"rating"`
	URL             string   `json:"url"`
	Image           string   `json:"img,omitempty"`
}

// NewPriceRecord builds a record and derives its discount from mrp and price.
func NewPriceRecord(name string, price int, mrp *int, platform string, rating *float64, url, image string) PriceRecord {
	if url == "" {
		url = PlaceholderURL
	}

	return PriceRecord{
		Name:            name,
		Price:           price,
		MRP:             mrp,
		DiscountPercent: DiscountPercent(price, mrp),
		Platform:        platform,
		Rating:          rating,
		URL:             url,
		Image:           image,
	}
}

// DiscountPercent returns round((mrp-price)/mrp*100), or 0 when mrp is absent or not above price.
func DiscountPercent(price int, mrp *int) int {
	if mrp == nil || *mrp <= price || *mrp <= 0 {
		return 0
	}

	pct := int(math.Round(float64(*mrp-price) / float64(*mrp) * 100))

	return max(pct, 0)
}

// PlatformKey is the case-insensitive grouping key of the record's platform.
func (r PriceRecord) PlatformKey() string {
	return PlatformKey(r.Platform)
}

// RatingValue returns the rating, treating an absent one as 0.
func (r PriceRecord) RatingValue() float64 {
	if r.Rating == nil {
		return 0
	}

	return *r.Rating
}

// HasDiscount reports whether the record is sold below its mrp.
func (r PriceRecord) HasDiscount() bool {
	return r.DiscountPercent > 0
}

// PlatformKey normalises a platform identifier for grouping.
func PlatformKey(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// DisplayPlatform turns a platform key into its presentation form, e.g. "amazon" -> "Amazon".
func DisplayPlatform(platform string) string {
	return cases.Title(language.English).String(PlatformKey(platform))
}
