package retrieval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/Houeta/price-radar/internal/models"
)

// flexNumber decodes a JSON number that may also arrive quoted or as null.
type flexNumber struct {
	value *float64
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		n.value = nil
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			n.value = nil
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid number %q", raw)
	}
	n.value = &v

	return nil
}

func (n flexNumber) float() *float64 {
	return n.value
}

func (n flexNumber) int() *int {
	if n.value == nil {
		return nil
	}
	v := int(math.Round(*n.value))

	return &v
}

// apiProduct is one product as the remote API encodes it.
type apiProduct struct {
	Platform string     `json:"platform"`
	Name     string     `json:"name"`
	Price    flexNumber `json:"price"`
	MRP      flexNumber `json:"mrp"`
	Rating   flexNumber `json:"rating"`
	URL      string     `json:"url"`
	Image    string     `json:"img"`
}

// valid drops entries the API could not fully scrape.
func (p apiProduct) valid() bool {
	return strings.TrimSpace(p.Name) != "" && p.Price.value != nil && *p.Price.value >= 0
}

func (p apiProduct) record() models.PriceRecord {
	return models.NewPriceRecord(
		strings.TrimSpace(p.Name),
		*p.Price.int(),
		p.MRP.int(),
		p.Platform,
		p.Rating.float(),
		p.URL,
		p.Image,
	)
}

func (p apiProduct) comparisonRow() models.ComparisonRow {
	url := p.URL
	if url == "" {
		url = models.PlaceholderURL
	}

	return models.ComparisonRow{
		Platform: p.Platform,
		Name:     strings.TrimSpace(p.Name),
		Price:    *p.Price.int(),
		Rating:   p.Rating.float(),
		URL:      url,
	}
}

// searchResponse is the body of GET /search.
type searchResponse struct {
	Query      string                  `json:"query"`
	Total      int                     `json:"total"`
	Elapsed    float64                 `json:"elapsed"`
	ByPlatform map[string][]apiProduct `json:"by_platform"`
	All        []apiProduct            `json:"all"`
}

// compareResponse is the body of GET /compare.
type compareResponse struct {
	Query   string       `json:"query"`
	Results []apiProduct `json:"results"`
}

// buckets orders the partition view by the requested platforms, then by
// any extra platform the API returned in roster order, then alphabetically.
func (r searchResponse) buckets(requested []string) []models.PlatformBucket {
	byKey := make(map[string][]apiProduct, len(r.ByPlatform))
	// Case variants of one platform merge in key order.
	for _, platform := range slices.Sorted(maps.Keys(r.ByPlatform)) {
		key := models.PlatformKey(platform)
		byKey[key] = append(byKey[key], r.ByPlatform[platform]...)
	}

	order := make([]string, 0, len(byKey))
	seen := make(map[string]bool, len(byKey))
	candidates := append(append(slices.Clone(requested), Roster...), slices.Sorted(maps.Keys(byKey))...)
	for _, p := range candidates {
		key := models.PlatformKey(p)
		if _, ok := byKey[key]; ok && !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
	}

	out := make([]models.PlatformBucket, 0, len(order))
	for _, key := range order {
		bucket := models.PlatformBucket{Platform: key, Records: []models.PriceRecord{}}
		for _, p := range byKey[key] {
			if p.valid() {
				bucket.Records = append(bucket.Records, p.record())
			}
		}
		out = append(out, bucket)
	}

	return out
}
