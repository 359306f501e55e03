package retrieval

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/Houeta/price-radar/internal/models"
)

// Roster is the fixed list of supported platforms.
var Roster = []string{"amazon", "flipkart", "myntra", "meesho", "croma", "nykaa", "snapdeal"}

var brands = map[string]string{
	"amazon":   "AmazonBasics",
	"flipkart": "MarQ",
	"myntra":   "Roadster",
	"meesho":   "DressBerry",
	"croma":    "Croma",
	"nykaa":    "Nykaa",
	"snapdeal": "SnapFit",
}

var variants = []string{"Pro", "Plus", "Ultra", "Lite", "Max", "Elite"}

const recordsPerPlatform = 4

// NormalisePlatforms keeps the requested platforms that are on the roster,
// lower-cased and without duplicates. No valid platform means the whole roster.
func NormalisePlatforms(requested []string) []string {
	out := make([]string, 0, len(requested))
	for _, p := range requested {
		key := models.PlatformKey(p)
		if slices.Contains(Roster, key) && !slices.Contains(out, key) {
			out = append(out, key)
		}
	}

	if len(out) == 0 {
		return slices.Clone(Roster)
	}

	return out
}

// Fallback generates plausible data when the remote API is unreachable.
// Prices scale with the query length so longer, more specific queries look
// like pricier products.
type Fallback struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewFallback returns a randomly seeded Fallback.
func NewFallback() *Fallback {
	return NewSeededFallback(rand.Uint64())
}

// NewSeededFallback returns a Fallback with reproducible output.
func NewSeededFallback(seed uint64) *Fallback {
	return &Fallback{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // not security sensitive
}

// Search fabricates four records per platform.
func (f *Fallback) Search(query string, platforms []string) []models.PlatformBucket {
	f.mu.Lock()
	defer f.mu.Unlock()

	base := f.basePrice(query)
	buckets := make([]models.PlatformBucket, 0, len(platforms))

	for _, platform := range NormalisePlatforms(platforms) {
		bucket := models.PlatformBucket{Platform: platform, Records: make([]models.PriceRecord, 0, recordsPerPlatform)}
		for range recordsPerPlatform {
			mrp := f.price(base * 1.3)
			price := f.price(base)
			rating := f.rating()
			bucket.Records = append(bucket.Records, models.NewPriceRecord(
				f.name(query, platform),
				price,
				&mrp,
				models.DisplayPlatform(platform),
				&rating,
				models.PlaceholderURL,
				"",
			))
		}
		buckets = append(buckets, bucket)
	}

	return buckets
}

// Compare fabricates one offer per roster platform.
func (f *Fallback) Compare(productName string) []models.ComparisonRow {
	f.mu.Lock()
	defer f.mu.Unlock()

	base := f.basePrice(productName)
	rows := make([]models.ComparisonRow, 0, len(Roster))

	for _, platform := range Roster {
		rating := f.rating()
		rows = append(rows, models.ComparisonRow{
			Platform: models.DisplayPlatform(platform),
			Name:     f.name(productName, platform),
			Price:    f.price(base),
			Rating:   &rating,
			URL:      models.PlaceholderURL,
		})
	}

	return rows
}

func (f *Fallback) basePrice(query string) float64 {
	return 900 + math.Floor(float64(utf8.RuneCountInString(query))*180+f.rnd.Float64()*6000)
}

// price scatters b by -20%..+25% and rounds to the nearest ten.
func (f *Fallback) price(b float64) int {
	return int(math.Round(b*(0.8+f.rnd.Float64()*0.45)/10)) * 10
}

func (f *Fallback) rating() float64 {
	return math.Round((3.5+f.rnd.Float64()*1.4)*10) / 10
}

func (f *Fallback) name(query, platform string) string {
	brand, ok := brands[platform]
	if !ok {
		brand = "Generic"
	}

	words := strings.Fields(query)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}

	return strings.Join([]string{brand, strings.Join(words, " "), variants[f.rnd.IntN(len(variants))]}, " ")
}
