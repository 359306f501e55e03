package models

// PlatformBucket is the raw list of records one platform returned for a query.
type PlatformBucket struct {
	Platform string
	Records  []PriceRecord
}

// SearchResultSet is the unified view over one search response.
type SearchResultSet struct {
	Query string
	// All is sorted ascending by price; ties keep the order they were first seen in.
	All []PriceRecord
	// ByPlatform is keyed by the lower-cased platform identifier.
	ByPlatform map[string][]PriceRecord
	// Platforms lists the ByPlatform keys in first-seen order.
	Platforms []string
}

// Empty reports whether the search produced no records at all.
func (s SearchResultSet) Empty() bool {
	return len(s.All) == 0
}
