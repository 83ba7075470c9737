package models

import "strings"

// CategoryAll disables the category stage.
const CategoryAll = "all"

// SortKey orders search results.
type SortKey string

const (
	SortByRating     SortKey = "rating-desc"
	SortByPriceLow   SortKey = "price-asc"
	SortByPriceHigh  SortKey = "price-desc"
	SortByPopularity SortKey = "popularity-desc"
)

// ParseSortKey maps both the listing vocabulary (rating, price-low, price-high,
// popular) and the canonical names onto a SortKey. Anything else sorts by popularity.
func ParseSortKey(raw string) SortKey {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "rating", string(SortByRating):
		return SortByRating
	case "price-low", string(SortByPriceLow):
		return SortByPriceLow
	case "price-high", string(SortByPriceHigh):
		return SortByPriceHigh
	default:
		return SortByPopularity
	}
}

// ServiceFilter narrows and orders a catalog search. Zero values disable a stage.
type ServiceFilter struct {
	Category   string
	ProviderID *int64
	Location   string
	Lat        *float64
	Lon        *float64
	RadiusKm   *float64
	SortBy     SortKey

	// IncludeRejected keeps listings an admin has rejected.
	IncludeRejected bool
}
