package models

import "net/url"

// SortOption is the closed set of storefront sort keys.
type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortRating    SortOption = "rating"
)

// ParseSortOption falls back to featured (source order) on unknown input.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortPriceAsc, SortPriceDesc, SortRating:
		return SortOption(s)
	default:
		return SortFeatured
	}
}

// Availability is the stock predicate selector.
type Availability string

const (
	AvailabilityAll        Availability = "all"
	AvailabilityInStock    Availability = "in-stock"
	AvailabilityOutOfStock Availability = "out-of-stock"
)

func ParseAvailability(s string) Availability {
	switch Availability(s) {
	case AvailabilityInStock, AvailabilityOutOfStock:
		return Availability(s)
	default:
		return AvailabilityAll
	}
}

// FilterState is the full storefront filter specification. The zero-ish
// state (empty search, All category, featured sort, all availability, no
// brands) matches the entire catalog in source order.
type FilterState struct {
	Search       string       `json:"search"`
	Category     Category     `json:"category"`
	SortBy       SortOption   `json:"sortBy"`
	Availability Availability `json:"availability"`
	Brands       []string     `json:"brands"`
}

// DefaultFilterState returns the unrestricted filter.
func DefaultFilterState() FilterState {
	return FilterState{
		Category:     CategoryAll,
		SortBy:       SortFeatured,
		Availability: AvailabilityAll,
		Brands:       []string{},
	}
}

// FilterStateFromQuery builds a FilterState from storefront query params:
// q, category, sortBy, availability and repeatable brand. Unknown enum
// values degrade to their unrestricted defaults.
func FilterStateFromQuery(values url.Values) FilterState {
	f := DefaultFilterState()
	f.Search = values.Get("q")
	if v := values.Get("category"); v != "" {
		f.Category = ParseCategory(v)
	}
	if v := values.Get("sortBy"); v != "" {
		f.SortBy = ParseSortOption(v)
	}
	if v := values.Get("availability"); v != "" {
		f.Availability = ParseAvailability(v)
	}
	if brands, ok := values["brand"]; ok {
		f.Brands = append(f.Brands, brands...)
	}
	return f
}

// FilterMetadata is the storefront sidebar payload: which brands exist,
// how many products are in/out of stock and the catalog price range.
type FilterMetadata struct {
	Brands       []string          `json:"brands"`
	Categories   []Category        `json:"categories"`
	Availability *AvailabilityData `json:"availability"`
	PriceRange   *PriceRangeData   `json:"priceRange"`
}

type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
