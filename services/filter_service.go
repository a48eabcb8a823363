package services

import (
	"sort"
	"strings"

	"github.com/pgera1/Khemixall-medical-products/models"
)

// FilterProducts derives the visible product list from the full catalog and
// a filter specification. Every active predicate must hold (logical AND);
// sorting is applied after filtering and is stable, so ties keep their
// relative source order. The input slice is never mutated - the result is a
// fresh projection that can be recomputed from scratch at any time.
func FilterProducts(products []models.Product, f models.FilterState) []models.Product {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, term) {
			continue
		}
		if f.Category != models.CategoryAll && p.Category != f.Category {
			continue
		}
		if !matchesAvailability(p, f.Availability) {
			continue
		}
		if len(f.Brands) > 0 && !containsString(f.Brands, p.Brand) {
			continue
		}
		result = append(result, p)
	}

	switch f.SortBy {
	case models.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case models.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case models.SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	default:
		// featured keeps source order
	}

	return result
}

// matchesSearch does a case-insensitive contains match across name,
// description, brand and every feature tag; any one match suffices.
func matchesSearch(p models.Product, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) {
		return true
	}
	for _, feature := range p.Features {
		if strings.Contains(strings.ToLower(feature), term) {
			return true
		}
	}
	return false
}

func matchesAvailability(p models.Product, a models.Availability) bool {
	switch a {
	case models.AvailabilityInStock:
		return p.InStock
	case models.AvailabilityOutOfStock:
		return !p.InStock
	default:
		return true
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// UniqueBrands returns the sorted set of brand names present in the catalog.
func UniqueBrands(products []models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	brands := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands
}
