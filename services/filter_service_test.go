package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgera1/Khemixall-medical-products/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{
			ID:       uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Name:     "Digital Stethoscope Pro",
			Brand:    "MediTech",
			Category: models.CategoryEquipment,
			Price:    299.99,
			Rating:   4.8,
			InStock:  true,
			Features: models.FeatureList{"Digital", "Bluetooth"},
		},
		{
			ID:       uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			Name:     "Immunity Multi-Vitamin Complex",
			Brand:    "VitalLife",
			Category: models.CategoryWellness,
			Price:    24.50,
			Rating:   4.5,
			InStock:  true,
			Features: models.FeatureList{"Organic"},
		},
		{
			ID:       uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			Name:     "Sterile Surgical Gloves",
			Brand:    "SafeHands",
			Category: models.CategorySupplies,
			Price:    18.50,
			Rating:   4.8,
			InStock:  false,
			Features: models.FeatureList{"Sterile", "Latex-Free"},
		},
		{
			ID:       uuid.MustParse("00000000-0000-0000-0000-000000000004"),
			Name:     "Khemixall Pain Relief Gel",
			Brand:    "Khemixall Pharma",
			Category: models.CategoryPharmaceuticals,
			Price:    12.99,
			Rating:   4.3,
			InStock:  true,
			Features: models.FeatureList{"Fast-Acting", "Topical"},
		},
	}
}

func TestFilterProductsDefaultStateReturnsSourceOrder(t *testing.T) {
	catalog := testCatalog()

	result := FilterProducts(catalog, models.DefaultFilterState())

	require.Len(t, result, len(catalog))
	for i := range catalog {
		assert.Equal(t, catalog[i].ID, result[i].ID)
	}
}

func TestFilterProductsNeverMutatesInput(t *testing.T) {
	catalog := testCatalog()
	original := testCatalog()

	f := models.DefaultFilterState()
	f.SortBy = models.SortPriceAsc
	FilterProducts(catalog, f)

	assert.Equal(t, original, catalog)
}

func TestFilterProductsResultIsSubset(t *testing.T) {
	catalog := testCatalog()
	ids := make(map[uuid.UUID]bool, len(catalog))
	for _, p := range catalog {
		ids[p.ID] = true
	}

	f := models.DefaultFilterState()
	f.Search = "e"
	f.Availability = models.AvailabilityInStock

	for _, p := range FilterProducts(catalog, f) {
		assert.True(t, ids[p.ID], "result contains product not in catalog")
	}
}

func TestFilterProductsPredicatesAreConjunctive(t *testing.T) {
	catalog := testCatalog()

	// Gloves match the search term and the brand but are out of stock.
	f := models.DefaultFilterState()
	f.Search = "sterile"
	f.Brands = []string{"SafeHands"}
	f.Availability = models.AvailabilityInStock

	assert.Empty(t, FilterProducts(catalog, f))
}

func TestFilterProductsCategoryAndSort(t *testing.T) {
	catalog := testCatalog()

	f := models.DefaultFilterState()
	f.Category = models.CategoryEquipment
	f.SortBy = models.SortPriceAsc

	result := FilterProducts(catalog, f)
	require.Len(t, result, 1)
	assert.Equal(t, "Digital Stethoscope Pro", result[0].Name)
}

func TestFilterProductsSearchMatchesFeatures(t *testing.T) {
	catalog := testCatalog()

	f := models.DefaultFilterState()
	f.Search = "latex-free"

	result := FilterProducts(catalog, f)
	require.Len(t, result, 1)
	assert.Equal(t, "Sterile Surgical Gloves", result[0].Name)
}

func TestFilterProductsSortIsStableOnTies(t *testing.T) {
	catalog := testCatalog()

	f := models.DefaultFilterState()
	f.SortBy = models.SortRating

	result := FilterProducts(catalog, f)
	require.Len(t, result, 4)
	// Stethoscope and Gloves tie at 4.8; source order breaks the tie.
	assert.Equal(t, "Digital Stethoscope Pro", result[0].Name)
	assert.Equal(t, "Sterile Surgical Gloves", result[1].Name)
}

func TestFilterProductsIsIdempotent(t *testing.T) {
	catalog := testCatalog()

	f := models.DefaultFilterState()
	f.SortBy = models.SortPriceDesc
	f.Availability = models.AvailabilityInStock

	once := FilterProducts(catalog, f)
	twice := FilterProducts(once, f)

	assert.Equal(t, once, twice)
}

func TestFilterProductsPriceDescending(t *testing.T) {
	catalog := testCatalog()

	f := models.DefaultFilterState()
	f.SortBy = models.SortPriceDesc

	result := FilterProducts(catalog, f)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Price, result[i].Price)
	}
}

func TestUniqueBrands(t *testing.T) {
	catalog := testCatalog()
	catalog = append(catalog, models.Product{
		ID:    uuid.MustParse("00000000-0000-0000-0000-000000000005"),
		Name:  "Pulse Oximeter",
		Brand: "MediTech",
	})

	brands := UniqueBrands(catalog)

	assert.Equal(t, []string{"Khemixall Pharma", "MediTech", "SafeHands", "VitalLife"}, brands)
}
