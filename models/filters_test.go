package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterStateFromQueryDefaults(t *testing.T) {
	f := FilterStateFromQuery(url.Values{})

	assert.Equal(t, DefaultFilterState(), f)
}

func TestFilterStateFromQueryFullSpec(t *testing.T) {
	values := url.Values{
		"q":            {"stethoscope"},
		"category":     {"Medical Equipment"},
		"sortBy":       {"price-asc"},
		"availability": {"in-stock"},
		"brand":        {"MediTech", "VitalLife"},
	}

	f := FilterStateFromQuery(values)

	assert.Equal(t, "stethoscope", f.Search)
	assert.Equal(t, CategoryEquipment, f.Category)
	assert.Equal(t, SortPriceAsc, f.SortBy)
	assert.Equal(t, AvailabilityInStock, f.Availability)
	assert.Equal(t, []string{"MediTech", "VitalLife"}, f.Brands)
}

func TestFilterStateFromQueryUnknownEnumsDegrade(t *testing.T) {
	values := url.Values{
		"category":     {"Toys"},
		"sortBy":       {"alphabetical"},
		"availability": {"backordered"},
	}

	f := FilterStateFromQuery(values)

	assert.Equal(t, CategoryAll, f.Category)
	assert.Equal(t, SortFeatured, f.SortBy)
	assert.Equal(t, AvailabilityAll, f.Availability)
}

func TestParseCategoryRoundTrip(t *testing.T) {
	for _, c := range StorableCategories {
		assert.Equal(t, c, ParseCategory(string(c)))
	}
	assert.Equal(t, CategoryAll, ParseCategory("All"))
	assert.Equal(t, CategoryAll, ParseCategory("nonsense"))
}
