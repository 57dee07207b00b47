package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielWren48/techno-trades-sub001/models"
)

func TestComposeOmitsNoOpDimensions(t *testing.T) {
	f := seededFilters(t)

	q := Compose(f.Snapshot())
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPerPage, q.Limit)
	assert.True(t, q.Filters.IsZero(), "default facet state must compose to an empty filter set")
}

func TestComposeOmitsPriceBeforeBootstrap(t *testing.T) {
	f := NewFilters()
	f.SetPriceRange(10, 20)

	q := Compose(f.Snapshot())
	assert.Nil(t, q.Filters.Prices, "no price filter may be submitted while bounds are unseeded")
}

func TestComposeCarriesActiveDimensions(t *testing.T) {
	f := seededFilters(t)
	f.SetSearchQuery("oled tv")
	f.ToggleBrand("Sony")
	f.ToggleBrand("LG")
	f.ToggleCategory("cat-tv")
	f.SetPriceRange(15, 30)
	f.SetHideOutOfStock(true)
	f.SetShowPerPage(24)
	f.SetPage(2)

	q := Compose(f.Snapshot())
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 24, q.Limit)
	assert.Equal(t, "oled tv", q.Filters.Name)
	require.NotNil(t, q.Filters.Prices)
	assert.Equal(t, models.PriceRange{Min: 15, Max: 30}, *q.Filters.Prices)
	assert.Equal(t, []string{"LG", "Sony"}, q.Filters.Brands)
	assert.Equal(t, []string{"cat-tv"}, q.Filters.Categories)
	assert.True(t, q.Filters.HideOutOfStock)
}

func TestComposeOmitsPriceAtFullBounds(t *testing.T) {
	f := seededFilters(t)
	f.SetPriceRange(15, 30)
	f.ResetPriceRange()

	q := Compose(f.Snapshot())
	assert.Nil(t, q.Filters.Prices)
}

func TestComposeIsDeterministic(t *testing.T) {
	f := seededFilters(t)
	f.ToggleBrand("Sony")
	f.ToggleBrand("Bose")
	f.SetSearchQuery("speaker")

	a := Compose(f.Snapshot())
	b := Compose(f.Snapshot())
	assert.True(t, a.Equal(b), "same facet state must compose to a deep-equal query")
}

func TestComposedQueryEqual(t *testing.T) {
	base := func() models.ComposedQuery {
		return models.ComposedQuery{
			Page: 1, Limit: 12,
			Filters: models.QueryFilters{
				Name:   "tv",
				Brands: []string{"LG", "Sony"},
				Prices: &models.PriceRange{Min: 10, Max: 20},
			},
		}
	}

	assert.True(t, base().Equal(base()))

	q := base()
	q.Page = 2
	assert.False(t, base().Equal(q))

	q = base()
	q.Filters.Brands = []string{"LG"}
	assert.False(t, base().Equal(q))

	q = base()
	q.Filters.Prices = nil
	assert.False(t, base().Equal(q))

	q = base()
	q.Filters.Prices = &models.PriceRange{Min: 10, Max: 25}
	assert.False(t, base().Equal(q))
}
