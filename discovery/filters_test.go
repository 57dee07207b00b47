package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielWren48/techno-trades-sub001/models"
)

func product(price float64, opts ...func(*models.Product)) models.Product {
	p := models.Product{Name: "item", Brand: "Sony", CategoryID: "cat-tv", Price: price, Stock: 3}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func discounted(price float64) func(*models.Product) {
	return func(p *models.Product) {
		p.IsDiscounted = true
		p.DiscountedPrice = &price
	}
}

func seededFilters(t *testing.T) *Filters {
	t.Helper()
	f := NewFilters()
	ok := f.InitializeBounds([]models.Product{product(19.99), product(49.5), product(9.0)})
	require.True(t, ok)
	return f
}

func TestInitializeBoundsFloorsAndCeils(t *testing.T) {
	f := seededFilters(t)

	bounds, ok := f.PriceBounds()
	require.True(t, ok)
	assert.Equal(t, models.PriceRange{Min: 9, Max: 50}, bounds)
	assert.Equal(t, bounds, f.PriceRange(), "active range is seeded to the bounds")
}

func TestInitializeBoundsUsesEffectivePrice(t *testing.T) {
	f := NewFilters()
	items := []models.Product{
		product(100, discounted(24.5)),
		product(80),
	}
	require.True(t, f.InitializeBounds(items))

	bounds, _ := f.PriceBounds()
	assert.Equal(t, models.PriceRange{Min: 24, Max: 80}, bounds)
}

func TestInitializeBoundsRunsOncePerEpoch(t *testing.T) {
	f := seededFilters(t)
	f.SetPriceRange(15, 30)

	// A later snapshot, re-fetched under narrower filters, must not clobber
	// the seeded bounds or the shopper's selection.
	assert.False(t, f.InitializeBounds([]models.Product{product(200), product(400)}))
	bounds, _ := f.PriceBounds()
	assert.Equal(t, models.PriceRange{Min: 9, Max: 50}, bounds)
	assert.Equal(t, models.PriceRange{Min: 15, Max: 30}, f.PriceRange())

	// An explicit bounds reset opens exactly one more bootstrap epoch.
	f.ResetBounds()
	assert.False(t, f.Initialized())
	require.True(t, f.InitializeBounds([]models.Product{product(200), product(400)}))
	bounds, _ = f.PriceBounds()
	assert.Equal(t, models.PriceRange{Min: 200, Max: 400}, bounds)
}

func TestInitializeBoundsDefersOnEmptyCatalog(t *testing.T) {
	f := NewFilters()
	assert.False(t, f.InitializeBounds(nil))
	assert.False(t, f.Initialized())

	// Retry succeeds once data arrives.
	assert.True(t, f.InitializeBounds([]models.Product{product(12)}))
	assert.True(t, f.Initialized())
}

func TestSetPriceRangeClampsToBounds(t *testing.T) {
	f := seededFilters(t)

	f.SetPriceRange(-5, 10000)
	assert.Equal(t, models.PriceRange{Min: 9, Max: 50}, f.PriceRange())

	f.SetPriceRange(40, 20)
	assert.Equal(t, models.PriceRange{Min: 20, Max: 40}, f.PriceRange(), "min > max is swapped, not rejected")
}

func TestResetPriceRange(t *testing.T) {
	f := seededFilters(t)
	assert.False(t, f.CanResetPriceRange())
	assert.False(t, f.ResetPriceRange(), "reset is a no-op while the range sits on the bounds")

	f.SetPriceRange(15, 30)
	assert.True(t, f.CanResetPriceRange())
	assert.True(t, f.ResetPriceRange())
	bounds, _ := f.PriceBounds()
	assert.Equal(t, bounds, f.PriceRange())
}

func TestToggleBrandIsIdempotentInPairs(t *testing.T) {
	f := NewFilters()

	f.ToggleBrand("Sony")
	assert.Equal(t, []string{"Sony"}, f.Brands())
	assert.True(t, f.HasBrand("Sony"))

	f.ToggleBrand("Sony")
	assert.Empty(t, f.Brands())
	assert.False(t, f.HasBrand("Sony"))
}

func TestToggleCategoryKeyedByID(t *testing.T) {
	f := NewFilters()

	f.ToggleCategory("cat-tv")
	f.ToggleCategory("cat-audio")
	assert.Equal(t, []string{"cat-audio", "cat-tv"}, f.Categories())

	f.ToggleCategory("cat-tv")
	assert.Equal(t, []string{"cat-audio"}, f.Categories())
}

func TestFilterChangesResetPage(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(f *Filters)
		reset  bool
	}{
		{"toggle category", func(f *Filters) { f.ToggleCategory("cat-tv") }, true},
		{"toggle brand", func(f *Filters) { f.ToggleBrand("Sony") }, true},
		{"search text", func(f *Filters) { f.SetSearchQuery("oled") }, true},
		{"price range", func(f *Filters) { f.SetPriceRange(10, 20) }, true},
		{"stock toggle", func(f *Filters) { f.SetHideOutOfStock(true) }, true},
		{"page size", func(f *Filters) { f.SetShowPerPage(24) }, true},
		{"display mode", func(f *Filters) { f.SetDisplayMode(DisplayList) }, false},
		{"page itself", func(f *Filters) { f.SetPage(5) }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFilters()
			f.SetPage(3)
			require.Equal(t, 3, f.Page())

			tc.mutate(f)
			if tc.reset {
				assert.Equal(t, 1, f.Page())
			} else {
				assert.NotEqual(t, 1, f.Page())
			}
		})
	}
}

func TestSetPageFloorsAtOne(t *testing.T) {
	f := NewFilters()
	f.SetPage(0)
	assert.Equal(t, 1, f.Page())
	f.SetPage(-3)
	assert.Equal(t, 1, f.Page())
}

func TestInvalidSortValuesIgnored(t *testing.T) {
	f := NewFilters()
	f.SetShowPerPage(0)
	assert.Equal(t, DefaultPerPage, f.ShowPerPage())
	f.SetDisplayMode("carousel")
	assert.Equal(t, DisplayGrid, f.DisplayMode())
}

func TestEveryObserverHearsEachChange(t *testing.T) {
	f := NewFilters()
	var first, second []Facet
	f.Observe(func(facet Facet) { first = append(first, facet) })
	f.Observe(func(facet Facet) { second = append(second, facet) })

	f.ToggleBrand("Sony")
	f.SetSearchQuery("bravia")

	want := []Facet{FacetBrands, FacetSearch}
	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
}

func TestClearAllIsAtomicAndPreservesBounds(t *testing.T) {
	f := seededFilters(t)
	f.SetSearchQuery("headphones")
	f.ToggleBrand("Sony")
	f.ToggleBrand("Bose")
	f.ToggleCategory("cat-audio")
	f.SetPriceRange(15, 30)
	f.SetHideOutOfStock(true)
	f.SetPage(3)

	var events []Facet
	f.Observe(func(facet Facet) { events = append(events, facet) })

	f.ClearAll()

	require.Equal(t, []Facet{FacetAll}, events, "global clear must notify exactly once")
	assert.Empty(t, f.SearchQuery())
	assert.Empty(t, f.Brands())
	assert.Empty(t, f.Categories())
	assert.False(t, f.HideOutOfStock())
	assert.Equal(t, 1, f.Page())

	bounds, ok := f.PriceBounds()
	require.True(t, ok, "seeded bounds survive a global clear")
	assert.Equal(t, models.PriceRange{Min: 9, Max: 50}, bounds)
	assert.Equal(t, bounds, f.PriceRange())
}

func TestClearBrandsAndCategoriesIndependent(t *testing.T) {
	f := NewFilters()
	f.ToggleBrand("Sony")
	f.ToggleCategory("cat-tv")

	f.ClearBrands()
	assert.Empty(t, f.Brands())
	assert.Equal(t, []string{"cat-tv"}, f.Categories(), "clearing one facet must not touch another")

	f.ClearCategories()
	assert.Empty(t, f.Categories())
}

func TestRestoreFallsBackOnInvalidPersistedState(t *testing.T) {
	f := NewFilters()
	f.Restore(Snapshot{
		DisplayMode: "diagonal",
		ShowPerPage: -4,
		Page:        0,
		Brands:      []string{"Sony"},
	})

	assert.Equal(t, DisplayGrid, f.DisplayMode())
	assert.Equal(t, DefaultPerPage, f.ShowPerPage())
	assert.Equal(t, 1, f.Page())
	assert.Equal(t, []string{"Sony"}, f.Brands())
}

func TestSnapshotRoundTrip(t *testing.T) {
	f := seededFilters(t)
	f.SetSearchQuery("bravia")
	f.ToggleBrand("Sony")
	f.SetPriceRange(12, 40)
	f.SetPage(2)
	f.SetPage(2) // no-op

	restored := NewFilters()
	restored.Restore(f.Snapshot())
	assert.Equal(t, f.Snapshot(), restored.Snapshot())
}
