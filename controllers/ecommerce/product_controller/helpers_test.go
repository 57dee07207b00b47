package product_controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielWren48/techno-trades-sub001/discovery"
)

func requestContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/store/products?"+rawQuery, nil)
	return c
}

func TestApplyQueryParamsInvalidValuesFallBack(t *testing.T) {
	f := discovery.NewFilters()
	applyQueryParams(requestContext(t, "page=banana&limit=0&display=spiral&minPrice=cheap"), f)

	assert.Equal(t, 1, f.Page())
	assert.Equal(t, discovery.DefaultPerPage, f.ShowPerPage())
	assert.Equal(t, discovery.DisplayGrid, f.DisplayMode())
	assert.Zero(t, f.PriceRange().Min)
}

func TestApplyQueryParamsAbsentParamsKeepFacets(t *testing.T) {
	f := discovery.NewFilters()
	f.SetSearchQuery("soundbar")
	f.ToggleBrand("Sony")

	applyQueryParams(requestContext(t, "page=2"), f)

	assert.Equal(t, "soundbar", f.SearchQuery())
	assert.Equal(t, []string{"Sony"}, f.Brands())
	assert.Equal(t, 2, f.Page())
}

func TestApplyQueryParamsSetsFacets(t *testing.T) {
	f := discovery.NewFilters()
	applyQueryParams(requestContext(t,
		"q=oled&brand=Sony&brand=LG&category=cat-tv&availability=in_stock&limit=24&display=list"), f)

	assert.Equal(t, "oled", f.SearchQuery())
	assert.Equal(t, []string{"LG", "Sony"}, f.Brands())
	assert.Equal(t, []string{"cat-tv"}, f.Categories())
	assert.True(t, f.HideOutOfStock())
	assert.Equal(t, 24, f.ShowPerPage())
	assert.Equal(t, discovery.DisplayList, f.DisplayMode())
}

func TestApplyQueryParamsFilterChangeResetsPage(t *testing.T) {
	f := discovery.NewFilters()
	f.SetPage(3)
	require.Equal(t, 3, f.Page())

	// New brand without an explicit page starts at page 1.
	applyQueryParams(requestContext(t, "brand=Bose"), f)
	assert.Equal(t, 1, f.Page())

	// Same filters again: the page survives.
	f.SetPage(2)
	applyQueryParams(requestContext(t, "brand=Bose"), f)
	assert.Equal(t, 2, f.Page())
}

func TestApplyQueryParamsEmptyBrandListClearsFacet(t *testing.T) {
	f := discovery.NewFilters()
	f.ToggleBrand("Sony")

	applyQueryParams(requestContext(t, "brand="), f)
	assert.Empty(t, f.Brands(), "an explicitly empty brand param clears the set")
}
