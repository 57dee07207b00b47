package filter_controller

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/DanielWren48/techno-trades-sub001/discovery"
	"github.com/DanielWren48/techno-trades-sub001/models"
)

var catalog discovery.Catalog

// InitCatalog wires the catalog collaborator. Called once from main.
func InitCatalog(c discovery.Catalog) {
	catalog = c
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns availability counts, brand and category options, and the price range the slider may cover, all derived from the unfiltered catalog snapshot
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 502 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	items, err := catalog.FetchSnapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	metadata := &models.FilterMetadata{
		Availability: availabilityCounts(items),
		Brands:       countOptions(items, func(p models.Product) string { return p.Brand }),
		Categories:   countOptions(items, func(p models.Product) string { return p.CategoryID }),
	}
	if bounds, ok := discovery.ComputeBounds(items); ok {
		metadata.PriceRange = &bounds
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

func availabilityCounts(items []models.Product) *models.AvailabilityData {
	data := &models.AvailabilityData{}
	for _, item := range items {
		if item.InStock() {
			data.InStock++
		} else {
			data.OutOfStock++
		}
	}
	return data
}

// countOptions tallies products per key and returns the options sorted by
// label for stable rendering.
func countOptions(items []models.Product, key func(models.Product) string) []models.FilterOption {
	counts := make(map[string]int)
	for _, item := range items {
		if k := key(item); k != "" {
			counts[k]++
		}
	}
	options := make([]models.FilterOption, 0, len(counts))
	for k, n := range counts {
		options = append(options, models.FilterOption{Label: k, Value: k, Count: n})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Label < options[j].Label })
	return options
}
