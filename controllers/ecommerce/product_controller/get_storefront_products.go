package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielWren48/techno-trades-sub001/discovery"
	"github.com/DanielWren48/techno-trades-sub001/models"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Applies the query-string filters to the caller's discovery session and returns the matching catalog page. Absent parameters keep the session's current facet values; invalid ones fall back to defaults.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query"
// @Param brand query []string false "Brand names (repeatable)"
// @Param category query []string false "Category IDs (repeatable)"
// @Param availability query string false "Availability filter (in_stock shows in-stock only)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param display query string false "Display mode (grid | list)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param sid query string false "Browsing session ID"
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 502 {object} models.ApiResponse "Catalog unreachable"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	sessionID := resolveSessionID(c)
	ctrl := sessions.Controller(c.Request.Context(), sessionID)

	applyQueryParams(c, ctrl.Filters())

	state, page, err := ctrl.RunOnce(c.Request.Context())
	c.Header("X-Session-ID", sessionID)

	if state == discovery.StateError {
		log.Printf("[storefront] catalog fetch failed for session %s: %v", sessionID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	snap := ctrl.Filters().Snapshot()
	c.JSON(http.StatusOK, models.ResultResponse(
		c,
		"Products fetched successfully",
		string(state),
		page.Items,
		&models.Pagination{
			Page:       snap.Page,
			Limit:      snap.ShowPerPage,
			TotalPages: page.TotalPages,
		},
	))
}
