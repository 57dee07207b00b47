package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielWren48/techno-trades-sub001/discovery"
	"github.com/DanielWren48/techno-trades-sub001/models"
	"github.com/DanielWren48/techno-trades-sub001/services"
)

var sessions *services.DiscoverySessionService

// InitSessions wires the shared session service. Called once from main.
func InitSessions(s *services.DiscoverySessionService) {
	sessions = s
}

// sessionFiltersView is the facet state as the filter widgets re-read it.
type sessionFiltersView struct {
	SearchQuery    string             `json:"search_query"`
	PriceRange     models.PriceRange  `json:"price_range"`
	PriceBounds    *models.PriceRange `json:"price_bounds,omitempty"`
	CanResetPrice  bool               `json:"can_reset_price"`
	Brands         []string           `json:"brands"`
	Categories     []string           `json:"categories"`
	HideOutOfStock bool               `json:"hide_out_of_stock"`
	ShowPerPage    int                `json:"show_per_page"`
	DisplayMode    string             `json:"display_mode"`
	Page           int                `json:"page"`
}

func requireSessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Session-ID")
	if id == "" {
		id = c.Query("sid")
	}
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing session ID"))
		return "", false
	}
	return id, true
}

func viewOf(ctrl *discovery.Controller) sessionFiltersView {
	snap := ctrl.Filters().Snapshot()
	view := sessionFiltersView{
		SearchQuery:    snap.SearchQuery,
		PriceRange:     snap.PriceRange,
		CanResetPrice:  ctrl.Filters().CanResetPriceRange(),
		Brands:         snap.Brands,
		Categories:     snap.Categories,
		HideOutOfStock: snap.HideOutOfStock,
		ShowPerPage:    snap.ShowPerPage,
		DisplayMode:    string(snap.DisplayMode),
		Page:           snap.Page,
	}
	if snap.Initialized {
		bounds := snap.PriceBounds
		view.PriceBounds = &bounds
	}
	if view.Brands == nil {
		view.Brands = []string{}
	}
	if view.Categories == nil {
		view.Categories = []string{}
	}
	return view
}

// GetSessionFilters godoc
// @Summary Get the session's current filter state
// @Description Returns every facet's current value so the filter widgets can render consistently with the result set
// @Tags Storefront - Filters
// @Produce json
// @Param sid query string false "Browsing session ID (or X-Session-ID header)"
// @Success 200 {object} models.ApiResponse{data=filter_controller.sessionFiltersView}
// @Failure 400 {object} models.ApiResponse
// @Router /store/session/filters [get]
func GetSessionFilters(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}
	ctrl := sessions.Controller(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter state fetched", viewOf(ctrl)))
}

// ClearSessionFilters godoc
// @Summary Remove all applied filters
// @Description Clears search, brands, categories, stock toggle and price range in one atomic transition; the seeded price bounds survive
// @Tags Storefront - Filters
// @Produce json
// @Param sid query string false "Browsing session ID (or X-Session-ID header)"
// @Success 200 {object} models.ApiResponse{data=filter_controller.sessionFiltersView}
// @Failure 400 {object} models.ApiResponse
// @Router /store/session/filters/clear [post]
func ClearSessionFilters(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}
	ctrl := sessions.Controller(c.Request.Context(), sessionID)
	ctrl.Filters().ClearAll()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters cleared", viewOf(ctrl)))
}

// ResetSessionPriceRange godoc
// @Summary Reset the price range to the catalog bounds
// @Description Per-facet reset: snaps the price slider back to its seeded extremes, leaving every other facet untouched
// @Tags Storefront - Filters
// @Produce json
// @Param sid query string false "Browsing session ID (or X-Session-ID header)"
// @Success 200 {object} models.ApiResponse{data=filter_controller.sessionFiltersView}
// @Failure 400 {object} models.ApiResponse
// @Router /store/session/filters/price/reset [post]
func ResetSessionPriceRange(c *gin.Context) {
	sessionID, ok := requireSessionID(c)
	if !ok {
		return
	}
	ctrl := sessions.Controller(c.Request.Context(), sessionID)
	ctrl.Filters().ResetPriceRange()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price range reset", viewOf(ctrl)))
}
