package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DanielWren48/techno-trades-sub001/discovery"
	"github.com/DanielWren48/techno-trades-sub001/services"
)

var sessions *services.DiscoverySessionService

// InitSessions wires the shared session service. Called once from main.
func InitSessions(s *services.DiscoverySessionService) {
	sessions = s
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// resolveSessionID identifies the browsing session: header first, then query
// parameter, else a fresh ID the client is expected to echo back.
func resolveSessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	if id := c.Query("sid"); id != "" {
		return id
	}
	return uuid.Must(uuid.NewV7()).String()
}

// applyQueryParams maps the deep-link query string onto facet state as one
// atomic transition. Absent parameters leave their facet untouched; invalid
// values fall back to the facet default and never error.
func applyQueryParams(c *gin.Context, f *discovery.Filters) {
	params := c.Request.URL.Query()
	snap := f.Snapshot()
	before := snap

	if params.Has("q") {
		snap.SearchQuery = c.Query("q")
	}
	if brands, ok := params["brand"]; ok {
		snap.Brands = dropEmpty(brands)
	}
	if categories, ok := params["category"]; ok {
		snap.Categories = dropEmpty(categories)
	}
	if params.Has("availability") {
		snap.HideOutOfStock = c.Query("availability") == "in_stock"
	}
	if params.Has("minPrice") {
		if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
			snap.PriceRange.Min = v
		}
	}
	if params.Has("maxPrice") {
		if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
			snap.PriceRange.Max = v
		}
	}
	if params.Has("page") {
		// Restore floors non-positive pages back to 1.
		snap.Page, _ = strconv.Atoi(c.Query("page"))
	}
	if params.Has("limit") {
		if n, err := strconv.Atoi(c.Query("limit")); err == nil && n >= 1 && n <= 100 {
			snap.ShowPerPage = n
		}
	}
	if params.Has("display") {
		snap.DisplayMode = discovery.DisplayMode(c.Query("display"))
	}

	// A deep link that changes what is filtered on without naming a page
	// starts from page 1, same as an interactive facet change would.
	if !params.Has("page") && filtersDiffer(before, snap) {
		snap.Page = 1
	}

	f.Restore(snap)
}

// filtersDiffer reports whether two snapshots compose to different queries,
// pagination aside.
func filtersDiffer(a, b discovery.Snapshot) bool {
	a.Page, b.Page = 1, 1
	return !discovery.Compose(a).Equal(discovery.Compose(b))
}

func dropEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
