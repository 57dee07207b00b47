package discovery

import "github.com/DanielWren48/techno-trades-sub001/models"

// Snapshot is a point-in-time copy of every facet value. The composer reads
// one, the session store persists one, and the UI re-reads one to redraw its
// widgets.
type Snapshot struct {
	SearchQuery    string            `json:"search_query"`
	PriceRange     models.PriceRange `json:"price_range"`
	PriceBounds    models.PriceRange `json:"price_bounds"`
	Initialized    bool              `json:"initialized"`
	Brands         []string          `json:"brands,omitempty"`
	Categories     []string          `json:"categories,omitempty"`
	HideOutOfStock bool              `json:"hide_out_of_stock"`
	ShowPerPage    int               `json:"show_per_page"`
	DisplayMode    DisplayMode       `json:"display_mode"`
	Page           int               `json:"page"`
}

// Snapshot copies the current facet state. Set facets come out sorted so two
// snapshots of equal state compare equal.
func (f *Filters) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		SearchQuery:    f.searchQuery,
		PriceRange:     f.priceRange,
		PriceBounds:    f.priceBounds,
		Initialized:    f.initialized,
		Brands:         sortedKeys(f.brands),
		Categories:     sortedKeys(f.categories),
		HideOutOfStock: f.hideOutOfStock,
		ShowPerPage:    f.showPerPage,
		DisplayMode:    f.displayMode,
		Page:           f.page,
	}
}

// Restore replaces all facet state from a persisted snapshot in one atomic
// transition (observers hear a single FacetAll). Invalid persisted values
// never error: an unrecognized display mode, a non-positive page or page
// size all fall back to their defaults.
func (f *Filters) Restore(s Snapshot) {
	if s.DisplayMode != DisplayGrid && s.DisplayMode != DisplayList {
		s.DisplayMode = DisplayGrid
	}
	if s.Page < 1 {
		s.Page = 1
	}
	if s.ShowPerPage < 1 {
		s.ShowPerPage = DefaultPerPage
	}
	if s.PriceRange.Min > s.PriceRange.Max {
		s.PriceRange.Min, s.PriceRange.Max = s.PriceRange.Max, s.PriceRange.Min
	}
	if s.Initialized {
		s.PriceRange.Min = clamp(s.PriceRange.Min, s.PriceBounds.Min, s.PriceBounds.Max)
		s.PriceRange.Max = clamp(s.PriceRange.Max, s.PriceBounds.Min, s.PriceBounds.Max)
	}
	f.mu.Lock()
	f.searchQuery = s.SearchQuery
	f.priceRange = s.PriceRange
	f.priceBounds = s.PriceBounds
	f.initialized = s.Initialized
	f.brands = toSet(s.Brands)
	f.categories = toSet(s.Categories)
	f.hideOutOfStock = s.HideOutOfStock
	f.showPerPage = s.ShowPerPage
	f.displayMode = s.DisplayMode
	f.page = s.Page
	f.mu.Unlock()
	f.notify(FacetAll)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
