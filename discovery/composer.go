package discovery

import "github.com/DanielWren48/techno-trades-sub001/models"

// Compose projects a settled facet snapshot onto the canonical catalog query.
// Pure and deterministic: the same snapshot always yields a deep-equal query,
// which is what lets the controller skip redundant re-fetches.
//
// A dimension at its no-op value is omitted outright rather than sent empty:
// blank search, price range sitting on the full bounds (or bounds not yet
// seeded), empty brand/category sets, stock toggle off. An all-defaults
// snapshot therefore composes to nothing but page and limit.
func Compose(s Snapshot) models.ComposedQuery {
	q := models.ComposedQuery{Page: s.Page, Limit: s.ShowPerPage}
	if s.SearchQuery != "" {
		q.Filters.Name = s.SearchQuery
	}
	if s.Initialized && s.PriceRange != s.PriceBounds {
		prices := s.PriceRange
		q.Filters.Prices = &prices
	}
	if len(s.Brands) > 0 {
		q.Filters.Brands = append([]string(nil), s.Brands...)
	}
	if len(s.Categories) > 0 {
		q.Filters.Categories = append([]string(nil), s.Categories...)
	}
	q.Filters.HideOutOfStock = s.HideOutOfStock
	return q
}
