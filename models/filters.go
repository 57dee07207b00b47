// models/filter_models.go
package models

// PriceRange represents min and max price
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ComposedQuery is the canonical catalog request derived from the settled
// state of every filter facet. It is always recomputed, never mutated.
type ComposedQuery struct {
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
	Filters QueryFilters `json:"filters"`
}

// QueryFilters carries only the filter dimensions that are active. A
// dimension at its no-op value is omitted entirely so the catalog can take
// its unfiltered fast path.
type QueryFilters struct {
	Name           string      `json:"name,omitempty"`
	Prices         *PriceRange `json:"prices,omitempty"`
	Brands         []string    `json:"brands,omitempty"`
	Categories     []string    `json:"categories,omitempty"`
	HideOutOfStock bool        `json:"hideOutOfStock,omitempty"`
}

// IsZero reports whether no filter dimension is active.
func (f QueryFilters) IsZero() bool {
	return f.Name == "" && f.Prices == nil && len(f.Brands) == 0 &&
		len(f.Categories) == 0 && !f.HideOutOfStock
}

// Equal compares two composed queries field by field. The controller uses it
// to decide whether a facet change actually requires a re-fetch.
func (q ComposedQuery) Equal(other ComposedQuery) bool {
	if q.Page != other.Page || q.Limit != other.Limit {
		return false
	}
	a, b := q.Filters, other.Filters
	if a.Name != b.Name || a.HideOutOfStock != b.HideOutOfStock {
		return false
	}
	if (a.Prices == nil) != (b.Prices == nil) {
		return false
	}
	if a.Prices != nil && *a.Prices != *b.Prices {
		return false
	}
	return equalStrings(a.Brands, b.Brands) && equalStrings(a.Categories, b.Categories)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Availability *AvailabilityData `json:"availability"`
	Brands       []FilterOption    `json:"brands"`
	Categories   []FilterOption    `json:"categories"`
	PriceRange   *PriceRange       `json:"priceRange"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// FilterOption represents a single filter option
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}
