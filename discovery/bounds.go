package discovery

import (
	"math"

	"github.com/DanielWren48/techno-trades-sub001/models"
)

// ComputeBounds derives the legal price slider extremes from an unfiltered
// catalog snapshot: floor of the lowest effective price, ceiling of the
// highest. ok is false for an empty snapshot.
func ComputeBounds(items []models.Product) (bounds models.PriceRange, ok bool) {
	if len(items) == 0 {
		return models.PriceRange{}, false
	}
	min, max := items[0].EffectivePrice(), items[0].EffectivePrice()
	for _, item := range items[1:] {
		p := item.EffectivePrice()
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return models.PriceRange{Min: math.Floor(min), Max: math.Ceil(max)}, true
}

// InitializeBounds seeds the price bounds and the active range from the
// unfiltered catalog, exactly once per epoch. Re-running while already
// seeded is a no-op: the snapshot the caller holds may have been re-fetched
// under narrower filters, and recomputed bounds must never clobber a
// shopper's in-progress selection. An empty snapshot defers initialization
// (returns false) so the caller retries when data arrives.
func (f *Filters) InitializeBounds(items []models.Product) bool {
	bounds, ok := ComputeBounds(items)
	if !ok {
		return false
	}
	f.mu.Lock()
	if f.initialized {
		f.mu.Unlock()
		return false
	}
	f.priceBounds = bounds
	f.priceRange = bounds
	f.initialized = true
	f.mu.Unlock()
	f.notify(FacetPrice)
	return true
}

// ResetBounds discards the seeded bounds and active range, opening a new
// bootstrap epoch: the next InitializeBounds call will seed again.
func (f *Filters) ResetBounds() {
	f.mu.Lock()
	f.priceBounds = models.PriceRange{}
	f.priceRange = models.PriceRange{}
	f.initialized = false
	f.mu.Unlock()
	f.notify(FacetPrice)
}
