package snapshot_cache

import (
	"sync"
	"time"

	"github.com/DanielWren48/techno-trades-sub001/models"
)

const TTL = 5 * time.Minute

// ── Full catalog snapshot cache ──────────────────────────────────────────────
// Stores the unfiltered product list the price-bounds bootstrap and the
// filter-metadata endpoint read from, so neither hits the catalog API on
// every call.

type snapshotEntry struct {
	items     []models.Product
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache *snapshotEntry
)

func Get() ([]models.Product, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cache != nil && time.Since(cache.fetchedAt) < TTL {
		return cache.items, true
	}
	return nil, false
}

func Set(items []models.Product) {
	mu.Lock()
	defer mu.Unlock()
	cache = &snapshotEntry{items: items, fetchedAt: time.Now()}
}

// ── Invalidate (call when the catalog is known to have changed) ──────────────

func Invalidate() {
	mu.Lock()
	cache = nil
	mu.Unlock()
}
