package discovery

import (
	"sort"
	"sync"

	"github.com/DanielWren48/techno-trades-sub001/models"
)

// Facet identifies which filter dimension changed in an observer callback.
type Facet int

const (
	FacetSearch Facet = iota
	FacetPrice
	FacetBrands
	FacetCategories
	FacetStock
	FacetSort
	FacetPage
	// FacetAll is sent once for atomic multi-facet transitions (global clear,
	// session restore) so observers issue a single recompute, not one per
	// cleared dimension.
	FacetAll
)

// DisplayMode selects how the result grid is rendered. It never reaches the
// composed query.
type DisplayMode string

const (
	DisplayGrid DisplayMode = "grid"
	DisplayList DisplayMode = "list"
)

const DefaultPerPage = 12

// Filters owns every filter facet for one browsing session: search text,
// price range, brand set, category set, stock toggle, sort preference and
// page number. Each facet has its own mutation API and knows nothing about
// the others; mutations that change what is being filtered on also reset the
// page back to 1, since the old page index is meaningless against a new
// result set.
type Filters struct {
	mu             sync.Mutex
	searchQuery    string
	priceRange     models.PriceRange
	priceBounds    models.PriceRange
	initialized    bool
	brands         map[string]struct{}
	categories     map[string]struct{}
	hideOutOfStock bool
	showPerPage    int
	displayMode    DisplayMode
	page           int
	observers      []func(Facet)
}

func NewFilters() *Filters {
	return &Filters{
		brands:      make(map[string]struct{}),
		categories:  make(map[string]struct{}),
		showPerPage: DefaultPerPage,
		displayMode: DisplayGrid,
		page:        1,
	}
}

// Observe registers a callback invoked after every facet change. Callbacks
// run outside the state lock and may read facets freely.
func (f *Filters) Observe(fn func(Facet)) {
	f.mu.Lock()
	f.observers = append(f.observers, fn)
	f.mu.Unlock()
}

func (f *Filters) notify(facet Facet) {
	f.mu.Lock()
	obs := make([]func(Facet), len(f.observers))
	copy(obs, f.observers)
	f.mu.Unlock()
	for _, fn := range obs {
		fn(facet)
	}
}

// resetPageLocked invalidates pagination after a filter change. Callers hold f.mu.
func (f *Filters) resetPageLocked() {
	f.page = 1
}

// ── Search ───────────────────────────────────────────────────────────────────

func (f *Filters) SearchQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchQuery
}

// SetSearchQuery records the raw text on every keystroke. Debouncing happens
// downstream in the controller, not here.
func (f *Filters) SetSearchQuery(q string) {
	f.mu.Lock()
	if f.searchQuery == q {
		f.mu.Unlock()
		return
	}
	f.searchQuery = q
	f.resetPageLocked()
	f.mu.Unlock()
	f.notify(FacetSearch)
}

// ── Price range ──────────────────────────────────────────────────────────────

func (f *Filters) PriceRange() models.PriceRange {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.priceRange
}

// PriceBounds returns the legal slider extremes and whether the bootstrap has
// seeded them yet.
func (f *Filters) PriceBounds() (models.PriceRange, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.priceBounds, f.initialized
}

func (f *Filters) Initialized() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.initialized
}

// SetPriceRange stores a slider selection. min > max is swapped, and once the
// bounds are seeded the pair is clamped into them; out-of-range input is
// corrected in place, never rejected.
func (f *Filters) SetPriceRange(min, max float64) {
	if min > max {
		min, max = max, min
	}
	f.mu.Lock()
	if f.initialized {
		min = clamp(min, f.priceBounds.Min, f.priceBounds.Max)
		max = clamp(max, f.priceBounds.Min, f.priceBounds.Max)
	}
	next := models.PriceRange{Min: min, Max: max}
	if f.priceRange == next {
		f.mu.Unlock()
		return
	}
	f.priceRange = next
	f.resetPageLocked()
	f.mu.Unlock()
	f.notify(FacetPrice)
}

// CanResetPriceRange reports whether the active range differs from the
// catalog bounds; UI uses it to enable the per-facet reset affordance.
func (f *Filters) CanResetPriceRange() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.initialized && f.priceRange != f.priceBounds
}

// ResetPriceRange snaps the active range back to the catalog bounds. No-op
// when the bounds are not seeded yet or the range already sits on them.
func (f *Filters) ResetPriceRange() bool {
	f.mu.Lock()
	if !f.initialized || f.priceRange == f.priceBounds {
		f.mu.Unlock()
		return false
	}
	f.priceRange = f.priceBounds
	f.resetPageLocked()
	f.mu.Unlock()
	f.notify(FacetPrice)
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ── Brands ───────────────────────────────────────────────────────────────────

func (f *Filters) Brands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sortedKeys(f.brands)
}

func (f *Filters) HasBrand(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.brands[name]
	return ok
}

// ToggleBrand adds the brand when absent and removes it when present, so two
// toggles of the same value are a net no-op.
func (f *Filters) ToggleBrand(name string) {
	f.mu.Lock()
	if _, ok := f.brands[name]; ok {
		delete(f.brands, name)
	} else {
		f.brands[name] = struct{}{}
	}
	f.resetPageLocked()
	f.mu.Unlock()
	f.notify(FacetBrands)
}

func (f *Filters) ClearBrands() {
	f.mu.Lock()
	if len(f.brands) == 0 {
		f.mu.Unlock()
		return
	}
	f.brands = make(map[string]struct{})
	f.resetPageLocked()
	f.mu.Unlock()
	f.notify(FacetBrands)
}

// ── Categories ───────────────────────────────────────────────────────────────

func (f *Filters) Categories() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sortedKeys(f.categories)
}

func (f *Filters) HasCategory(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.categories[id]
	return ok
}

// ToggleCategory is keyed by category identifier, never the display label, so
// entries differing only in casing cannot accumulate.
func (f *Filters) ToggleCategory(id string) {
	f.mu.Lock()
	if _, ok := f.categories[id]; ok {
		delete(f.categories, id)
	} else {
		f.categories[id] = struct{}{}
	}
	f.resetPageLocked()
	f.mu.Unlock()
	f.notify(FacetCategories)
}

func (f *Filters) ClearCategories() {
	f.mu.Lock()
	if len(f.categories) == 0 {
		f.mu.Unlock()
		return
	}
	f.categories = make(map[string]struct{})
	f.resetPageLocked()
	f.mu.Unlock()
	f.notify(FacetCategories)
}

// ── Stock visibility ─────────────────────────────────────────────────────────

func (f *Filters) HideOutOfStock() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hideOutOfStock
}

func (f *Filters) SetHideOutOfStock(hide bool) {
	f.mu.Lock()
	if f.hideOutOfStock == hide {
		f.mu.Unlock()
		return
	}
	f.hideOutOfStock = hide
	f.resetPageLocked()
	f.mu.Unlock()
	f.notify(FacetStock)
}

// ── Sort preference ──────────────────────────────────────────────────────────

func (f *Filters) ShowPerPage() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.showPerPage
}

// SetShowPerPage changes the page size. A new page size invalidates the page
// index just like a filter change does.
func (f *Filters) SetShowPerPage(n int) {
	f.mu.Lock()
	if n < 1 || f.showPerPage == n {
		f.mu.Unlock()
		return
	}
	f.showPerPage = n
	f.resetPageLocked()
	f.mu.Unlock()
	f.notify(FacetSort)
}

func (f *Filters) DisplayMode() DisplayMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.displayMode
}

// SetDisplayMode switches grid/list rendering. Presentation-only: it does not
// touch pagination and the composed query never carries it.
func (f *Filters) SetDisplayMode(mode DisplayMode) {
	if mode != DisplayGrid && mode != DisplayList {
		return
	}
	f.mu.Lock()
	if f.displayMode == mode {
		f.mu.Unlock()
		return
	}
	f.displayMode = mode
	f.mu.Unlock()
	f.notify(FacetSort)
}

// ── Pagination ───────────────────────────────────────────────────────────────

func (f *Filters) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// SetPage moves to another result page. This is the one mutation that never
// resets itself.
func (f *Filters) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	f.mu.Lock()
	if f.page == page {
		f.mu.Unlock()
		return
	}
	f.page = page
	f.mu.Unlock()
	f.notify(FacetPage)
}

// ── Reset/clear protocol ─────────────────────────────────────────────────────

// ClearAll removes every applied filter in one atomic transition: search
// text, both sets, the stock toggle and the price range all return to their
// defaults and the page snaps to 1. The seeded price bounds survive, and
// observers hear exactly one FacetAll, so the controller re-fetches once.
func (f *Filters) ClearAll() {
	f.mu.Lock()
	f.searchQuery = ""
	f.brands = make(map[string]struct{})
	f.categories = make(map[string]struct{})
	f.hideOutOfStock = false
	if f.initialized {
		f.priceRange = f.priceBounds
	} else {
		f.priceRange = models.PriceRange{}
	}
	f.page = 1
	f.mu.Unlock()
	f.notify(FacetAll)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
