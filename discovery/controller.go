package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/DanielWren48/techno-trades-sub001/models"
)

// ResultState is the controller's current, mutually exclusive display state.
type ResultState string

const (
	StateLoading   ResultState = "loading"
	StateEmpty     ResultState = "empty"
	StateError     ResultState = "error"
	StatePopulated ResultState = "populated"
)

// SettleDelay is the quiet period for the debounced facets (search text and
// price range).
const SettleDelay = 500 * time.Millisecond

// Controller drives one browsing session's discovery view. It owns the
// Filters instance, routes the fast-moving facets (search, price) through
// their own debounce cells, recomposes the catalog query on every settled
// change, and keeps the fetched result set consistent with the latest query.
//
// Responses are discriminated by request sequence number: an in-flight fetch
// superseded by a newer composed query has its result dropped on arrival, so
// the displayed items always reflect the last edit ("latest wins").
type Controller struct {
	filters *Filters
	catalog Catalog

	searchDeb *Debouncer[string]
	priceDeb  *Debouncer[models.PriceRange]

	mu            sync.Mutex
	baseCtx       context.Context
	started       bool
	settledSearch string
	settledPrice  models.PriceRange
	state         ResultState
	fetchErr      error
	items         []models.Product
	totalPages    int
	lastQuery     models.ComposedQuery
	hasFetched    bool
	seq           uint64
	subscribers   map[uint64]func()
	nextSubID     uint64
}

func NewController(catalog Catalog) *Controller {
	c := &Controller{
		filters:     NewFilters(),
		catalog:     catalog,
		baseCtx:     context.Background(),
		state:       StateLoading,
		subscribers: make(map[uint64]func()),
	}
	c.searchDeb = NewDebouncer(SettleDelay, c.onSearchSettled)
	c.priceDeb = NewDebouncer(SettleDelay, c.onPriceSettled)
	c.filters.Observe(c.onFacetChange)
	return c
}

// Filters exposes the facet mutation API for this session.
func (c *Controller) Filters() *Filters {
	return c.filters
}

// Start scopes all fetches to ctx, attempts the price-bounds bootstrap and
// issues the initial fetch.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	c.baseCtx = ctx
	c.started = true
	c.mu.Unlock()
	c.refresh()
}

// Attach scopes all fetches to ctx without issuing the initial fetch. The
// HTTP facade uses it: fetching at session creation would be wasted work,
// since the request that created the session runs RunOnce immediately after
// and supersedes the in-flight result.
func (c *Controller) Attach(ctx context.Context) {
	c.mu.Lock()
	c.baseCtx = ctx
	c.started = true
	c.mu.Unlock()
}

// Subscribe registers a callback fired after any result-state change. The
// returned function unsubscribes.
func (c *Controller) Subscribe(fn func()) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

func (c *Controller) notify() {
	c.mu.Lock()
	subs := make([]func(), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// State reports loading, empty, error or populated. Empty and error are
// deliberately distinct: "no results" must never render as "request failed".
func (c *Controller) State() ResultState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the catalog failure behind an error state, nil otherwise.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchErr
}

// Items returns the currently displayed result page.
func (c *Controller) Items() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Product(nil), c.items...)
}

func (c *Controller) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

// Query returns the last composed query submitted to the catalog.
func (c *Controller) Query() models.ComposedQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastQuery
}

// Close cancels pending debounce timers. Any in-flight fetch resolves against
// a bumped sequence number and is dropped.
func (c *Controller) Close() {
	c.searchDeb.Stop()
	c.priceDeb.Stop()
	c.mu.Lock()
	c.seq++
	c.mu.Unlock()
}

// onFacetChange routes raw facet mutations: the fast-moving facets go through
// their debounce cells, everything else recomposes immediately.
func (c *Controller) onFacetChange(facet Facet) {
	switch facet {
	case FacetSearch:
		c.searchDeb.Set(c.filters.SearchQuery())
	case FacetPrice:
		c.priceDeb.Set(c.filters.PriceRange())
	case FacetAll:
		// Atomic transition: adopt the new values as already settled so the
		// single recompute below is the only query change observers see.
		c.searchDeb.Stop()
		c.priceDeb.Stop()
		c.mu.Lock()
		c.settledSearch = c.filters.SearchQuery()
		c.settledPrice = c.filters.PriceRange()
		c.mu.Unlock()
		c.refresh()
	default:
		c.refresh()
	}
}

func (c *Controller) onSearchSettled(q string) {
	c.mu.Lock()
	c.settledSearch = q
	c.mu.Unlock()
	c.refresh()
}

func (c *Controller) onPriceSettled(r models.PriceRange) {
	c.mu.Lock()
	c.settledPrice = r
	c.mu.Unlock()
	c.refresh()
}

// ensureBounds runs the price-bounds bootstrap if it has not succeeded yet.
// A missing or empty snapshot is not an error, just a deferral: the next
// refresh tries again.
func (c *Controller) ensureBounds() {
	if c.filters.Initialized() {
		return
	}
	c.mu.Lock()
	ctx := c.baseCtx
	c.mu.Unlock()
	items, err := c.catalog.FetchSnapshot(ctx)
	if err != nil || len(items) == 0 {
		return
	}
	if c.filters.InitializeBounds(items) {
		bounds, _ := c.filters.PriceBounds()
		c.mu.Lock()
		c.settledPrice = bounds
		c.mu.Unlock()
	}
}

// settledSnapshot is the facet snapshot with the debounced facets replaced by
// their settled values.
func (c *Controller) settledSnapshot() Snapshot {
	snap := c.filters.Snapshot()
	c.mu.Lock()
	snap.SearchQuery = c.settledSearch
	if snap.Initialized {
		snap.PriceRange = c.settledPrice
	}
	c.mu.Unlock()
	return snap
}

// refresh recomposes the query from settled facet state and, when it differs
// from the last submitted one, issues a fetch. Re-fetching the same query is
// allowed only out of an error state (the manual retry path). Before Start
// or Attach the controller is inert: a session-restore mutation must not
// fetch on its own.
func (c *Controller) refresh() {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	c.ensureBounds()
	snap := c.settledSnapshot()
	query := Compose(snap)

	c.mu.Lock()
	if c.hasFetched && c.state != StateError && query.Equal(c.lastQuery) {
		c.mu.Unlock()
		return
	}
	c.seq++
	nr := c.seq
	c.lastQuery = query
	c.hasFetched = true
	c.state = StateLoading
	ctx := c.baseCtx
	c.mu.Unlock()

	c.notify()
	go func() {
		page, err := c.catalog.FetchPage(ctx, query)
		c.apply(nr, page, err)
	}()
}

// apply installs a fetch result unless a newer query superseded it while the
// request was in flight.
func (c *Controller) apply(nr uint64, page models.CatalogPage, err error) {
	c.mu.Lock()
	if nr != c.seq {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.state = StateError
		c.fetchErr = err
		c.items = nil
		c.totalPages = 0
	} else {
		c.fetchErr = nil
		c.items = page.Items
		c.totalPages = page.TotalPages
		if len(page.Items) == 0 {
			c.state = StateEmpty
		} else {
			c.state = StatePopulated
		}
	}
	c.mu.Unlock()
	c.notify()
}

// Flush settles both debounce cells immediately. The HTTP facade uses it: a
// deep link arriving as query parameters is a single settled edit, not a
// keystroke burst.
func (c *Controller) Flush() {
	c.searchDeb.Flush()
	c.priceDeb.Flush()
}

// RunOnce flushes pending debounces, recomposes and fetches synchronously,
// returning the resulting state and page. It participates in the same
// sequence numbering as the async path, so it supersedes any in-flight fetch
// and cannot itself be clobbered by a stale response.
func (c *Controller) RunOnce(ctx context.Context) (ResultState, models.CatalogPage, error) {
	c.Flush()
	c.ensureBounds()
	snap := c.settledSnapshot()
	query := Compose(snap)

	c.mu.Lock()
	if c.hasFetched && query.Equal(c.lastQuery) &&
		(c.state == StatePopulated || c.state == StateEmpty) {
		page := models.CatalogPage{
			Items:      append([]models.Product(nil), c.items...),
			TotalPages: c.totalPages,
		}
		state := c.state
		c.mu.Unlock()
		return state, page, nil
	}
	c.seq++
	nr := c.seq
	c.lastQuery = query
	c.hasFetched = true
	c.state = StateLoading
	c.mu.Unlock()
	c.notify()

	page, err := c.catalog.FetchPage(ctx, query)
	c.apply(nr, page, err)

	c.mu.Lock()
	state := c.state
	fetchErr := c.fetchErr
	c.mu.Unlock()
	return state, page, fetchErr
}
