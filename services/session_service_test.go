package services

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielWren48/techno-trades-sub001/models"
)

type stubCatalog struct {
	pageFetches *atomic.Int32
}

func (s stubCatalog) FetchPage(context.Context, models.ComposedQuery) (models.CatalogPage, error) {
	if s.pageFetches != nil {
		s.pageFetches.Add(1)
	}
	return models.CatalogPage{Items: []models.Product{{Name: "HT-A7000", Brand: "Sony", Price: 1099, Stock: 2}}, TotalPages: 1}, nil
}

func (stubCatalog) FetchSnapshot(context.Context) ([]models.Product, error) {
	return []models.Product{{Name: "HT-A7000", Brand: "Sony", Price: 1099, Stock: 2}}, nil
}

func TestSessionServiceReusesControllers(t *testing.T) {
	svc := NewDiscoverySessionService(stubCatalog{})
	ctx := context.Background()

	a := svc.Controller(ctx, "sess-1")
	b := svc.Controller(ctx, "sess-1")
	other := svc.Controller(ctx, "sess-2")

	assert.Same(t, a, b, "one controller per session")
	assert.NotSame(t, a, other, "sessions own independent filter state")

	a.Filters().ToggleBrand("Sony")
	assert.Empty(t, other.Filters().Brands())
}

func TestSessionCreationFetchesOnlyThroughRunOnce(t *testing.T) {
	var fetches atomic.Int32
	svc := NewDiscoverySessionService(stubCatalog{pageFetches: &fetches})
	ctx := context.Background()

	ctrl := svc.Controller(ctx, "sess-1")
	assert.Equal(t, int32(0), fetches.Load(), "creating a session must not hit the catalog")

	_, page, err := ctrl.RunOnce(ctx)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int32(1), fetches.Load(), "first request performs exactly one fetch")
}

func TestSessionServiceDrop(t *testing.T) {
	svc := NewDiscoverySessionService(stubCatalog{})
	ctx := context.Background()

	a := svc.Controller(ctx, "sess-1")
	a.Filters().ToggleBrand("Sony")
	svc.Drop("sess-1")

	// Without Redis persistence a dropped session starts from defaults.
	fresh := svc.Controller(ctx, "sess-1")
	require.NotSame(t, a, fresh)
	assert.Empty(t, fresh.Filters().Brands())
}
