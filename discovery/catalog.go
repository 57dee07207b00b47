package discovery

import (
	"context"

	"github.com/DanielWren48/techno-trades-sub001/models"
)

// Catalog is the remote catalog collaborator the controller fetches against.
// FetchSnapshot serves only the price-bounds bootstrap and is expected to be
// cheap for repeated calls (the HTTP implementation caches it).
type Catalog interface {
	FetchPage(ctx context.Context, query models.ComposedQuery) (models.CatalogPage, error)
	FetchSnapshot(ctx context.Context) ([]models.Product, error)
}
