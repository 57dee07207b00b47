package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	snapshot_cache "github.com/DanielWren48/techno-trades-sub001/cache"
	"github.com/DanielWren48/techno-trades-sub001/models"
)

// CatalogService is the typed HTTP client over the remote catalog API. It is
// the only way the storefront reaches the catalog, and it implements
// discovery.Catalog.
type CatalogService struct {
	baseURL string
	client  *http.Client
}

func NewCatalogService(baseURL string) *CatalogService {
	return &CatalogService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// catalogEnvelope is the catalog API's response wrapper.
type catalogEnvelope struct {
	Data []models.Product   `json:"data"`
	Meta *models.Pagination `json:"meta"`
}

// FetchPage submits a composed query as GET /products. Only active filter
// dimensions appear in the query string; a no-filter query goes out as bare
// pagination so the catalog can take its fast path.
func (s *CatalogService) FetchPage(ctx context.Context, query models.ComposedQuery) (models.CatalogPage, error) {
	values := url.Values{}
	values.Set("page", strconv.Itoa(query.Page))
	values.Set("limit", strconv.Itoa(query.Limit))
	if query.Filters.Name != "" {
		values.Set("q", query.Filters.Name)
	}
	if query.Filters.Prices != nil {
		values.Set("minPrice", strconv.FormatFloat(query.Filters.Prices.Min, 'f', -1, 64))
		values.Set("maxPrice", strconv.FormatFloat(query.Filters.Prices.Max, 'f', -1, 64))
	}
	for _, brand := range query.Filters.Brands {
		values.Add("brand", brand)
	}
	for _, category := range query.Filters.Categories {
		values.Add("category", category)
	}
	if query.Filters.HideOutOfStock {
		values.Set("availability", "in_stock")
	}

	var envelope catalogEnvelope
	if err := s.getJSON(ctx, "/products?"+values.Encode(), &envelope); err != nil {
		return models.CatalogPage{}, err
	}

	page := models.CatalogPage{Items: envelope.Data}
	if envelope.Meta != nil {
		page.TotalPages = envelope.Meta.TotalPages
	}
	return page, nil
}

// FetchSnapshot returns the full unfiltered catalog, served from the
// in-process cache when fresh. The snapshot only feeds the price-bounds
// bootstrap and filter metadata, so a few minutes of staleness is fine.
func (s *CatalogService) FetchSnapshot(ctx context.Context) ([]models.Product, error) {
	if items, ok := snapshot_cache.Get(); ok {
		return items, nil
	}

	var envelope catalogEnvelope
	if err := s.getJSON(ctx, "/products/all", &envelope); err != nil {
		return nil, err
	}

	snapshot_cache.Set(envelope.Data)
	return envelope.Data, nil
}

func (s *CatalogService) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog: unexpected status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("catalog: decode response: %w", err)
	}
	return nil
}
