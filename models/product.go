package models

import "github.com/google/uuid"

// Product is the catalog item shape the storefront consumes. The catalog API
// owns the canonical record; this is the subset every discovery surface needs.
type Product struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Brand           string    `json:"brand"`
	CategoryID      string    `json:"category_id"`
	Price           float64   `json:"price"`
	IsDiscounted    bool      `json:"is_discounted"`
	DiscountedPrice *float64  `json:"discounted_price,omitempty"`
	Stock           int       `json:"stock"`
}

// EffectivePrice is the price a shopper actually pays: the discounted price
// when the product is on discount, else the list price.
func (p Product) EffectivePrice() float64 {
	if p.IsDiscounted && p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// CatalogPage is one page of catalog results plus the total page count the
// pagination widgets need.
type CatalogPage struct {
	Items      []Product `json:"items"`
	TotalPages int       `json:"total_pages"`
}
