package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DanielWren48/techno-trades-sub001/models"
)

// Standalone mock of the remote catalog API, for running the storefront
// without the real catalog.
// Usage: go run cmd/mockcatalog/main.go

var brands = []string{"Sony", "LG", "Samsung", "Bose", "Apple", "JBL"}

var categories = []string{"cat-tv", "cat-audio", "cat-phones", "cat-gaming"}

func seedProducts() []models.Product {
	var products []models.Product
	for i := 0; i < 72; i++ {
		brand := brands[i%len(brands)]
		category := categories[i%len(categories)]
		name := fmt.Sprintf("%s %s Model %d", brand, strings.TrimPrefix(category, "cat-"), i+1)
		p := models.Product{
			ID:         uuid.Must(uuid.NewV7()),
			Name:       name,
			Slug:       strings.ToLower(strings.ReplaceAll(name, " ", "-")),
			Brand:      brand,
			CategoryID: category,
			Price:      49.99 + float64(i)*37.5,
			Stock:      (i * 3) % 11, // every 11th product is out of stock
		}
		if i%5 == 0 {
			discounted := p.Price * 0.8
			p.IsDiscounted = true
			p.DiscountedPrice = &discounted
		}
		products = append(products, p)
	}
	return products
}

func matches(p models.Product, c *gin.Context) bool {
	if q := strings.ToLower(c.Query("q")); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) {
			return false
		}
	}
	if wanted := c.QueryArray("brand"); len(wanted) > 0 && !contains(wanted, p.Brand) {
		return false
	}
	if wanted := c.QueryArray("category"); len(wanted) > 0 && !contains(wanted, p.CategoryID) {
		return false
	}
	if c.Query("availability") == "in_stock" && !p.InStock() {
		return false
	}
	if minStr := c.Query("minPrice"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil && p.EffectivePrice() < min {
			return false
		}
	}
	if maxStr := c.Query("maxPrice"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil && p.EffectivePrice() > max {
			return false
		}
	}
	return true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func main() {
	products := seedProducts()

	router := gin.Default()

	router.GET("/products", func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 12
		}

		var filtered []models.Product
		for _, p := range products {
			if matches(p, c) {
				filtered = append(filtered, p)
			}
		}

		totalPages := (len(filtered) + limit - 1) / limit
		start := (page - 1) * limit
		if start > len(filtered) {
			start = len(filtered)
		}
		end := start + limit
		if end > len(filtered) {
			end = len(filtered)
		}

		c.JSON(http.StatusOK, gin.H{
			"data": filtered[start:end],
			"meta": models.Pagination{Page: page, Limit: limit, TotalPages: totalPages},
		})
	})

	router.GET("/products/all", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": products})
	})

	fmt.Println("🛒 Mock catalog is running on http://localhost:9090")
	router.Run(":9090")
}
