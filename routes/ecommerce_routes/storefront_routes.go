package ecommerce_routes

import (
	store_filter "github.com/DanielWren48/techno-trades-sub001/controllers/ecommerce/filter_controller"
	store_product "github.com/DanielWren48/techno-trades-sub001/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product discovery
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with filters
	}

	// Filter widgets
	store.GET("/filters/metadata", store_filter.GetFilterMetadata)

	// Per-session facet state
	session := store.Group("/session")
	{
		session.GET("/filters", store_filter.GetSessionFilters)
		session.POST("/filters/clear", store_filter.ClearSessionFilters)
		session.POST("/filters/price/reset", store_filter.ResetSessionPriceRange)
	}
}
