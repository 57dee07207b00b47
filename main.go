// @title Techno Trades Storefront API
// @version 1.0
// @description Product discovery API for the Techno Trades storefront
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DanielWren48/techno-trades-sub001/config"
	"github.com/DanielWren48/techno-trades-sub001/controllers/ecommerce/filter_controller"
	"github.com/DanielWren48/techno-trades-sub001/controllers/ecommerce/product_controller"
	_ "github.com/DanielWren48/techno-trades-sub001/docs"
	"github.com/DanielWren48/techno-trades-sub001/middleware"
	"github.com/DanielWren48/techno-trades-sub001/routes/ecommerce_routes"
	"github.com/DanielWren48/techno-trades-sub001/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (rate limiter + session persistence)
	config.ConnectRedis()

	// Catalog collaborator and per-session discovery engines
	catalog := services.NewCatalogService(config.CatalogAPIURL())
	sessions := services.NewDiscoverySessionService(catalog)
	product_controller.InitSessions(sessions)
	filter_controller.InitSessions(sessions)
	filter_controller.InitCatalog(catalog)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-ID", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"X-Session-ID"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(300, time.Minute))

	ecommerce_routes.SetupStorefrontRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + config.Port()
	fmt.Println("🚀 Storefront is running on http://localhost" + addr)
	router.Run(addr)
}
