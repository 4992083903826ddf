// @title Novedades Silva Toystore API
// @version 1.0
// @description Catalog backend for the Novedades Silva toy store
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/novedades-silva/toystore-backend/cache"
	"github.com/novedades-silva/toystore-backend/config"
	admin_category "github.com/novedades-silva/toystore-backend/controllers/admin/category_controller"
	admin_product "github.com/novedades-silva/toystore-backend/controllers/admin/product_controller"
	store_category "github.com/novedades-silva/toystore-backend/controllers/storefront/category_controller"
	store_home "github.com/novedades-silva/toystore-backend/controllers/storefront/home_controller"
	store_product "github.com/novedades-silva/toystore-backend/controllers/storefront/product_controller"
	"github.com/novedades-silva/toystore-backend/middleware"
	"github.com/novedades-silva/toystore-backend/routes"
	"github.com/novedades-silva/toystore-backend/services"
	"github.com/novedades-silva/toystore-backend/store"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// Initialize Cloudinary service
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	cloudinaryService, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Build the read path: store → cache → services
	catalogStore := store.NewGorm(config.CatalogGorm)
	catalogCache := cache.New()
	broadcaster := cache.NewBroadcaster(catalogCache)

	catalogService := services.NewCatalogService(catalogStore, catalogCache)
	listingService := services.NewListingService(catalogService)

	// Wire controllers
	store_home.InitHomeController(catalogService)
	store_product.InitProductController(catalogService, listingService)
	store_category.InitCategoryController(catalogService)
	admin_product.InitProductController(catalogStore, broadcaster, cloudinaryService, listingService)
	admin_category.InitCategoryController(catalogStore, broadcaster, cloudinaryService)
	log.Println("✅ Catalog cache and services wired")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Health check (storefront probes this before rendering)
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := config.CatalogDB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cached_entries": catalogCache.Len()})
	})

	// Register API routes
	api := router.Group("/api/v1")

	// ✅ Admin routes (at /api/v1/admin prefix)
	routes.SetupAdminAuthRoutes(api)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	routes.SetupAdminProductRoutes(adminGroup)
	routes.SetupAdminCategoryRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Public storefront (no rate limiter)
	routes.SetupStorefrontRoutes(api)

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
