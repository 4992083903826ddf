package routes

import (
	"github.com/gin-gonic/gin"
	store_category "github.com/novedades-silva/toystore-backend/controllers/storefront/category_controller"
	store_home "github.com/novedades-silva/toystore-backend/controllers/storefront/home_controller"
	store_product "github.com/novedades-silva/toystore-backend/controllers/storefront/product_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	store.GET("/home", store_home.GetHome)

	// Product routes
	products := store.Group("/products")
	{
		products.GET("/:id", store_product.GetProductByID) // Single product + related strip
	}

	store.GET("/catalog", store_product.GetCatalog) // Full catalog with search/filter/shuffle

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetCategories)                    // List all
		categories.GET("/:id", store_category.GetCategoryByID)              // Single category + preview
		categories.GET("/:id/products", store_category.GetCategoryProducts) // Cursor "load more"
	}
}
