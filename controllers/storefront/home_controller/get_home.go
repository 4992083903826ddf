package home_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/services"
)

var catalogService *services.CatalogService

// InitHomeController wires the cached catalog service into this package.
func InitHomeController(catalog *services.CatalogService) {
	catalogService = catalog
}

// GetHome godoc
// @Summary Get home page data
// @Description Retrieve the category strip and the featured-products strip in one call. Both come from the cache; a miss costs one backing-store read each.
// @Tags Storefront - Home
// @Produce json
// @Success 200 {object} models.ApiResponse "Home page data fetched successfully"
// @Router /store/home [get]
func GetHome(c *gin.Context) {
	ctx := c.Request.Context()

	categories, catErr := catalogService.Categories(ctx)
	featured, featErr := catalogService.FeaturedProducts(ctx)

	// The home page renders an empty state rather than a 500: a storefront
	// with no strips is still a storefront.
	if catErr != nil {
		log.Printf("[storefront] home categories unavailable: %v", catErr)
		categories = []models.Category{}
	}
	if featErr != nil {
		log.Printf("[storefront] home featured unavailable: %v", featErr)
		featured = []models.Product{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Home page data fetched successfully", gin.H{
		"categories": models.ToStorefrontCategories(categories),
		"featured":   models.ToStorefrontProducts(featured),
	}))
}
