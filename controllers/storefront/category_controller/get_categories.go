package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novedades-silva/toystore-backend/models"
)

// GetCategories godoc
// @Summary Get all categories
// @Description Retrieve every category for navigation and the category grid. Served from cache with a long TTL; categories change rarely.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse "Categories fetched successfully (empty list when the store is unavailable)"
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	categories, err := catalogService.Categories(c.Request.Context())
	if err != nil {
		// Empty nav beats a hard error while the backing store is down
		log.Printf("[storefront] categories unavailable: %v", err)
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully",
		models.ToStorefrontCategories(categories)))
}
