package category_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/store"
)

// GetCategoryByID godoc
// @Summary Get category detail
// @Description Retrieve one category with a short product preview (up to 4 items). Both reads come from the cache.
// @Tags Storefront - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse "Category fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid category ID"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx := c.Request.Context()

	category, err := catalogService.CategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		log.Printf("[storefront] category fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	preview := []models.Product{}
	if products, err := catalogService.ProductsByCategory(ctx, id); err != nil {
		log.Printf("[storefront] category preview unavailable: %v", err)
	} else {
		preview = products
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", gin.H{
		"category": models.ToStorefrontCategory(*category),
		"products": models.ToStorefrontProducts(preview),
	}))
}
