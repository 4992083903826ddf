package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/store"
)

// GetProductByID godoc
// @Summary Get product detail
// @Description Retrieve one product with its display pricing (original price and discount percent) plus up to 4 related products from the same category.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx := c.Request.Context()

	product, err := catalogService.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[storefront] product fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	// Related strip is best-effort: a missing strip never hides the product.
	related := []models.Product{}
	if sameCategory, err := catalogService.ProductsByCategory(ctx, product.CategoryID); err != nil {
		log.Printf("[storefront] related products unavailable: %v", err)
	} else {
		for _, p := range sameCategory {
			if p.ID != product.ID {
				related = append(related, p)
			}
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", gin.H{
		"product": models.ToStorefrontProduct(*product),
		"related": models.ToStorefrontProducts(related),
	}))
}
