package product_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/config"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/services"
	"github.com/novedades-silva/toystore-backend/store"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product by ID. The database row goes synchronously; the Cloudinary asset folder is removed in the background so a slow asset API never blocks the admin. Every cache entry is invalidated on success.
// @Tags Admin - Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := catalogStore.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[admin] product delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	// Asset cleanup off the request path; a failure leaves orphans, not errors
	go func(prodID uuid.UUID) {
		deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer deleteCancel()

		folder := services.ProductFolder(prodID.String())
		if err := cloudinaryService.DeleteFolder(deleteCtx, folder); err != nil {
			log.Printf("[admin] ⚠️  failed to delete asset folder %s: %v", folder, err)
		} else {
			log.Printf("[admin] ✓ deleted asset folder: %s", folder)
		}
	}(productID)

	broadcaster.InvalidateAll()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", map[string]string{
		"id": productID.String(),
	}))
}
