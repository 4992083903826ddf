package category_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/config"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/services"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category by ID. Products in the category are NOT deleted; they keep rendering with their denormalized slug as the label. The cover asset folder is removed in the background.
// @Tags Admin - Categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := catalogStore.DeleteCategory(ctx, categoryID); err != nil {
		respondStoreError(c, err)
		return
	}

	go func(catID uuid.UUID) {
		deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer deleteCancel()

		folder := services.CategoryFolder(catID.String())
		if err := cloudinaryService.DeleteFolder(deleteCtx, folder); err != nil {
			log.Printf("[admin] ⚠️  failed to delete asset folder %s: %v", folder, err)
		} else {
			log.Printf("[admin] ✓ deleted asset folder: %s", folder)
		}
	}(categoryID)

	broadcaster.InvalidateAll()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", map[string]string{
		"id": categoryID.String(),
	}))
}
