package category_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/services"
)

// GetCategoryProducts godoc
// @Summary Get category products (load more)
// @Description Retrieve the next batch of a category's products ordered by price descending, resumed from an opaque cursor. A 410 means the cursor no longer resolves (its product was deleted) and the client must restart from the first page.
// @Tags Storefront - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Param cursor query string false "Opaque cursor from the previous batch"
// @Param limit query int false "Batch size" default(12)
// @Success 200 {object} models.ApiResponse "Category products fetched successfully (empty batch when the store is unavailable)"
// @Failure 400 {object} models.ApiResponse "Invalid category ID"
// @Failure 410 {object} models.ApiResponse "Cursor is stale"
// @Router /store/categories/{id}/products [get]
func GetCategoryProducts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if limit < 1 || limit > 100 {
		limit = services.LoadMorePageSize
	}

	items, nextCursor, err := catalogService.ResolvePage(c.Request.Context(), id, c.Query("cursor"), limit)
	if err != nil {
		if errors.Is(err, services.ErrCursorStale) {
			c.JSON(http.StatusGone, models.ErrorResponse(c, "Cursor is stale - restart from the first page"))
			return
		}
		// Store outage ends the list quietly instead of breaking the page;
		// the next "load more" retries
		log.Printf("[storefront] category page unavailable: %v", err)
		items, nextCursor = nil, ""
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category products fetched successfully", gin.H{
		"products":   models.ToStorefrontProducts(items),
		"nextCursor": nextCursor,
		"hasMore":    nextCursor != "",
	}))
}
