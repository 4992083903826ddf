package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/services"
)

// GetCatalog godoc
// @Summary Get catalog page
// @Description Retrieve one page of the full catalog with optional search, category filter and per-request shuffle. Everything is sliced from one cached snapshot; no extra database reads per page turn.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (name or description)"
// @Param category query string false "Category ID"
// @Param page query int false "Page number" default(1)
// @Param shuffle query bool false "Randomize order per request" default(false)
// @Success 200 {object} models.ApiResponse "Catalog fetched successfully (empty list when the store is unavailable)"
// @Failure 400 {object} models.ApiResponse "Invalid category ID"
// @Router /store/catalog [get]
func GetCatalog(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	shuffle := c.DefaultQuery("shuffle", "false") == "true"

	params := services.ListParams{
		FilterText: c.Query("q"),
		Page:       page,
		PerPage:    services.StorefrontPageSize,
		Shuffle:    shuffle,
	}

	if raw := c.Query("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
			return
		}
		params.CategoryID = &categoryID
	}

	result, err := listingService.List(c.Request.Context(), params)
	if err != nil {
		// Shoppers get an empty grid, never a hard error, when the backing
		// store is down
		log.Printf("[storefront] catalog listing unavailable: %v", err)
		c.JSON(http.StatusOK, models.PaginatedResponse(
			c,
			"Catalog fetched successfully",
			[]models.StorefrontProduct{},
			&models.Pagination{Page: page, Limit: services.StorefrontPageSize},
		))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Catalog fetched successfully",
		models.ToStorefrontProducts(result.Items),
		&models.Pagination{
			Page:       result.Page,
			Limit:      services.StorefrontPageSize,
			Total:      result.TotalCount,
			TotalPages: result.TotalPages,
		},
	))
}
