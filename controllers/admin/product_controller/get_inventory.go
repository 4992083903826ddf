package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/services"
)

// GetInventory godoc
// @Summary Get the product inventory
// @Description Retrieve the paginated inventory table with optional search and column sorting (name, price, stock).
// @Tags Admin - Products
// @Produce json
// @Param q query string false "Search query (name or description)"
// @Param sortBy query string false "Sort column" Enums(name, price, stock)
// @Param sortOrder query string false "Sort order" Enums(asc, desc) default(asc)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.ApiResponse "Inventory fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products [get]
func GetInventory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	result, err := listingService.List(c.Request.Context(), services.ListParams{
		FilterText: c.Query("q"),
		Page:       page,
		PerPage:    services.AdminPageSize,
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.DefaultQuery("sortOrder", "asc"),
	})
	if err != nil {
		log.Printf("[admin] inventory listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch inventory"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Inventory fetched successfully",
		result.Items,
		&models.Pagination{
			Page:       result.Page,
			Limit:      services.AdminPageSize,
			Total:      result.TotalCount,
			TotalPages: result.TotalPages,
		},
	))
}
