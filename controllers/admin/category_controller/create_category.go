package category_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/config"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/services"
)

// CreateCategory godoc
// @Summary Create a new category
// @Description Create a category from a multipart form with an optional cover image. The slug is derived from the name. Every cache entry is invalidated on success.
// @Tags Admin - Categories
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Category name"
// @Param icon formData string false "Icon identifier"
// @Param image formData file false "Cover image"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Category name is required"))
		return
	}

	categoryID, err := uuid.NewV7()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate category ID"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A cover image is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read cover image"))
		return
	}
	defer file.Close()

	imageURL, err := cloudinaryService.UploadImage(c.Request.Context(), file, "cover", services.CategoryFolder(categoryID.String()))
	if err != nil {
		log.Printf("[admin] category cover upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload cover image"))
		return
	}

	category := models.Category{
		ID:       categoryID,
		Name:     name,
		Slug:     models.Slugify(name),
		ImageURL: imageURL,
		Icon:     c.PostForm("icon"),
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := catalogStore.CreateCategory(ctx, &category); err != nil {
		log.Printf("[admin] category insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}
	log.Printf("[admin] category created: %s (%s)", category.Name, category.ID)

	broadcaster.InvalidateAll()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
