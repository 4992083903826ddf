package category_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/config"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/services"
	"github.com/novedades-silva/toystore-backend/store"
)

// UpdateCategory godoc
// @Summary Update a category
// @Description Update a category by ID. A renamed category gets a fresh slug; products keep the denormalized slug they were written with. Multipart bodies may replace the cover image (new upload first, old asset removed after).
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	updates := make(map[string]any)
	var newCoverURL, oldCoverURL string

	if strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		if name := strings.TrimSpace(c.PostForm("name")); name != "" {
			updates["name"] = name
			updates["slug"] = models.Slugify(name)
		}
		if icon := c.PostForm("icon"); icon != "" {
			updates["icon"] = icon
		}

		if fileHeader, err := c.FormFile("image"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read cover image"))
				return
			}
			defer file.Close()

			lookupCtx, lookupCancel := config.WithTimeout()
			existing, err := catalogStore.CategoryByID(lookupCtx, categoryID)
			lookupCancel()
			if err != nil {
				respondStoreError(c, err)
				return
			}
			oldCoverURL = existing.ImageURL

			newCoverURL, err = cloudinaryService.UploadImage(c.Request.Context(), file,
				"cover_"+uuid.NewString()[:8], services.CategoryFolder(categoryID.String()))
			if err != nil {
				log.Printf("[admin] category cover upload failed: %v", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload cover image"))
				return
			}
			updates["image_url"] = newCoverURL
		}
	} else {
		var input models.UpdateCategoryRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
			return
		}
		if input.Name != nil {
			updates["name"] = *input.Name
			updates["slug"] = models.Slugify(*input.Name)
		}
		if input.Icon != nil {
			updates["icon"] = *input.Icon
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := catalogStore.UpdateCategory(ctx, categoryID, updates)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	// Record points at the new cover; the replaced asset goes in the background
	if newCoverURL != "" && oldCoverURL != "" && oldCoverURL != newCoverURL {
		go func(old string) {
			cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cleanupCancel()
			if err := cloudinaryService.DeleteReplacedAssets(cleanupCtx, []string{old}, nil); err != nil {
				log.Printf("[admin] failed to clean up replaced cover for %s: %v", categoryID, err)
			}
		}(oldCoverURL)
	}

	broadcaster.InvalidateAll()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", category))
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}
	log.Printf("[admin] store error: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
}
