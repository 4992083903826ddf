package product_controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/config"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/services"
	"github.com/novedades-silva/toystore-backend/store"
)

// UpdateProduct godoc
// @Summary Update an existing product
// @Description Update a product by ID. JSON bodies update text fields only; multipart bodies may replace the image gallery. New images are uploaded before the record changes, and old assets are removed only after the record points at the new ones - a failure partway leaves the product on its old, working gallery.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	// Multipart means image changes; JSON is text-only
	if strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		updateProductWithImages(c, productID)
	} else {
		updateProductTextOnly(c, productID)
	}
}

// updateProductTextOnly handles JSON updates without image changes
func updateProductTextOnly(c *gin.Context, productID uuid.UUID) {
	var input models.UpdateProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	updates, err := buildProductUpdates(ctx, &input)
	if err != nil {
		respondStoreError(c, err, "Invalid category_id")
		return
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	product, err := catalogStore.UpdateProduct(ctx, productID, updates)
	if err != nil {
		respondStoreError(c, err, "Product not found")
		return
	}

	broadcaster.InvalidateAll()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}

// updateProductWithImages handles multipart updates that replace the gallery.
// Order matters: upload new assets, repoint the record, then clean up the old
// assets in the background.
func updateProductWithImages(c *gin.Context, productID uuid.UUID) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	existing, err := catalogStore.ProductByID(ctx, productID)
	if err != nil {
		respondStoreError(c, err, "Product not found")
		return
	}

	input := parseProductForm(c)
	updates, err := buildProductUpdates(ctx, &input)
	if err != nil {
		respondStoreError(c, err, "Invalid categoryId")
		return
	}

	files := form.File["images"]
	if len(files) > 0 {
		urls, err := cloudinaryService.UploadGallery(c.Request.Context(), files, services.ProductFolder(productID.String()))
		if err != nil {
			log.Printf("[admin] replacement image upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload product images"))
			return
		}
		updates["image_url"] = urls[0]
		updates["images"] = models.ImageList(urls)
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	product, err := catalogStore.UpdateProduct(ctx, productID, updates)
	if err != nil {
		respondStoreError(c, err, "Product not found")
		return
	}

	// Record now points at the new gallery; retire the replaced assets off the
	// request path. A failed cleanup only leaks storage.
	if len(files) > 0 && len(existing.Images) > 0 {
		go func(old models.ImageList) {
			cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cleanupCancel()
			if err := cloudinaryService.DeleteReplacedAssets(cleanupCtx, old, product.Images); err != nil {
				log.Printf("[admin] failed to clean up replaced assets for %s: %v", productID, err)
			}
		}(existing.Images)
	}

	broadcaster.InvalidateAll()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}

// parseProductForm maps multipart text fields onto the JSON update shape.
func parseProductForm(c *gin.Context) models.UpdateProductRequest {
	var input models.UpdateProductRequest

	if v := c.PostForm("name"); v != "" {
		input.Name = &v
	}
	if v := c.PostForm("description"); v != "" {
		input.Description = &v
	}
	if v := c.PostForm("price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			input.Price = &price
		}
	}
	if v := c.PostForm("originalPrice"); v != "" {
		if op, err := strconv.ParseFloat(v, 64); err == nil {
			input.OriginalPrice = &op
		}
	}
	if v := c.PostForm("stock"); v != "" {
		if stock, err := strconv.Atoi(v); err == nil {
			input.Stock = &stock
		}
	}
	if v := c.PostForm("categoryId"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			input.CategoryID = &id
		}
	}
	if v := c.PostForm("specifications"); v != "" {
		specs := models.SpecsMap{}
		if err := json.Unmarshal([]byte(v), &specs); err == nil {
			input.Specifications = &specs
		}
	}

	return input
}

// buildProductUpdates turns non-nil request fields into a column update map.
// A category change re-resolves the category and refreshes the denormalized
// slug alongside it.
func buildProductUpdates(ctx context.Context, input *models.UpdateProductRequest) (map[string]any, error) {
	updates := make(map[string]any)

	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.OriginalPrice != nil {
		updates["original_price"] = *input.OriginalPrice
	}
	if input.Stock != nil {
		updates["stock"] = *input.Stock
	}
	if input.Specifications != nil {
		updates["specifications"] = *input.Specifications
	}
	if input.CategoryID != nil {
		category, err := catalogStore.CategoryByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = category.ID
		updates["category_slug"] = category.Slug
	}

	return updates, nil
}

func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, notFoundMsg))
		return
	}
	log.Printf("[admin] store error: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
}
