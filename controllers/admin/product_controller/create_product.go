package product_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/config"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/services"
	"github.com/novedades-silva/toystore-backend/store"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product from a multipart form. At least one image and a valid category are required; validation happens before any asset upload or database write. On success every cache entry is invalidated.
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string false "Description"
// @Param price formData number true "Price"
// @Param originalPrice formData number false "Original price (pre-discount); omitted means no discount is stored"
// @Param stock formData int false "Stock count" default(0)
// @Param categoryId formData string true "Category ID"
// @Param specifications formData string false "Specifications as a JSON object"
// @Param specKey formData string false "Pending specification key not yet added to the list"
// @Param specValue formData string false "Pending specification value not yet added to the list"
// @Param images formData file true "Product images (first file becomes the primary image)"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form: "+err.Error()))
		return
	}

	// Step 1: Validate everything before touching Cloudinary or the database.
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product name is required"))
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Valid price is required"))
		return
	}

	categoryID, err := uuid.Parse(c.PostForm("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Valid categoryId is required"))
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one product image is required"))
		return
	}

	stock := 0
	if raw := c.PostForm("stock"); raw != "" {
		if stock, err = strconv.Atoi(raw); err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid stock count"))
			return
		}
	}

	var originalPrice *float64
	if raw := c.PostForm("originalPrice"); raw != "" {
		op, err := strconv.ParseFloat(raw, 64)
		if err != nil || op < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid original price"))
			return
		}
		originalPrice = &op
	}

	specs := models.SpecsMap{}
	if raw := c.PostForm("specifications"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &specs); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid specifications JSON"))
			return
		}
	}
	// A spec pair still sitting in the form inputs counts too - admins forget
	// to press "add" on the last one.
	if key := strings.TrimSpace(c.PostForm("specKey")); key != "" {
		if value := strings.TrimSpace(c.PostForm("specValue")); value != "" {
			specs[key] = value
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Resolve the category (also denormalizes its slug onto the product)
	category, err := catalogStore.CategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid categoryId"))
		} else {
			log.Printf("[admin] category lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Upload gallery. The product ID is generated up front so the
	// assets land in their final per-product folder.
	productID, err := uuid.NewV7()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate product ID"))
		return
	}

	urls, err := cloudinaryService.UploadGallery(c.Request.Context(), files, services.ProductFolder(productID.String()))
	if err != nil {
		log.Printf("[admin] image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload product images"))
		return
	}

	// Step 4: Write the record
	product := models.Product{
		ID:             productID,
		Name:           name,
		Description:    c.PostForm("description"),
		Price:          price,
		OriginalPrice:  originalPrice,
		ImageURL:       urls[0],
		Images:         models.ImageList(urls),
		CategoryID:     category.ID,
		CategorySlug:   category.Slug,
		Stock:          stock,
		Specifications: specs,
	}

	if err := catalogStore.CreateProduct(ctx, &product); err != nil {
		log.Printf("[admin] product insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	log.Printf("[admin] product created: %s (%s)", product.Name, product.ID)

	// Step 5: The write succeeded - drop every cached read
	broadcaster.InvalidateAll()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
