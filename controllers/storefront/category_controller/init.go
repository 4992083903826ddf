package category_controller

import (
	"github.com/novedades-silva/toystore-backend/services"
)

var catalogService *services.CatalogService

// InitCategoryController wires the cached catalog service into this package.
func InitCategoryController(catalog *services.CatalogService) {
	catalogService = catalog
}
