package product_controller

import (
	"github.com/novedades-silva/toystore-backend/services"
)

var (
	catalogService *services.CatalogService
	listingService *services.ListingService
)

// InitProductController wires the cached catalog and listing services into
// this package.
func InitProductController(catalog *services.CatalogService, listing *services.ListingService) {
	catalogService = catalog
	listingService = listing
}
