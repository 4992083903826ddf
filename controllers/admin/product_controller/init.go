package product_controller

import (
	"github.com/novedades-silva/toystore-backend/cache"
	"github.com/novedades-silva/toystore-backend/services"
	"github.com/novedades-silva/toystore-backend/store"
)

var (
	catalogStore      store.CatalogStore
	broadcaster       *cache.Broadcaster
	cloudinaryService *services.CloudinaryService
	listingService    *services.ListingService
)

// InitProductController wires the catalog store, the invalidation broadcaster
// and the asset/listing services into this package. Admin reads and writes go
// straight to the store; only the storefront reads through the cache.
func InitProductController(s store.CatalogStore, b *cache.Broadcaster, cld *services.CloudinaryService, listing *services.ListingService) {
	catalogStore = s
	broadcaster = b
	cloudinaryService = cld
	listingService = listing
}
