package category_controller

import (
	"github.com/novedades-silva/toystore-backend/cache"
	"github.com/novedades-silva/toystore-backend/services"
	"github.com/novedades-silva/toystore-backend/store"
)

var (
	catalogStore      store.CatalogStore
	broadcaster       *cache.Broadcaster
	cloudinaryService *services.CloudinaryService
)

// InitCategoryController wires the catalog store, the invalidation broadcaster
// and the asset service into this package.
func InitCategoryController(s store.CatalogStore, b *cache.Broadcaster, cld *services.CloudinaryService) {
	catalogStore = s
	broadcaster = b
	cloudinaryService = cld
}
