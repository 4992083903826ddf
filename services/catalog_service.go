package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/cache"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/store"
)

const (
	// FeaturedLimit caps the home-page strip.
	FeaturedLimit = 4
	// RelatedLimit caps the by-category preview on detail and category pages.
	RelatedLimit = 4
)

// CatalogService serves every storefront read through the cache. Each query
// shape is one keyed entry; a miss costs exactly one backing-store read.
//
// The compute closures capture the first caller's context: when several
// requests share one in-flight computation, the survivors ride on that
// context. A caller walking away does not cancel a population others wait on.
type CatalogService struct {
	store store.CatalogStore
	cache *cache.Cache
}

func NewCatalogService(s store.CatalogStore, c *cache.Cache) *CatalogService {
	return &CatalogService{store: s, cache: c}
}

// Categories returns every category (24h TTL — they change rarely, and any
// admin mutation clears the cache anyway).
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return cache.GetOrCompute(s.cache, cache.KeyCategories(), cache.TTLCategories,
		func() ([]models.Category, error) {
			return s.store.AllCategories(ctx)
		})
}

// FeaturedProducts returns the home-page strip (newest first, capped at 4).
func (s *CatalogService) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return cache.GetOrCompute(s.cache, cache.KeyFeatured(), cache.TTLFeatured,
		func() ([]models.Product, error) {
			return s.store.FeaturedProducts(ctx, FeaturedLimit)
		})
}

// ProductByID returns one product. Not-found is NOT cached: the store error
// propagates and the next call asks again.
func (s *CatalogService) ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return cache.GetOrCompute(s.cache, cache.KeyProduct(id.String()), cache.TTLProduct,
		func() (*models.Product, error) {
			return s.store.ProductByID(ctx, id)
		})
}

// CategoryByID returns one category.
func (s *CatalogService) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return cache.GetOrCompute(s.cache, cache.KeyCategory(id.String()), cache.TTLCategory,
		func() (*models.Category, error) {
			return s.store.CategoryByID(ctx, id)
		})
}

// ProductsByCategory returns the related/preview strip for a category.
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	return cache.GetOrCompute(s.cache, cache.KeyProductsByCategory(categoryID.String()), cache.TTLByCategory,
		func() ([]models.Product, error) {
			return s.store.ProductsByCategory(ctx, categoryID, RelatedLimit)
		})
}

// AllProducts returns the full catalog snapshot the listing composer slices.
// This is the heaviest backing-store query, so it gets the longest safe TTL;
// every distinct search/filter/page combination reuses this one entry.
func (s *CatalogService) AllProducts(ctx context.Context) ([]models.Product, error) {
	return cache.GetOrCompute(s.cache, cache.KeyCatalog(), cache.TTLCatalog,
		func() ([]models.Product, error) {
			return s.store.AllProducts(ctx)
		})
}
