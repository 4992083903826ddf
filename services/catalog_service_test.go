package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/cache"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) (*CatalogService, *fakeStore, *cache.Cache) {
	t.Helper()
	fs := newFakeStore()
	c := cache.New()
	return NewCatalogService(fs, c), fs, c
}

func seedCatalog(fs *fakeStore) (models.Category, []models.Product) {
	cat := fs.addCategory(models.Category{Name: "Peluches"})
	base := time.Now()
	var products []models.Product
	for i, name := range []string{"Oso Gigante", "Conejo Suave", "Dino Verde"} {
		products = append(products, fs.addProduct(models.Product{
			Name:         name,
			Price:        float64(10 + i*5),
			CategoryID:   cat.ID,
			CategorySlug: cat.Slug,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}))
	}
	return cat, products
}

func TestCatalogService_RepeatedReadsHitStoreOnce(t *testing.T) {
	svc, fs, _ := newTestCatalog(t)
	seedCatalog(fs)
	ctx := context.Background()

	first, err := svc.AllProducts(ctx)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := svc.AllProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, again, "cached reads must be deterministic within TTL")
	}

	assert.Equal(t, 1, fs.reads())
}

func TestCatalogService_EachQueryShapeIsItsOwnEntry(t *testing.T) {
	svc, fs, c := newTestCatalog(t)
	cat, products := seedCatalog(fs)
	ctx := context.Background()

	_, err := svc.Categories(ctx)
	require.NoError(t, err)
	_, err = svc.FeaturedProducts(ctx)
	require.NoError(t, err)
	_, err = svc.AllProducts(ctx)
	require.NoError(t, err)
	_, err = svc.ProductByID(ctx, products[0].ID)
	require.NoError(t, err)
	_, err = svc.CategoryByID(ctx, cat.ID)
	require.NoError(t, err)
	_, err = svc.ProductsByCategory(ctx, cat.ID)
	require.NoError(t, err)

	assert.Equal(t, 6, fs.reads(), "each shape misses exactly once")
	assert.Equal(t, 6, c.Len())
}

func TestCatalogService_StoreErrorPropagatesAndIsNotCached(t *testing.T) {
	svc, fs, c := newTestCatalog(t)
	seedCatalog(fs)
	ctx := context.Background()

	fs.failReads = store.ErrUnavailable
	_, err := svc.Categories(ctx)
	require.ErrorIs(t, err, store.ErrUnavailable)
	assert.Equal(t, 0, c.Len())

	// The store comes back; the next read succeeds instead of serving the error
	fs.failReads = nil
	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestCatalogService_MissingProductIsNotCached(t *testing.T) {
	svc, fs, _ := newTestCatalog(t)
	ctx := context.Background()

	ghost := uuid.Must(uuid.NewV7())
	_, err := svc.ProductByID(ctx, ghost)
	require.ErrorIs(t, err, store.ErrNotFound)

	// The product appears (admin created it); the next read finds it
	created := fs.addProduct(models.Product{ID: ghost, Name: "Nuevo", Price: 9.99})
	got, err := svc.ProductByID(ctx, ghost)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
}

func TestCatalogService_InvalidationForcesFreshRead(t *testing.T) {
	svc, fs, c := newTestCatalog(t)
	cat, _ := seedCatalog(fs)
	ctx := context.Background()
	broadcaster := cache.NewBroadcaster(c)

	before, err := svc.AllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, before, 3)
	readsBefore := fs.reads()

	// Admin adds a product and the broadcaster clears the cache
	fs.addProduct(models.Product{Name: "Ajedrez Infantil", Price: 25, CategoryID: cat.ID, CreatedAt: time.Now().Add(time.Hour)})
	broadcaster.InvalidateAll()

	after, err := svc.AllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 4, "post-invalidation read must observe the write")
	assert.Equal(t, readsBefore+1, fs.reads())
	assert.Equal(t, "Ajedrez Infantil", after[0].Name, "catalog is newest-first")
}
