package category_controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/cache"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/services"
	"github.com/novedades-silva/toystore-backend/store"
	"github.com/stretchr/testify/assert"
)

// downStore fails the reads behind the category list and "load more" pages.
// ProductByID reports not-found so cursor resolution sees a deleted product.
type downStore struct {
	store.CatalogStore
}

func (downStore) AllCategories(context.Context) ([]models.Category, error) {
	return nil, store.ErrUnavailable
}

func (downStore) ProductByID(context.Context, uuid.UUID) (*models.Product, error) {
	return nil, store.ErrNotFound
}

func (downStore) ProductPage(context.Context, uuid.UUID, *models.Product, int) ([]models.Product, error) {
	return nil, store.ErrUnavailable
}

func newCategoryRouter(t *testing.T, s store.CatalogStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	InitCategoryController(services.NewCatalogService(s, cache.New()))

	r := gin.New()
	r.GET("/categories", GetCategories)
	r.GET("/categories/:id/products", GetCategoryProducts)
	return r
}

func TestGetCategories_StoreOutageRendersEmptyNav(t *testing.T) {
	r := newCategoryRouter(t, downStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code, "the nav degrades to empty, it never hard-fails")
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetCategoryProducts_StoreOutageEndsListQuietly(t *testing.T) {
	r := newCategoryRouter(t, downStore{})
	url := "/categories/" + uuid.Must(uuid.NewV7()).String() + "/products"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"products":[]`)
	assert.Contains(t, w.Body.String(), `"hasMore":false`)
}

func TestGetCategoryProducts_DeletedCursorProductIsGone(t *testing.T) {
	r := newCategoryRouter(t, downStore{})
	url := "/categories/" + uuid.Must(uuid.NewV7()).String() + "/products?cursor=" +
		uuid.Must(uuid.NewV7()).String()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusGone, w.Code, "a stale cursor restarts the client, it is not an outage")
}
