package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/cache"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPagination(t *testing.T) (*CatalogService, *fakeStore, models.Category) {
	t.Helper()
	fs := newFakeStore()
	cat := fs.addCategory(models.Category{Name: "Electrónicos"})
	return NewCatalogService(fs, cache.New()), fs, cat
}

func TestResolvePage_WalksCategoryWithoutDuplicatesOrGaps(t *testing.T) {
	svc, fs, cat := newTestPagination(t)
	for i := 0; i < 30; i++ {
		fs.addProduct(models.Product{
			Name:       "Gadget",
			Price:      float64(100 - i), // distinct prices
			CategoryID: cat.ID,
		})
	}
	ctx := context.Background()

	seen := make(map[uuid.UUID]bool)
	cursor := ""
	pages := 0
	var lastPrice float64

	for {
		items, next, err := svc.ResolvePage(ctx, cat.ID, cursor, LoadMorePageSize)
		require.NoError(t, err)
		if len(items) == 0 {
			break
		}
		pages++
		for _, p := range items {
			assert.False(t, seen[p.ID], "no product may appear on two pages")
			seen[p.ID] = true
			if len(seen) > 1 {
				assert.LessOrEqual(t, p.Price, lastPrice, "pages walk price descending")
			}
			lastPrice = p.Price
		}
		if next == "" {
			break
		}
		cursor = next
	}

	assert.Len(t, seen, 30, "walking to exhaustion covers the whole category")
	assert.Equal(t, 3, pages)
}

func TestResolvePage_DuplicatePricesBreakTiesById(t *testing.T) {
	svc, fs, cat := newTestPagination(t)
	// Every product shares one price; ordering falls back to id ascending
	for i := 0; i < 25; i++ {
		fs.addProduct(models.Product{Name: "Peluche", Price: 19.99, CategoryID: cat.ID})
	}
	ctx := context.Background()

	seen := make(map[uuid.UUID]bool)
	lastID := ""
	cursor := ""
	for {
		items, next, err := svc.ResolvePage(ctx, cat.ID, cursor, 10)
		require.NoError(t, err)
		for _, p := range items {
			assert.False(t, seen[p.ID], "equal prices must not cause duplicates across pages")
			seen[p.ID] = true
			assert.Greater(t, p.ID.String(), lastID, "ties resolve by id ascending")
			lastID = p.ID.String()
		}
		if next == "" {
			break
		}
		cursor = next
	}
	assert.Len(t, seen, 25)
}

func TestResolvePage_FullFinalPageSignalsMoreThenEmpty(t *testing.T) {
	svc, fs, cat := newTestPagination(t)
	// Exactly two pages worth: the second page comes back full, so the caller
	// gets a cursor and must confirm the end with one more (empty) fetch.
	for i := 0; i < 2*LoadMorePageSize; i++ {
		fs.addProduct(models.Product{Price: float64(i), CategoryID: cat.ID})
	}
	ctx := context.Background()

	_, cursor, err := svc.ResolvePage(ctx, cat.ID, "", LoadMorePageSize)
	require.NoError(t, err)
	require.NotEmpty(t, cursor)

	items, cursor, err := svc.ResolvePage(ctx, cat.ID, cursor, LoadMorePageSize)
	require.NoError(t, err)
	assert.Len(t, items, LoadMorePageSize)
	require.NotEmpty(t, cursor, "a full page cannot prove the data is exhausted")

	items, cursor, err = svc.ResolvePage(ctx, cat.ID, cursor, LoadMorePageSize)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, cursor)
}

func TestResolvePage_DeletedCursorIsStale(t *testing.T) {
	svc, fs, cat := newTestPagination(t)
	for i := 0; i < 20; i++ {
		fs.addProduct(models.Product{Price: float64(i), CategoryID: cat.ID})
	}
	ctx := context.Background()

	items, cursor, err := svc.ResolvePage(ctx, cat.ID, "", 10)
	require.NoError(t, err)
	require.NotEmpty(t, cursor)

	// The cursor product vanishes between requests
	require.NoError(t, fs.DeleteProduct(ctx, items[len(items)-1].ID))

	_, _, err = svc.ResolvePage(ctx, cat.ID, cursor, 10)
	assert.ErrorIs(t, err, ErrCursorStale,
		"a deleted cursor must surface as stale, never skip ahead silently")
}

func TestResolvePage_MalformedCursorIsStale(t *testing.T) {
	svc, _, cat := newTestPagination(t)

	_, _, err := svc.ResolvePage(context.Background(), cat.ID, "not-a-uuid", 10)
	assert.ErrorIs(t, err, ErrCursorStale)
}

func TestResolvePage_DefaultsPageSize(t *testing.T) {
	svc, fs, cat := newTestPagination(t)
	for i := 0; i < 20; i++ {
		fs.addProduct(models.Product{Price: float64(i), CategoryID: cat.ID})
	}

	items, _, err := svc.ResolvePage(context.Background(), cat.ID, "", 0)
	require.NoError(t, err)
	assert.Len(t, items, LoadMorePageSize)
}
