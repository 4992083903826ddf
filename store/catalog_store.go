// Package store is the catalog's authoritative backing layer. It owns durable
// state and query primitives only; caching policy lives above it.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/models"
)

var (
	// ErrNotFound marks a lookup for a record that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable marks any other backing-store failure (network, outage).
	// Read-path callers degrade to empty-state rendering; admin mutations
	// surface it and do not proceed to cache invalidation.
	ErrUnavailable = errors.New("catalog store unavailable")
)

// CatalogStore exposes the narrow query surface the catalog needs. Mutations
// are single-record; no cross-record transactionality is assumed.
type CatalogStore interface {
	AllProducts(ctx context.Context) ([]models.Product, error)
	FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ProductsByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]models.Product, error)
	// ProductPage returns up to pageSize products of a category ordered by
	// price descending (id ascending on ties), resuming strictly after the
	// given product when non-nil.
	ProductPage(ctx context.Context, categoryID uuid.UUID, after *models.Product, pageSize int) ([]models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	AllCategories(ctx context.Context) ([]models.Category, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	CreateCategory(ctx context.Context, cat *models.Category) error
	UpdateCategory(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
