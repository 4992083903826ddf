package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/models"
	"gorm.io/gorm"
)

// Gorm implements CatalogStore on Postgres.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}

// ─────────────────────────────────────────────────────────────
// Products
// ─────────────────────────────────────────────────────────────

func (s *Gorm) AllProducts(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, wrap("all products", err)
	}
	return products, nil
}

func (s *Gorm) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, wrap("featured products", err)
	}
	return products, nil
}

func (s *Gorm) ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).
		First(&product, "id = ?", id).Error; err != nil {
		return nil, wrap("product by id", err)
	}
	return &product, nil
}

func (s *Gorm) ProductsByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("price DESC, id ASC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, wrap("products by category", err)
	}
	return products, nil
}

func (s *Gorm) ProductPage(ctx context.Context, categoryID uuid.UUID, after *models.Product, pageSize int) ([]models.Product, error) {
	products := make([]models.Product, 0, pageSize)

	query := `
		SELECT *
		FROM products
		WHERE category_id = ?
	`
	args := []any{categoryID}

	if after != nil {
		query += ` AND (price < ? OR (price = ? AND id > ?))`
		args = append(args, after.Price, after.Price, after.ID)
	}

	query += `
		ORDER BY price DESC, id ASC
		LIMIT ?
	`
	args = append(args, pageSize)

	if err := s.db.WithContext(ctx).
		Raw(query, args...).
		Scan(&products).Error; err != nil {
		return nil, wrap("product page", err)
	}
	return products, nil
}

func (s *Gorm) CreateProduct(ctx context.Context, p *models.Product) error {
	return wrap("create product", s.db.WithContext(ctx).Create(p).Error)
}

func (s *Gorm) UpdateProduct(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).
		First(&product, "id = ?", id).Error; err != nil {
		return nil, wrap("update product", err)
	}
	if err := s.db.WithContext(ctx).
		Model(&product).
		Updates(updates).Error; err != nil {
		return nil, wrap("update product", err)
	}
	if err := s.db.WithContext(ctx).
		First(&product, "id = ?", id).Error; err != nil {
		return nil, wrap("update product", err)
	}
	return &product, nil
}

func (s *Gorm) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete product: %w", ErrNotFound)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────
// Categories
// ─────────────────────────────────────────────────────────────

func (s *Gorm) AllCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := s.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, wrap("all categories", err)
	}
	return categories, nil
}

func (s *Gorm) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).
		First(&category, "id = ?", id).Error; err != nil {
		return nil, wrap("category by id", err)
	}
	return &category, nil
}

func (s *Gorm) CreateCategory(ctx context.Context, cat *models.Category) error {
	return wrap("create category", s.db.WithContext(ctx).Create(cat).Error)
}

func (s *Gorm) UpdateCategory(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).
		First(&category, "id = ?", id).Error; err != nil {
		return nil, wrap("update category", err)
	}
	if err := s.db.WithContext(ctx).
		Model(&category).
		Updates(updates).Error; err != nil {
		return nil, wrap("update category", err)
	}
	if err := s.db.WithContext(ctx).
		First(&category, "id = ?", id).Error; err != nil {
		return nil, wrap("update category", err)
	}
	return &category, nil
}

// DeleteCategory removes the category only. Products keep their category_id
// and become orphaned; listings must render them, not crash on them.
func (s *Gorm) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete category: %w", ErrNotFound)
	}
	return nil
}
