package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// SpecsMap holds free-text specification pairs ("Batería" → "5000mAh").
// Keys are unique; a repeated key on write simply wins last.
type SpecsMap map[string]string

// ImageList is the ordered gallery; by convention ImageList[0] == Product.ImageURL.
type ImageList []string

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string    `json:"name" gorm:"not null;index"`
	Description   string    `json:"description" gorm:"not null"`
	Price         float64   `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	OriginalPrice *float64  `json:"original_price,omitempty" gorm:"type:numeric(12,2);check:original_price IS NULL OR original_price >= 0"`
	ImageURL      string    `json:"image_url" gorm:"not null"`
	Images        ImageList `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	CategoryID    uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index:idx_products_category"`
	// CategorySlug is copied from the owning category at write time so listings
	// render without a join. It is not refreshed on category rename.
	CategorySlug   string    `json:"category_slug"`
	Stock          int       `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	Specifications SpecsMap  `json:"specifications" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_products_created,sort:desc"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// DisplayOriginalPrice returns the strike-through price for rendering: the
// stored original price when present, otherwise price × 1.2. The synthesized
// value is display-only and must never be written back to the store.
func (p *Product) DisplayOriginalPrice() float64 {
	if p.OriginalPrice != nil {
		return *p.OriginalPrice
	}
	return p.Price * 1.2
}

// DiscountPercent returns the rounded discount badge value, or 0 when the
// product has no real discount (no stored original price, or not higher than
// the selling price).
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return int(100 - (p.Price / *p.OriginalPrice * 100) + 0.5)
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// UpdateProductRequest is used for JSON (text-only) updates; nil means "leave unchanged".
type UpdateProductRequest struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	Price          *float64   `json:"price" binding:"omitempty,min=0"`
	OriginalPrice  *float64   `json:"original_price" binding:"omitempty,min=0"`
	CategoryID     *uuid.UUID `json:"category_id"`
	Stock          *int       `json:"stock" binding:"omitempty,min=0"`
	Specifications *SpecsMap  `json:"specifications"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom types)
// ═══════════════════════════════════════════════════════════

func (s *SpecsMap) Scan(value interface{}) error {
	if value == nil {
		*s = make(SpecsMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan SpecsMap")
	}
	return json.Unmarshal(bytes, s)
}

func (s SpecsMap) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(s)
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ImageList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ImageList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}
