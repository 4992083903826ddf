package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a storefront section ("Figuras de Acción", "Peluches", ...).
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null;index"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

var nonWord = regexp.MustCompile(`[^\w-]+`)

// Slugify derives the URL slug from a category name: lowercased, spaces to
// hyphens, anything outside word characters stripped.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	return nonWord.ReplaceAllString(slug, "")
}

// BeforeCreate hook - auto-generate UUID v7 and derive the slug
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return nil
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// UpdateCategoryRequest is used for JSON updates; nil means "leave unchanged".
// A name change re-derives the slug (products keep their denormalized copy).
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}
