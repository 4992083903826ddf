// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS (customer-facing views)
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

// StorefrontProduct is the shopper-facing product card. OriginalPrice here is
// the DISPLAY value (stored price or the ×1.2 fallback) and is never persisted.
type StorefrontProduct struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Price           float64  `json:"price"`
	OriginalPrice   float64  `json:"original_price"`
	DiscountPercent int      `json:"discount_percent"`
	ImageURL        string   `json:"image_url"`
	Images          []string `json:"images,omitempty"`
	CategoryID      string   `json:"category_id"`
	CategoryLabel   string   `json:"category_label"`
	Stock           int      `json:"stock"`
}

// StorefrontCategory is the shopper-facing category tile.
type StorefrontCategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"image_url"`
	Icon     string `json:"icon"`
}

// ToStorefrontProduct builds the card view. Products whose category was
// deleted (or never had a slug denormalized) render as "uncategorized" rather
// than failing.
func ToStorefrontProduct(p Product) StorefrontProduct {
	label := p.CategorySlug
	if label == "" {
		label = "uncategorized"
	}
	return StorefrontProduct{
		ID:              p.ID.String(),
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.DisplayOriginalPrice(),
		DiscountPercent: p.DiscountPercent(),
		ImageURL:        p.ImageURL,
		Images:          p.Images,
		CategoryID:      p.CategoryID.String(),
		CategoryLabel:   label,
		Stock:           p.Stock,
	}
}

// ToStorefrontProducts maps a page of products to cards.
func ToStorefrontProducts(items []Product) []StorefrontProduct {
	out := make([]StorefrontProduct, 0, len(items))
	for _, p := range items {
		out = append(out, ToStorefrontProduct(p))
	}
	return out
}

// ToStorefrontCategory builds the tile view.
func ToStorefrontCategory(c Category) StorefrontCategory {
	return StorefrontCategory{
		ID:       c.ID.String(),
		Name:     c.Name,
		Slug:     c.Slug,
		ImageURL: c.ImageURL,
		Icon:     c.Icon,
	}
}

func ToStorefrontCategories(items []Category) []StorefrontCategory {
	out := make([]StorefrontCategory, 0, len(items))
	for _, c := range items {
		out = append(out, ToStorefrontCategory(c))
	}
	return out
}
