package cache

// Cache keys live in one place so they never drift across callers.

func KeyCategories() string { return "categories:list" }

func KeyFeatured() string { return "products:featured" }

func KeyCatalog() string { return "products:catalog" }

func KeyProduct(id string) string { return "product:" + id }

func KeyCategory(id string) string { return "category:" + id }

func KeyProductsByCategory(categoryID string) string {
	return "products:byCategory:" + categoryID
}
