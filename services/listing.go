package services

import (
	"context"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/models"
)

const (
	// StorefrontPageSize slices the shopper-facing catalog grid.
	StorefrontPageSize = 20
	// AdminPageSize slices the admin inventory table.
	AdminPageSize = 10
)

// ListParams narrows the cached catalog snapshot to one page.
type ListParams struct {
	// FilterText is matched case-insensitively against name and description.
	FilterText string
	// CategoryID, when set, keeps only products of that category.
	CategoryID *uuid.UUID
	// Page is 1-based; out-of-range pages return an empty slice, not an error.
	Page    int
	PerPage int
	// SortBy is "name", "price" or "stock"; empty keeps snapshot order.
	SortBy    string
	SortOrder string
	// Shuffle randomizes the filtered set per request (storefront browse
	// variant). It is applied after the cached fetch so no shuffled order is
	// ever memoized and biased across shoppers.
	Shuffle bool
}

// ListPage is one slice of the filtered catalog.
type ListPage struct {
	Items      []models.Product
	Page       int
	TotalCount int
	TotalPages int
}

// ListingService composes storefront and admin listings entirely in memory:
// one cached bulk fetch, then pure filtering/sorting/slicing. No further
// backing-store reads happen per page turn.
type ListingService struct {
	catalog *CatalogService
}

func NewListingService(catalog *CatalogService) *ListingService {
	return &ListingService{catalog: catalog}
}

// List applies, in order: text filter, category filter, sort (or shuffle),
// fixed-size slicing.
func (l *ListingService) List(ctx context.Context, p ListParams) (ListPage, error) {
	all, err := l.catalog.AllProducts(ctx)
	if err != nil {
		return ListPage{}, err
	}

	filtered := filterProducts(all, p.FilterText, p.CategoryID)

	switch {
	case p.Shuffle:
		filtered = shuffleProducts(filtered)
	case p.SortBy != "":
		sortProducts(filtered, p.SortBy, p.SortOrder)
	}

	perPage := p.PerPage
	if perPage <= 0 {
		perPage = StorefrontPageSize
	}
	page := p.Page
	if page < 1 {
		page = 1
	}

	totalCount := len(filtered)
	totalPages := (totalCount + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= totalCount {
		return ListPage{Items: []models.Product{}, Page: page, TotalCount: totalCount, TotalPages: totalPages}, nil
	}
	end := start + perPage
	if end > totalCount {
		end = totalCount
	}

	items := make([]models.Product, end-start)
	copy(items, filtered[start:end])

	return ListPage{Items: items, Page: page, TotalCount: totalCount, TotalPages: totalPages}, nil
}

func filterProducts(all []models.Product, filterText string, categoryID *uuid.UUID) []models.Product {
	filtered := make([]models.Product, 0, len(all))
	needle := strings.ToLower(strings.TrimSpace(filterText))

	for _, p := range all {
		if needle != "" {
			haystack := strings.ToLower(p.Name + " " + p.Description)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// sortProducts sorts in place, stable, by one selectable field. Strings
// compare case-insensitively; numerics compare as numbers.
func sortProducts(items []models.Product, sortBy, sortOrder string) {
	desc := strings.EqualFold(sortOrder, "desc")

	var less func(a, b models.Product) bool
	switch sortBy {
	case "name":
		less = func(a, b models.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case "price":
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case "stock":
		less = func(a, b models.Product) bool { return a.Stock < b.Stock }
	default:
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

// shuffleProducts is a Fisher-Yates over a copy; the cached snapshot itself
// is never reordered.
func shuffleProducts(items []models.Product) []models.Product {
	shuffled := make([]models.Product, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
