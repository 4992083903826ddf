package services

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/novedades-silva/toystore-backend/models"
	"github.com/novedades-silva/toystore-backend/store"
)

// fakeStore is an in-memory CatalogStore for service tests. It reproduces the
// real store's ordering contracts (catalog newest-first, category pages by
// price descending with id ascending on ties) and counts reads so tests can
// assert cache behavior.
type fakeStore struct {
	mu         sync.Mutex
	products   map[uuid.UUID]models.Product
	categories map[uuid.UUID]models.Category

	readCalls int
	failReads error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:   make(map[uuid.UUID]models.Product),
		categories: make(map[uuid.UUID]models.Category),
	}
}

func (f *fakeStore) addProduct(p models.Product) models.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[p.ID] = p
	return p
}

func (f *fakeStore) addCategory(c models.Category) models.Category {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	if c.Slug == "" {
		c.Slug = models.Slugify(c.Name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories[c.ID] = c
	return c
}

func (f *fakeStore) countRead() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readCalls++
	return f.failReads
}

func (f *fakeStore) reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readCalls
}

func (f *fakeStore) sortedProducts() []models.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (f *fakeStore) AllProducts(ctx context.Context) ([]models.Product, error) {
	if err := f.countRead(); err != nil {
		return nil, err
	}
	return f.sortedProducts(), nil
}

func (f *fakeStore) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if err := f.countRead(); err != nil {
		return nil, err
	}
	all := f.sortedProducts()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeStore) ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if err := f.countRead(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) ProductsByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]models.Product, error) {
	if err := f.countRead(); err != nil {
		return nil, err
	}
	var out []models.Product
	for _, p := range f.sortedProducts() {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) ProductPage(ctx context.Context, categoryID uuid.UUID, after *models.Product, pageSize int) ([]models.Product, error) {
	if err := f.countRead(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	var inCategory []models.Product
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			inCategory = append(inCategory, p)
		}
	}
	f.mu.Unlock()

	// Price descending, id ascending on ties - the keyset ordering
	sort.Slice(inCategory, func(i, j int) bool {
		if inCategory[i].Price != inCategory[j].Price {
			return inCategory[i].Price > inCategory[j].Price
		}
		return inCategory[i].ID.String() < inCategory[j].ID.String()
	})

	start := 0
	if after != nil {
		for i, p := range inCategory {
			if p.Price < after.Price || (p.Price == after.Price && p.ID.String() > after.ID.String()) {
				start = i
				break
			}
			start = len(inCategory)
		}
	}

	end := start + pageSize
	if end > len(inCategory) {
		end = len(inCategory)
	}
	return inCategory[start:end], nil
}

func (f *fakeStore) CreateProduct(ctx context.Context, p *models.Product) error {
	*p = f.addProduct(*p)
	return nil
}

func (f *fakeStore) UpdateProduct(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if v, ok := updates["price"].(float64); ok {
		p.Price = v
	}
	if v, ok := updates["name"].(string); ok {
		p.Name = v
	}
	if v, ok := updates["stock"].(int); ok {
		p.Stock = v
	}
	f.products[id] = p
	return &p, nil
}

func (f *fakeStore) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeStore) AllCategories(ctx context.Context) ([]models.Category, error) {
	if err := f.countRead(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	if err := f.countRead(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (f *fakeStore) CreateCategory(ctx context.Context, cat *models.Category) error {
	*cat = f.addCategory(*cat)
	return nil
}

func (f *fakeStore) UpdateCategory(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if v, ok := updates["name"].(string); ok {
		c.Name = v
	}
	if v, ok := updates["slug"].(string); ok {
		c.Slug = v
	}
	f.categories[id] = c
	return &c, nil
}

func (f *fakeStore) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}
