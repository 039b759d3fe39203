package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

// InMemoryCatalogRepository is an in-memory implementation of CatalogRepository.
type InMemoryCatalogRepository struct {
	mu       sync.RWMutex
	products []models.CatalogProduct
	nextID   int
}

// NewInMemoryCatalogRepository creates a new instance of InMemoryCatalogRepository.
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{
		products: []models.CatalogProduct{},
		nextID:   1,
	}
}

// Create adds a new product to the repository. A zero ID gets the next sequence value.
func (r *InMemoryCatalogRepository) Create(_ context.Context, product models.CatalogProduct) (models.CatalogProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if strings.EqualFold(p.Title, product.Title) || (product.ID != 0 && p.ID == product.ID) {
			return models.CatalogProduct{}, ErrDuplicatedValueUnique
		}
	}

	if product.ID == 0 {
		product.ID = r.nextID
	}
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	now := time.Now().Format(time.RFC3339)
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryCatalogRepository) GetAll(_ context.Context) ([]models.CatalogProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.CatalogProduct, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryCatalogRepository) GetByID(_ context.Context, id int) (models.CatalogProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.CatalogProduct{}, ErrProductNotFound
}

// AdjustQuantity applies delta to the stock of a product.
func (r *InMemoryCatalogRepository) AdjustQuantity(_ context.Context, id int, delta int) (models.CatalogProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		if p.Quantity+delta < 0 {
			return models.CatalogProduct{}, ErrInvalidQuantityChange
		}
		p.Quantity += delta
		p.UpdatedAt = time.Now().Format(time.RFC3339)
		r.products[i] = p
		return p, nil
	}
	return models.CatalogProduct{}, ErrProductNotFound
}

func (r *InMemoryCatalogRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []models.CatalogProduct{}
	r.nextID = 1
}
