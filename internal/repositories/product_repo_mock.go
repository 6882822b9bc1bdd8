package repositories

import (
	"sync"

	"pasar/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// FindByID returns a product by its ID, or (nil, nil) if absent.
func (r *MockProductRepository) FindByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// FindByIDForUpdate behaves like FindByID; the in-memory store has no row
// locks.
func (r *MockProductRepository) FindByIDForUpdate(id string) (*models.Product, error) {
	return r.FindByID(id)
}

// Save stores a product.
func (r *MockProductRepository) Save(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = *product
	return nil
}

// SaveMany stores a batch of products.
func (r *MockProductRepository) SaveMany(products []*models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, product := range products {
		r.products[product.ID] = *product
	}
	return nil
}

// Snapshot copies the current state, for tests that assert rollback behavior.
func (r *MockProductRepository) Snapshot() map[string]models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make(map[string]models.Product, len(r.products))
	for id, product := range r.products {
		copied[id] = product
	}
	return copied
}

// Restore replaces the current state with a snapshot.
func (r *MockProductRepository) Restore(snapshot map[string]models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = snapshot
}
