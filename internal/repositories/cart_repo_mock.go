package repositories

import (
	"sync"

	"pasar/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]models.Cart // keyed by user id
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.Cart),
	}
}

// FindByUserID returns the user's cart, or (nil, nil) if none exists.
func (r *MockCartRepository) FindByUserID(userID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	copied := cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	return &copied, nil
}

// Save stores a cart.
func (r *MockCartRepository) Save(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *cart
	stored.Items = append([]models.CartItem(nil), cart.Items...)
	r.carts[cart.UserID] = stored
	return nil
}

// Snapshot copies the current state, for tests that assert rollback behavior.
func (r *MockCartRepository) Snapshot() map[string]models.Cart {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make(map[string]models.Cart, len(r.carts))
	for userID, cart := range r.carts {
		c := cart
		c.Items = append([]models.CartItem(nil), cart.Items...)
		copied[userID] = c
	}
	return copied
}

// Restore replaces the current state with a snapshot.
func (r *MockCartRepository) Restore(snapshot map[string]models.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts = snapshot
}
