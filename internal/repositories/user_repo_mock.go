package repositories

import (
	"sync"

	"pasar/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// FindByID returns a user by ID, or (nil, nil) if absent.
func (r *MockUserRepository) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// FindByEmail returns a user by email, or (nil, nil) if absent.
func (r *MockUserRepository) FindByEmail(email models.Email) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email.String() {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// ExistsByEmail reports whether a user with the email exists.
func (r *MockUserRepository) ExistsByEmail(email models.Email) (bool, error) {
	user, err := r.FindByEmail(email)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// Save stores a user.
func (r *MockUserRepository) Save(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = *user
	return nil
}
