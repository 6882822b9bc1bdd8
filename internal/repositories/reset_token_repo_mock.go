package repositories

import (
	"sync"

	"pasar/internal/models"
)

// MockResetTokenRepository is an in-memory implementation of
// PasswordResetTokenRepository.
type MockResetTokenRepository struct {
	tokens map[string]models.PasswordResetToken // keyed by token string
	mu     sync.RWMutex
}

// NewMockResetTokenRepository creates a new instance of MockResetTokenRepository.
func NewMockResetTokenRepository() *MockResetTokenRepository {
	return &MockResetTokenRepository{
		tokens: make(map[string]models.PasswordResetToken),
	}
}

// FindByToken returns a token by its random string, or (nil, nil) if absent.
func (r *MockResetTokenRepository) FindByToken(token string) (*models.PasswordResetToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	return &stored, nil
}

// Save stores a token.
func (r *MockResetTokenRepository) Save(token *models.PasswordResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token.Token] = *token
	return nil
}
