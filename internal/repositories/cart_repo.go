package repositories

import (
	"pasar/internal/models"
)

// CartRepository defines the interface for cart data access. There is at most
// one cart per user; FindByUserID returns (nil, nil) when none exists yet.
type CartRepository interface {
	FindByUserID(userID string) (*models.Cart, error)
	Save(cart *models.Cart) error
}
