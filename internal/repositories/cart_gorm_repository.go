package repositories

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
)

// GormCartRepository is a GORM implementation of CartRepository.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new instance of GormCartRepository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{
		db: db,
	}
}

// FindByUserID retrieves the user's cart with its items in insertion order,
// or (nil, nil) if the user has no cart yet.
func (r *GormCartRepository) FindByUserID(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.created_at")
	}).First(&cart, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// Save upserts the cart row and replaces its item rows with the in-memory
// list, so merges, removals and clears all persist the same way.
func (r *GormCartRepository) Save(cart *models.Cart) error {
	if err := r.db.Omit("Items").Save(cart).Error; err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	if err := r.db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}
	if len(cart.Items) > 0 {
		if err := r.db.Create(&cart.Items).Error; err != nil {
			return fmt.Errorf("failed to save cart items: %w", err)
		}
	}
	return nil
}
