package repositories

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new instance of GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{
		db: db,
	}
}

// FindByID retrieves a user by id, or (nil, nil) if absent.
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// FindByEmail retrieves a user by email, or (nil, nil) if absent.
func (r *GormUserRepository) FindByEmail(email models.Email) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// ExistsByEmail reports whether a user with the email is registered.
func (r *GormUserRepository) ExistsByEmail(email models.Email) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email.String()).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users by email %s: %w", email, err)
	}
	return count > 0, nil
}

// Save inserts or updates a user.
func (r *GormUserRepository) Save(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
