package repositories

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
)

// GormResetTokenRepository is a GORM implementation of
// PasswordResetTokenRepository.
type GormResetTokenRepository struct {
	db *gorm.DB
}

// NewGormResetTokenRepository creates a new instance of GormResetTokenRepository.
func NewGormResetTokenRepository(db *gorm.DB) *GormResetTokenRepository {
	return &GormResetTokenRepository{
		db: db,
	}
}

// FindByToken retrieves a token by its random string, or (nil, nil) if absent.
func (r *GormResetTokenRepository) FindByToken(token string) (*models.PasswordResetToken, error) {
	var resetToken models.PasswordResetToken
	if err := r.db.First(&resetToken, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get password reset token: %w", err)
	}
	return &resetToken, nil
}

// Save inserts or updates a token.
func (r *GormResetTokenRepository) Save(token *models.PasswordResetToken) error {
	if err := r.db.Save(token).Error; err != nil {
		return fmt.Errorf("failed to save password reset token: %w", err)
	}
	return nil
}
