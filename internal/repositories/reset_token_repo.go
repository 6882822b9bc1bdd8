package repositories

import (
	"pasar/internal/models"
)

// PasswordResetTokenRepository defines the interface for reset-token data
// access. FindByToken returns (nil, nil) for an unknown token string.
type PasswordResetTokenRepository interface {
	FindByToken(token string) (*models.PasswordResetToken, error)
	Save(token *models.PasswordResetToken) error
}
