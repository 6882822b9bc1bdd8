package repositories

import "pasar/internal/models"

// UserRepository defines the interface for user data access. Lookups return
// (nil, nil) when no user matches.
type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email models.Email) (*models.User, error)
	ExistsByEmail(email models.Email) (bool, error)
	Save(user *models.User) error
}
