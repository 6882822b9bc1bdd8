package repositories

import (
	"pasar/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	FindByID(id string) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	Save(category *models.Category) error
}
