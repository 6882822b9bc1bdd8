package repositories

import (
	"pasar/internal/models"
)

// ProductRepository defines the interface for product data access. Lookups
// return (nil, nil) when no product matches.
type ProductRepository interface {
	FindByID(id string) (*models.Product, error)
	// FindByIDForUpdate locks the product row for the duration of the
	// surrounding transaction, so concurrent stock decrements serialize
	// instead of racing into an oversell.
	FindByIDForUpdate(id string) (*models.Product, error)
	Save(product *models.Product) error
	SaveMany(products []*models.Product) error
}
