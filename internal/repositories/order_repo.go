package repositories

import (
	"pasar/internal/models"
)

// OrderRepository defines the interface for order data access. Order items
// are owned by the order and persisted with it.
type OrderRepository interface {
	FindByID(id string) (*models.Order, error)
	Save(order *models.Order) error
}
