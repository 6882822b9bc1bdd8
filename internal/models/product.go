package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a product in the catalog. Stock is only mutated through
// DecreaseStock and IncreaseStock so the non-negative invariant holds.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Description string    `json:"description"`
	Price       Money     `json:"price" gorm:"embedded;embeddedPrefix:price_"`
	Stock       int       `json:"stock"`
	CategoryID  string    `json:"category_id" gorm:"type:varchar(36);index"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProduct creates a product with a fresh id.
func NewProduct(name, description string, price Money, stock int, categoryID string) *Product {
	return &Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
		CreatedAt:   time.Now().UTC(),
	}
}

// DecreaseStock reserves quantity units of stock. It is a plain precondition
// check, not a two-phase hold: the caller must run it inside a transaction
// with the product row locked to be safe against concurrent placements.
func (p *Product) DecreaseStock(quantity int) error {
	if p.Stock < quantity {
		return &InsufficientStockError{
			ProductID: p.ID,
			Requested: quantity,
			Available: p.Stock,
		}
	}
	p.Stock -= quantity
	return nil
}

// IncreaseStock returns quantity units of stock, for restocking or
// cancellation.
func (p *Product) IncreaseStock(quantity int) {
	p.Stock += quantity
}
