package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a single product line in a cart. (CartID, ProductID) is unique:
// adding the same product again merges quantities instead of appending.
// CreatedAt keeps insertion order stable across loads.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID    string    `json:"cart_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_product"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_product"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCartItem creates a cart item with a fresh id.
func NewCartItem(cartID, productID string, quantity int) *CartItem {
	return &CartItem{
		ID:        uuid.New().String(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
	}
}

// UpdateQuantity replaces the item quantity. Zero or negative quantities are
// rejected; RemoveItem is the way to drop a line.
func (i *CartItem) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Message: "quantity must be positive"}
	}
	i.Quantity = quantity
	return nil
}

// Cart is a user's shopping cart. There is exactly one cart per user; it is
// created lazily on the first add and cleared, not deleted, after an order.
type Cart struct {
	ID     string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// NewCart creates an empty cart for a user.
func NewCart(userID string) *Cart {
	return &Cart{
		ID:     uuid.New().String(),
		UserID: userID,
	}
}

// AddItem adds quantity units of a product. If the product is already in the
// cart the quantities merge on the existing line; otherwise a new line is
// appended, preserving insertion order.
func (c *Cart) AddItem(productID string, quantity int) error {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			return c.Items[idx].UpdateQuantity(c.Items[idx].Quantity + quantity)
		}
	}
	c.Items = append(c.Items, *NewCartItem(c.ID, productID, quantity))
	return nil
}

// RemoveItem drops the line with the given item id. Removing an unknown id is
// a no-op.
func (c *Cart) RemoveItem(itemID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// Clear empties the cart in place. The cart row itself survives.
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}
