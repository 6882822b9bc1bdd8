package queries

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartQueries assembles the cart read model: items joined to live product
// name and price, with a display total.
type CartQueries struct {
	db *gorm.DB
}

// NewCartQueries creates a query service over the given database.
func NewCartQueries(db *gorm.DB) *CartQueries {
	return &CartQueries{db: db}
}

type cartItemRow struct {
	ID            string
	ProductID     string
	Quantity      int
	ProductName   string
	PriceAmount   decimal.Decimal
	PriceCurrency string
}

// GetCart returns the user's cart for display, or nil if the user has no
// cart yet.
func (q *CartQueries) GetCart(userID string) (*CartReadModel, error) {
	var cart models.Cart
	if err := q.db.First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}

	var rows []cartItemRow
	err := q.db.Table("cart_items").
		Select("cart_items.id, cart_items.product_id, cart_items.quantity, "+
			"products.name AS product_name, products.price_amount, products.price_currency").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.cart_id = ?", cart.ID).
		Order("cart_items.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load cart items for cart %s: %w", cart.ID, err)
	}

	items := make([]CartItemReadModel, 0, len(rows))
	total := models.ZeroMoney("USD")
	if len(rows) > 0 {
		total = models.ZeroMoney(rows[0].PriceCurrency)
	}
	for _, row := range rows {
		price := models.Money{Amount: row.PriceAmount, Currency: row.PriceCurrency}
		lineTotal := price.Mul(row.Quantity)

		sum, err := total.Add(lineTotal)
		if err != nil {
			return nil, err
		}
		total = sum

		items = append(items, CartItemReadModel{
			ID:           row.ID,
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			ProductPrice: price,
			Quantity:     row.Quantity,
			TotalPrice:   lineTotal,
		})
	}

	return &CartReadModel{
		ID:          cart.ID,
		UserID:      cart.UserID,
		Items:       items,
		TotalAmount: total,
	}, nil
}
