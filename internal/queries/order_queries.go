package queries

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderQueries serves the order history read paths.
type OrderQueries struct {
	db *gorm.DB
}

// NewOrderQueries creates a query service over the given database.
func NewOrderQueries(db *gorm.DB) *OrderQueries {
	return &OrderQueries{db: db}
}

type orderItemRow struct {
	ID                string
	ProductID         string
	Quantity          int
	UnitPriceAmount   decimal.Decimal
	UnitPriceCurrency string
	ProductName       string
}

// ListOrders returns one page of the user's orders, newest first.
func (q *OrderQueries) ListOrders(userID string, pagination models.Pagination) (PaginatedResult[OrderReadModel], error) {
	var total int64
	err := q.db.Model(&models.Order{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return PaginatedResult[OrderReadModel]{}, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []models.Order
	err = q.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pagination.Limit()).
		Offset(pagination.Offset()).
		Find(&orders).Error
	if err != nil {
		return PaginatedResult[OrderReadModel]{}, fmt.Errorf("failed to list orders: %w", err)
	}

	items := make([]OrderReadModel, 0, len(orders))
	for _, order := range orders {
		readModel, err := q.assemble(order)
		if err != nil {
			return PaginatedResult[OrderReadModel]{}, err
		}
		items = append(items, *readModel)
	}
	return newPaginatedResult(items, total, pagination), nil
}

// GetOrder returns one order for display, or nil if absent.
func (q *OrderQueries) GetOrder(orderID string) (*OrderReadModel, error) {
	var order models.Order
	if err := q.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return q.assemble(order)
}

func (q *OrderQueries) assemble(order models.Order) (*OrderReadModel, error) {
	var rows []orderItemRow
	err := q.db.Table("order_items").
		Select("order_items.id, order_items.product_id, order_items.quantity, "+
			"order_items.unit_price_amount, order_items.unit_price_currency, "+
			"products.name AS product_name").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", order.ID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load items for order %s: %w", order.ID, err)
	}

	items := make([]OrderItemReadModel, 0, len(rows))
	for _, row := range rows {
		unitPrice := models.Money{Amount: row.UnitPriceAmount, Currency: row.UnitPriceCurrency}
		items = append(items, OrderItemReadModel{
			ID:          row.ID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  unitPrice.Mul(row.Quantity),
		})
	}

	return &OrderReadModel{
		ID:          order.ID,
		UserID:      order.UserID,
		Items:       items,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}, nil
}
