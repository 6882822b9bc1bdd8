package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the order lifecycle state. Transitions run one way,
// pending -> paid -> shipped -> delivered, with cancellation possible until
// the order ships.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is a single line of an order. UnitPrice is frozen at order time
// and never follows later product price changes.
type OrderItem struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string `json:"order_id" gorm:"type:varchar(36);index"`
	ProductID string `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price" gorm:"embedded;embeddedPrefix:unit_price_"`
}

// TotalPrice is unit price times quantity.
func (i OrderItem) TotalPrice() Money {
	return i.UnitPrice.Mul(i.Quantity)
}

// OrderLine is a cart snapshot line used to build an order: the product, the
// quantity, and the price captured at placement time.
type OrderLine struct {
	ProductID string
	Quantity  int
	UnitPrice Money
}

// Order is a placed customer order with its immutable item lines.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string      `json:"user_id" gorm:"type:varchar(36);index"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount Money       `json:"total_amount" gorm:"embedded;embeddedPrefix:total_"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20)"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewOrderFromCart builds a pending order from cart snapshot lines. The total
// is the exact decimal sum of unit price times quantity over all lines.
func NewOrderFromCart(userID string, lines []OrderLine) (*Order, error) {
	orderID := uuid.New().String()

	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	total := ZeroMoney("USD")
	if len(items) > 0 {
		total = ZeroMoney(items[0].UnitPrice.Currency)
	}
	for _, item := range items {
		sum, err := total.Add(item.TotalPrice())
		if err != nil {
			return nil, err
		}
		total = sum
	}

	return &Order{
		ID:          orderID,
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		Status:      OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// MarkAsPaid moves a pending order to paid.
func (o *Order) MarkAsPaid() error {
	if o.Status != OrderStatusPending {
		return &ValidationError{Message: "order must be pending before payment"}
	}
	o.Status = OrderStatusPaid
	return nil
}

// MarkAsShipped moves a paid order to shipped.
func (o *Order) MarkAsShipped() error {
	if o.Status != OrderStatusPaid {
		return &ValidationError{Message: "order must be paid before shipping"}
	}
	o.Status = OrderStatusShipped
	return nil
}

// MarkAsDelivered moves a shipped order to delivered.
func (o *Order) MarkAsDelivered() error {
	if o.Status != OrderStatusShipped {
		return &ValidationError{Message: "order must be shipped before delivery"}
	}
	o.Status = OrderStatusDelivered
	return nil
}

// Cancel cancels the order unless it has already shipped or been delivered.
func (o *Order) Cancel() error {
	if o.Status == OrderStatusShipped || o.Status == OrderStatusDelivered {
		return &ValidationError{Message: "cannot cancel shipped or delivered orders"}
	}
	o.Status = OrderStatusCancelled
	return nil
}
