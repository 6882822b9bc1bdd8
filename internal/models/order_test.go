package models_test

import (
	"testing"

	"pasar/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderFromCart(t *testing.T) {
	unitA, _ := models.NewMoneyFromString("15.00", "USD")
	unitB, _ := models.NewMoneyFromString("10.00", "USD")

	lines := []models.OrderLine{
		{ProductID: "product-a", Quantity: 2, UnitPrice: unitA},
		{ProductID: "product-b", Quantity: 2, UnitPrice: unitB},
	}

	order, err := models.NewOrderFromCart("user-1", lines)
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)

	// 2*15.00 + 2*10.00 = 50.00
	assert.Equal(t, "50.00 USD", order.TotalAmount.String())

	// Each item is linked to the order and freezes its unit price
	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
		assert.NotEmpty(t, item.ID)
	}
	assert.Equal(t, "30.00 USD", order.Items[0].TotalPrice().String())
	assert.Equal(t, "20.00 USD", order.Items[1].TotalPrice().String())
}

func TestNewOrderFromCartMixedCurrencies(t *testing.T) {
	usd, _ := models.NewMoneyFromString("5.00", "USD")
	eur, _ := models.NewMoneyFromString("5.00", "EUR")

	_, err := models.NewOrderFromCart("user-1", []models.OrderLine{
		{ProductID: "product-a", Quantity: 1, UnitPrice: usd},
		{ProductID: "product-b", Quantity: 1, UnitPrice: eur},
	})
	assert.Error(t, err)
}

func TestOrderStatusTransitions(t *testing.T) {
	unit, _ := models.NewMoneyFromString("9.99", "USD")
	newOrder := func() *models.Order {
		order, err := models.NewOrderFromCart("user-1", []models.OrderLine{
			{ProductID: "product-a", Quantity: 1, UnitPrice: unit},
		})
		assert.NoError(t, err)
		return order
	}

	// Happy path: pending -> paid -> shipped -> delivered
	order := newOrder()
	assert.NoError(t, order.MarkAsPaid())
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.NoError(t, order.MarkAsShipped())
	assert.Equal(t, models.OrderStatusShipped, order.Status)
	assert.NoError(t, order.MarkAsDelivered())
	assert.Equal(t, models.OrderStatusDelivered, order.Status)

	// No transition skips a stage
	order = newOrder()
	assert.Error(t, order.MarkAsShipped())
	assert.Error(t, order.MarkAsDelivered())
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// Paying twice fails
	order = newOrder()
	assert.NoError(t, order.MarkAsPaid())
	assert.Error(t, order.MarkAsPaid())
	assert.Equal(t, models.OrderStatusPaid, order.Status)
}

func TestOrderCancel(t *testing.T) {
	unit, _ := models.NewMoneyFromString("9.99", "USD")
	newOrder := func() *models.Order {
		order, err := models.NewOrderFromCart("user-1", []models.OrderLine{
			{ProductID: "product-a", Quantity: 1, UnitPrice: unit},
		})
		assert.NoError(t, err)
		return order
	}

	// Pending and paid orders can be cancelled
	order := newOrder()
	assert.NoError(t, order.Cancel())
	assert.Equal(t, models.OrderStatusCancelled, order.Status)

	order = newOrder()
	assert.NoError(t, order.MarkAsPaid())
	assert.NoError(t, order.Cancel())
	assert.Equal(t, models.OrderStatusCancelled, order.Status)

	// Shipped and delivered orders cannot
	order = newOrder()
	assert.NoError(t, order.MarkAsPaid())
	assert.NoError(t, order.MarkAsShipped())
	assert.Error(t, order.Cancel())
	assert.Equal(t, models.OrderStatusShipped, order.Status)

	assert.NoError(t, order.MarkAsDelivered())
	assert.Error(t, order.Cancel())
	assert.Equal(t, models.OrderStatusDelivered, order.Status)
}
