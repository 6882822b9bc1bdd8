package services_test

import (
	"encoding/json"
	"testing"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"
	"pasar/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(queue string, body []byte) error {
	args := m.Called(queue, body)
	return args.Error(0)
}

func newOrderFixture() (*services.OrderService, *repositories.MockRepositoryProvider, *MockEventPublisher) {
	provider := repositories.NewMockRepositoryProvider()
	uow := repositories.NewMockUnitOfWork(provider)
	publisher := new(MockEventPublisher)
	return services.NewOrderService(uow, publisher), provider, publisher
}

func seedProduct(t *testing.T, provider *repositories.MockRepositoryProvider, name, price string, stock int) *models.Product {
	t.Helper()
	unit, err := models.NewMoneyFromString(price, "USD")
	assert.NoError(t, err)
	product := models.NewProduct(name, "", unit, stock, "category-1")
	assert.NoError(t, provider.ProductRepo.Save(product))
	return product
}

func seedCart(t *testing.T, provider *repositories.MockRepositoryProvider, userID string, items map[string]int) *models.Cart {
	t.Helper()
	cart := models.NewCart(userID)
	for productID, quantity := range items {
		assert.NoError(t, cart.AddItem(productID, quantity))
	}
	assert.NoError(t, provider.CartRepo.Save(cart))
	return cart
}

func TestOrderService_PlaceOrder(t *testing.T) {
	orderService, provider, publisher := newOrderFixture()

	laptop := seedProduct(t, provider, "Laptop", "15.00", 5)
	mouse := seedProduct(t, provider, "Mouse", "10.00", 8)
	seedCart(t, provider, "user-1", map[string]int{laptop.ID: 2, mouse.ID: 2})

	var published []byte
	publisher.On("Publish", rabbitmq.OrderQueue, mock.AnythingOfType("[]uint8")).
		Run(func(args mock.Arguments) { published = args.Get(1).([]byte) }).
		Return(nil).Once()

	order, err := orderService.PlaceOrder("user-1")
	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	// 2*15.00 + 2*10.00
	assert.Equal(t, "50.00 USD", order.TotalAmount.String())

	// Stock was decremented
	stored, err := provider.ProductRepo.FindByID(laptop.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)
	stored, err = provider.ProductRepo.FindByID(mouse.ID)
	assert.NoError(t, err)
	assert.Equal(t, 6, stored.Stock)

	// The cart was cleared but still exists
	cart, err := provider.CartRepo.FindByUserID("user-1")
	assert.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart.Items)

	// The order was persisted
	saved, err := provider.OrderRepo.FindByID(order.ID)
	assert.NoError(t, err)
	assert.NotNil(t, saved)

	// The order.created event carries the order details
	publisher.AssertExpectations(t)
	var event map[string]interface{}
	assert.NoError(t, json.Unmarshal(published, &event))
	assert.Equal(t, "order.created", event["event"])
	assert.Equal(t, order.ID, event["order_id"])
	assert.Equal(t, "50.00", event["total"])
}

func TestOrderService_PlaceOrderEmptyCart(t *testing.T) {
	orderService, provider, publisher := newOrderFixture()

	// No cart at all
	_, err := orderService.PlaceOrder("user-1")
	assert.ErrorIs(t, err, models.ErrCartEmpty)

	// Cart exists but has no items
	seedCart(t, provider, "user-2", nil)
	_, err = orderService.PlaceOrder("user-2")
	assert.ErrorIs(t, err, models.ErrCartEmpty)

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrderInsufficientStock(t *testing.T) {
	orderService, provider, publisher := newOrderFixture()

	laptop := seedProduct(t, provider, "Laptop", "15.00", 5)
	scarce := seedProduct(t, provider, "Limited Edition", "99.99", 1)
	seedCart(t, provider, "user-1", map[string]int{laptop.ID: 2, scarce.ID: 3})

	order, err := orderService.PlaceOrder("user-1")
	assert.Nil(t, order)
	assert.Error(t, err)
	var insufficient *models.InsufficientStockError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, scarce.ID, insufficient.ProductID)
	assert.Equal(t, 3, insufficient.Requested)
	assert.Equal(t, 1, insufficient.Available)

	// The whole placement rolled back: no stock change anywhere, even for the
	// product whose decrement succeeded before the failure
	stored, err := provider.ProductRepo.FindByID(laptop.ID)
	assert.NoError(t, err)
	assert.Equal(t, 5, stored.Stock)
	stored, err = provider.ProductRepo.FindByID(scarce.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, stored.Stock)

	// The cart keeps its items
	cart, err := provider.CartRepo.FindByUserID("user-1")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 2)

	// No order, no event
	assert.Equal(t, 0, provider.OrderRepo.Count())
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrderNilPublisher(t *testing.T) {
	provider := repositories.NewMockRepositoryProvider()
	uow := repositories.NewMockUnitOfWork(provider)
	orderService := services.NewOrderService(uow, nil)

	laptop := seedProduct(t, provider, "Laptop", "15.00", 5)
	seedCart(t, provider, "user-1", map[string]int{laptop.ID: 1})

	// Placement succeeds without a publisher wired
	order, err := orderService.PlaceOrder("user-1")
	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_Transitions(t *testing.T) {
	orderService, provider, publisher := newOrderFixture()
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	laptop := seedProduct(t, provider, "Laptop", "15.00", 5)
	seedCart(t, provider, "user-1", map[string]int{laptop.ID: 1})
	order, err := orderService.PlaceOrder("user-1")
	assert.NoError(t, err)

	// Shipping before payment fails
	err = orderService.MarkShipped(order.ID)
	assert.Error(t, err)

	// Full lifecycle
	assert.NoError(t, orderService.MarkPaid(order.ID))
	assert.NoError(t, orderService.MarkShipped(order.ID))
	assert.NoError(t, orderService.MarkDelivered(order.ID))

	stored, err := provider.OrderRepo.FindByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, stored.Status)

	// A delivered order cannot be cancelled
	err = orderService.Cancel(order.ID)
	assert.Error(t, err)

	// Unknown order id
	err = orderService.MarkPaid("no-such-order")
	assert.Error(t, err)
}
