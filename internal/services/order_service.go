package services

import (
	"encoding/json"
	"log"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/rabbitmq"
)

// OrderService handles order placement and status transitions.
type OrderService struct {
	uow       repositories.UnitOfWork
	publisher EventPublisher // may be nil; events are best effort
}

// NewOrderService creates a new OrderService.
func NewOrderService(uow repositories.UnitOfWork, publisher EventPublisher) *OrderService {
	return &OrderService{
		uow:       uow,
		publisher: publisher,
	}
}

// PlaceOrder turns the user's cart into a pending order inside one atomic
// transaction: every product row is locked and its stock decremented, prices
// are frozen onto the order lines, the order is persisted, and the cart is
// cleared. Any failure rolls all of it back. On success an order.created
// event is published, after the commit.
func (s *OrderService) PlaceOrder(userID string) (*models.Order, error) {
	var order *models.Order

	err := s.uow.Do(func(repos repositories.RepositoryProvider) error {
		cart, err := repos.Carts().FindByUserID(userID)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return models.ErrCartEmpty
		}

		lines := make([]models.OrderLine, 0, len(cart.Items))
		updated := make([]*models.Product, 0, len(cart.Items))
		for _, item := range cart.Items {
			product, err := repos.Products().FindByIDForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &models.ProductNotFoundError{ProductID: item.ProductID}
			}

			if err := product.DecreaseStock(item.Quantity); err != nil {
				return err
			}
			updated = append(updated, product)

			lines = append(lines, models.OrderLine{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
			})
		}
		if err := repos.Products().SaveMany(updated); err != nil {
			return err
		}

		order, err = models.NewOrderFromCart(userID, lines)
		if err != nil {
			return err
		}
		if err := repos.Orders().Save(order); err != nil {
			return err
		}

		cart.Clear()
		return repos.Carts().Save(cart)
	})
	if err != nil {
		return nil, err
	}

	s.publishOrderCreated(order)
	return order, nil
}

// MarkPaid advances a pending order to paid.
func (s *OrderService) MarkPaid(orderID string) error {
	return s.transition(orderID, (*models.Order).MarkAsPaid)
}

// MarkShipped advances a paid order to shipped.
func (s *OrderService) MarkShipped(orderID string) error {
	return s.transition(orderID, (*models.Order).MarkAsShipped)
}

// MarkDelivered advances a shipped order to delivered.
func (s *OrderService) MarkDelivered(orderID string) error {
	return s.transition(orderID, (*models.Order).MarkAsDelivered)
}

// Cancel cancels an order that has not shipped yet.
func (s *OrderService) Cancel(orderID string) error {
	return s.transition(orderID, (*models.Order).Cancel)
}

func (s *OrderService) transition(orderID string, mutate func(*models.Order) error) error {
	return s.uow.Do(func(repos repositories.RepositoryProvider) error {
		order, err := repos.Orders().FindByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return &models.ValidationError{Message: "order not found: " + orderID}
		}
		if err := mutate(order); err != nil {
			return err
		}
		return repos.Orders().Save(order)
	})
}

func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"event":    "order.created",
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount.Amount.StringFixed(2),
		"currency": order.TotalAmount.Currency,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for order %s: %v", order.ID, err)
		return
	}
	if err := s.publisher.Publish(rabbitmq.OrderQueue, body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	}
}
