package handlers

import (
	"log"

	"pasar/internal/models"
	"pasar/internal/queries"
	"pasar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	orderService *services.OrderService
	orderQueries *queries.OrderQueries
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService, orderQueries *queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		orderQueries: orderQueries,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. All routes
// require authentication.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandlePlaceOrder)
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateStatus)
}

// HandlePlaceOrder turns the user's cart into an order.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	order, err := h.orderService.PlaceOrder(userID)
	if err != nil {
		log.Printf("Error placing order for user %s: %v", userID, err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleListOrders returns one page of the user's order history.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	pagination, err := parsePagination(c)
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.orderQueries.ListOrders(userID, pagination)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", userID, err)
		return respondError(c, err)
	}
	return c.JSON(result)
}

// HandleGetOrder returns a single order. Users only see their own orders.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")

	order, err := h.orderQueries.GetOrder(orderID)
	if err != nil {
		log.Printf("Error getting order %s: %v", orderID, err)
		return respondError(c, err)
	}
	if order == nil || order.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
		})
	}
	return c.JSON(order)
}

// UpdateStatusRequest represents the request body for a status transition.
type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// HandleUpdateStatus advances an order through its status state machine.
// Illegal transitions are rejected.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	var err error
	switch req.Status {
	case models.OrderStatusPaid:
		err = h.orderService.MarkPaid(orderID)
	case models.OrderStatusShipped:
		err = h.orderService.MarkShipped(orderID)
	case models.OrderStatusDelivered:
		err = h.orderService.MarkDelivered(orderID)
	case models.OrderStatusCancelled:
		err = h.orderService.Cancel(orderID)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order status: " + string(req.Status),
		})
	}
	if err != nil {
		log.Printf("Error updating status for order %s: %v", orderID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Order status updated to " + string(req.Status),
	})
}
