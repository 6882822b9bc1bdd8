package handlers

import (
	"log"

	"pasar/internal/queries"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	cartService *services.CartService
	cartQueries *queries.CartQueries
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, cartQueries *queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		cartQueries: cartQueries,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. All routes
// require authentication.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
}

// HandleGetCart returns the user's cart assembled with live product data. A
// user who has not added anything yet gets an empty cart shape, not a 404.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	cart, err := h.cartQueries.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return respondError(c, err)
	}
	if cart == nil {
		return c.JSON(fiber.Map{
			"user_id":      userID,
			"items":        []interface{}{},
			"total_amount": nil,
		})
	}
	return c.JSON(cart)
}

// AddItemRequest represents the request body for adding a cart item.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// HandleAddItem adds a product to the cart, merging quantities when the
// product is already present.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	cartID, err := h.cartService.AddItem(userID, req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding item to cart for user %s: %v", userID, err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Item added to cart",
		"cart_id": cartID,
	})
}

// HandleRemoveItem removes a line from the cart. Unknown item ids are a
// no-op, matching the domain semantics.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.cartService.RemoveItem(userID, itemID); err != nil {
		log.Printf("Error removing item %s from cart for user %s: %v", itemID, userID, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}
