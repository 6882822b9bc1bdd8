package handlers

import (
	"log"

	"pasar/internal/models"
	"pasar/internal/queries"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog: products, search and
// categories.
type ProductHandler struct {
	catalogService  *services.CatalogService
	productQueries  *queries.ProductQueries
	categoryQueries *queries.CategoryQueries
	validate        *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(
	catalogService *services.CatalogService,
	productQueries *queries.ProductQueries,
	categoryQueries *queries.CategoryQueries,
) *ProductHandler {
	return &ProductHandler{
		catalogService:  catalogService,
		productQueries:  productQueries,
		categoryQueries: categoryQueries,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)

	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleListCategories)
	categoryRoutes.Post("/", h.HandleCreateCategory)
}

// parsePagination reads page/page_size query parameters with defaults.
func parsePagination(c *fiber.Ctx) (models.Pagination, error) {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	return models.NewPagination(page, pageSize)
}

// HandleListProducts returns one page of products, optionally filtered by
// category.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	pagination, err := parsePagination(c)
	if err != nil {
		return respondError(c, err)
	}

	var categoryID *string
	if id := c.Query("category_id"); id != "" {
		categoryID = &id
	}

	result, err := h.productQueries.ListProducts(pagination, categoryID)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return respondError(c, err)
	}
	return c.JSON(result)
}

// HandleSearchProducts runs full-text search over the catalog.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'q' is required",
		})
	}

	pagination, err := parsePagination(c)
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.productQueries.SearchProducts(query, pagination)
	if err != nil {
		log.Printf("Error searching products for %q: %v", query, err)
		return respondError(c, err)
	}
	return c.JSON(result)
}

// HandleGetProduct returns a single product.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.productQueries.GetProduct(productID)
	if err != nil {
		log.Printf("Error getting product %s: %v", productID, err)
		return respondError(c, err)
	}
	if product == nil {
		return respondError(c, &models.ProductNotFoundError{ProductID: productID})
	}
	return c.JSON(product)
}

// CreateProductRequest represents the request body for creating a product.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Price       string `json:"price" validate:"required"`
	Currency    string `json:"currency"`
	Stock       int    `json:"stock" validate:"gte=0"`
	CategoryID  string `json:"category_id" validate:"required"`
}

// HandleCreateProduct adds a product to the catalog.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
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

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	price, err := models.NewMoneyFromString(req.Price, currency)
	if err != nil {
		return respondError(c, err)
	}

	productID, err := h.catalogService.CreateProduct(req.Name, req.Description, price, req.Stock, req.CategoryID)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Product created",
		"product_id": productID,
	})
}

// HandleListCategories returns all categories ordered by name.
func (h *ProductHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.categoryQueries.ListCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Slug     string  `json:"slug" validate:"required,min=2,max=100"`
	ParentID *string `json:"parent_id"`
}

// HandleCreateCategory adds a category.
func (h *ProductHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
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

	categoryID, err := h.catalogService.CreateCategory(req.Name, req.Slug, req.ParentID)
	if err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Category created",
		"category_id": categoryID,
	})
}
