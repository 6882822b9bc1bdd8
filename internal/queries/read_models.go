package queries

import (
	"time"

	"pasar/internal/models"
)

// ProductReadModel is a product projected for display, with its category name
// joined in.
type ProductReadModel struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        models.Money `json:"price"`
	Stock        int          `json:"stock"`
	CategoryID   string       `json:"category_id"`
	CategoryName string       `json:"category_name"`
	CreatedAt    time.Time    `json:"created_at"`
}

// CategoryReadModel is a category projected for display.
type CategoryReadModel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parent_id"`
}

// CartItemReadModel is a cart line joined to the live product for display.
// ProductPrice is the current catalog price, not a frozen one.
type CartItemReadModel struct {
	ID           string       `json:"id"`
	ProductID    string       `json:"product_id"`
	ProductName  string       `json:"product_name"`
	ProductPrice models.Money `json:"product_price"`
	Quantity     int          `json:"quantity"`
	TotalPrice   models.Money `json:"total_price"`
}

// CartReadModel is the assembled cart for display.
type CartReadModel struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Items       []CartItemReadModel `json:"items"`
	TotalAmount models.Money        `json:"total_amount"`
}

// OrderItemReadModel is an order line for display, with the price frozen at
// placement time.
type OrderItemReadModel struct {
	ID          string       `json:"id"`
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	Quantity    int          `json:"quantity"`
	UnitPrice   models.Money `json:"unit_price"`
	TotalPrice  models.Money `json:"total_price"`
}

// OrderReadModel is an order for display.
type OrderReadModel struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	Items       []OrderItemReadModel `json:"items"`
	TotalAmount models.Money         `json:"total_amount"`
	Status      models.OrderStatus   `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

// PaginatedResult is one page of read models plus paging metadata.
type PaginatedResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func newPaginatedResult[T any](items []T, total int64, pagination models.Pagination) PaginatedResult[T] {
	pageSize := int64(pagination.PageSize)
	return PaginatedResult[T]{
		Items:      items,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: int((total + pageSize - 1) / pageSize),
	}
}
