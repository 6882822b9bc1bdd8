package queries

import (
	"errors"
	"fmt"
	"time"

	"pasar/internal/models"
	"pasar/internal/search"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductQueries serves the catalog read paths: paginated listing, full-text
// search and single-product lookup.
type ProductQueries struct {
	db       *gorm.DB
	searcher search.ProductSearcher
}

// NewProductQueries creates a query service over the given database and
// searcher.
func NewProductQueries(db *gorm.DB, searcher search.ProductSearcher) *ProductQueries {
	return &ProductQueries{
		db:       db,
		searcher: searcher,
	}
}

type productRow struct {
	ID            string
	Name          string
	Description   string
	PriceAmount   decimal.Decimal
	PriceCurrency string
	Stock         int
	CategoryID    string
	CategoryName  string
	CreatedAt     time.Time
}

func (r productRow) toReadModel() ProductReadModel {
	return ProductReadModel{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        models.Money{Amount: r.PriceAmount, Currency: r.PriceCurrency},
		Stock:        r.Stock,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		CreatedAt:    r.CreatedAt,
	}
}

const productSelect = "products.id, products.name, products.description, " +
	"products.price_amount, products.price_currency, products.stock, " +
	"products.category_id, products.created_at, categories.name AS category_name"

// ListProducts returns one page of products, newest first, optionally
// filtered by category.
func (q *ProductQueries) ListProducts(pagination models.Pagination, categoryID *string) (PaginatedResult[ProductReadModel], error) {
	countQuery := q.db.Model(&models.Product{})
	listQuery := q.db.Model(&models.Product{})
	if categoryID != nil {
		countQuery = countQuery.Where("products.category_id = ?", *categoryID)
		listQuery = listQuery.Where("products.category_id = ?", *categoryID)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return PaginatedResult[ProductReadModel]{}, fmt.Errorf("failed to count products: %w", err)
	}

	var rows []productRow
	err := listQuery.Select(productSelect).
		Joins("JOIN categories ON categories.id = products.category_id").
		Order("products.created_at DESC").
		Limit(pagination.Limit()).
		Offset(pagination.Offset()).
		Scan(&rows).Error
	if err != nil {
		return PaginatedResult[ProductReadModel]{}, fmt.Errorf("failed to list products: %w", err)
	}

	items := make([]ProductReadModel, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toReadModel())
	}
	return newPaginatedResult(items, total, pagination), nil
}

// SearchProducts runs the full-text search and projects the matches with
// their category names. Ranking comes entirely from the searcher.
func (q *ProductQueries) SearchProducts(query string, pagination models.Pagination) (PaginatedResult[ProductReadModel], error) {
	products, total, err := q.searcher.SearchProducts(query, pagination)
	if err != nil {
		return PaginatedResult[ProductReadModel]{}, err
	}

	items := make([]ProductReadModel, 0, len(products))
	for _, product := range products {
		var category models.Category
		if err := q.db.First(&category, "id = ?", product.CategoryID).Error; err != nil {
			return PaginatedResult[ProductReadModel]{}, fmt.Errorf("failed to load category for product %s: %w", product.ID, err)
		}
		items = append(items, ProductReadModel{
			ID:           product.ID,
			Name:         product.Name,
			Description:  product.Description,
			Price:        product.Price,
			Stock:        product.Stock,
			CategoryID:   product.CategoryID,
			CategoryName: category.Name,
			CreatedAt:    product.CreatedAt,
		})
	}
	return newPaginatedResult(items, total, pagination), nil
}

// GetProduct returns a single product projection, or nil if absent.
func (q *ProductQueries) GetProduct(productID string) (*ProductReadModel, error) {
	var row productRow
	err := q.db.Model(&models.Product{}).
		Select(productSelect).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.id = ?", productID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}

	readModel := row.toReadModel()
	return &readModel, nil
}
