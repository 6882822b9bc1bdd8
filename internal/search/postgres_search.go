package search

import (
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
)

// ProductSearcher executes full-text product search. Matching and ranking are
// delegated entirely to the underlying store; callers only supply the query
// string and pagination.
type ProductSearcher interface {
	SearchProducts(query string, pagination models.Pagination) ([]models.Product, int64, error)
}

// PostgresProductSearcher implements ProductSearcher with PostgreSQL
// full-text search over product name and description.
type PostgresProductSearcher struct {
	db *gorm.DB
}

// NewPostgresProductSearcher creates a searcher over the given database.
func NewPostgresProductSearcher(db *gorm.DB) *PostgresProductSearcher {
	return &PostgresProductSearcher{db: db}
}

// SearchProducts returns one page of matches ordered by ts_rank, plus the
// total match count.
func (s *PostgresProductSearcher) SearchProducts(query string, pagination models.Pagination) ([]models.Product, int64, error) {
	const vector = "to_tsvector('english', name || ' ' || description)"

	var total int64
	countSQL := fmt.Sprintf(
		"SELECT count(*) FROM products WHERE %s @@ plainto_tsquery('english', ?)",
		vector,
	)
	if err := s.db.Raw(countSQL, query).Scan(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search matches: %w", err)
	}

	var products []models.Product
	searchSQL := fmt.Sprintf(
		"SELECT * FROM products WHERE %s @@ plainto_tsquery('english', ?) "+
			"ORDER BY ts_rank(%s, plainto_tsquery('english', ?)) DESC "+
			"LIMIT ? OFFSET ?",
		vector, vector,
	)
	err := s.db.Raw(searchSQL, query, query, pagination.Limit(), pagination.Offset()).
		Scan(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}

	return products, total, nil
}
