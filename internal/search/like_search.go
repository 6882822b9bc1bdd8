package search

import (
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
)

// LikeProductSearcher is a portable ProductSearcher fallback using LIKE
// matching on name and description. It has no ranking; results come back in
// creation order. Used with SQLite, where tsvector is unavailable.
type LikeProductSearcher struct {
	db *gorm.DB
}

// NewLikeProductSearcher creates a LIKE-based searcher over the given database.
func NewLikeProductSearcher(db *gorm.DB) *LikeProductSearcher {
	return &LikeProductSearcher{db: db}
}

// SearchProducts returns one page of substring matches plus the total count.
func (s *LikeProductSearcher) SearchProducts(query string, pagination models.Pagination) ([]models.Product, int64, error) {
	pattern := "%" + query + "%"
	condition := "name LIKE ? OR description LIKE ?"

	var total int64
	err := s.db.Model(&models.Product{}).
		Where(condition, pattern, pattern).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count search matches: %w", err)
	}

	var products []models.Product
	err = s.db.Model(&models.Product{}).
		Where(condition, pattern, pattern).
		Order("created_at DESC").
		Limit(pagination.Limit()).
		Offset(pagination.Offset()).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}

	return products, total, nil
}
