package queries

import (
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
)

// CategoryQueries serves the category read paths.
type CategoryQueries struct {
	db *gorm.DB
}

// NewCategoryQueries creates a query service over the given database.
func NewCategoryQueries(db *gorm.DB) *CategoryQueries {
	return &CategoryQueries{db: db}
}

// ListCategories returns all categories ordered by name.
func (q *CategoryQueries) ListCategories() ([]CategoryReadModel, error) {
	var categories []models.Category
	if err := q.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	items := make([]CategoryReadModel, 0, len(categories))
	for _, category := range categories {
		items = append(items, CategoryReadModel{
			ID:       category.ID,
			Name:     category.Name,
			Slug:     category.Slug,
			ParentID: category.ParentID,
		})
	}
	return items, nil
}
