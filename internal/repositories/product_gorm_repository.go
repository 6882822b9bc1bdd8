package repositories

import (
	"errors"
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository is a GORM implementation of ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new instance of GormProductRepository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{
		db: db,
	}
}

// FindByID retrieves a product by id, or (nil, nil) if absent.
func (r *GormProductRepository) FindByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// FindByIDForUpdate retrieves a product with SELECT ... FOR UPDATE. Must run
// inside a transaction; the row lock is held until commit or rollback.
// SQLite ignores the clause but its single-writer model is equivalent.
func (r *GormProductRepository) FindByIDForUpdate(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock product %s: %w", id, err)
	}
	return &product, nil
}

// Save inserts or updates a product. Save writes all fields, so a stock of
// zero is persisted correctly.
func (r *GormProductRepository) Save(product *models.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// SaveMany upserts a batch of products in one statement.
func (r *GormProductRepository) SaveMany(products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}
	if err := r.db.Save(&products).Error; err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	return nil
}
