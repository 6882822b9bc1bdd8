package services

import (
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// CatalogService handles catalog writes: creating categories and products.
// Reads go through the queries package instead.
type CatalogService struct {
	uow repositories.UnitOfWork
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(uow repositories.UnitOfWork) *CatalogService {
	return &CatalogService{
		uow: uow,
	}
}

// CreateCategory creates a category and returns its id. Slugs are unique;
// the parent, when given, must exist.
func (s *CatalogService) CreateCategory(name, slug string, parentID *string) (string, error) {
	var categoryID string
	err := s.uow.Do(func(repos repositories.RepositoryProvider) error {
		existing, err := repos.Categories().FindBySlug(slug)
		if err != nil {
			return err
		}
		if existing != nil {
			return &models.ValidationError{Message: "category slug already in use: " + slug}
		}

		if parentID != nil {
			parent, err := repos.Categories().FindByID(*parentID)
			if err != nil {
				return err
			}
			if parent == nil {
				return &models.CategoryNotFoundError{CategoryID: *parentID}
			}
		}

		category := models.NewCategory(name, slug, parentID)
		categoryID = category.ID
		return repos.Categories().Save(category)
	})
	if err != nil {
		return "", err
	}
	return categoryID, nil
}

// CreateProduct creates a product in an existing category and returns its id.
func (s *CatalogService) CreateProduct(name, description string, price models.Money, stock int, categoryID string) (string, error) {
	if stock < 0 {
		return "", &models.ValidationError{Message: "stock must be >= 0"}
	}

	var productID string
	err := s.uow.Do(func(repos repositories.RepositoryProvider) error {
		category, err := repos.Categories().FindByID(categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return &models.CategoryNotFoundError{CategoryID: categoryID}
		}

		product := models.NewProduct(name, description, price, stock, categoryID)
		productID = product.ID
		return repos.Products().Save(product)
	})
	if err != nil {
		return "", err
	}
	return productID, nil
}
