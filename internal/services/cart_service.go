package services

import (
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// CartService handles cart mutations. Each call is one transaction.
type CartService struct {
	uow repositories.UnitOfWork
}

// NewCartService creates a new CartService.
func NewCartService(uow repositories.UnitOfWork) *CartService {
	return &CartService{
		uow: uow,
	}
}

// AddItem adds quantity units of a product to the user's cart, creating the
// cart lazily on first use. Adding a product already in the cart merges the
// quantities. Returns the cart id.
func (s *CartService) AddItem(userID, productID string, quantity int) (string, error) {
	if quantity <= 0 {
		return "", &models.ValidationError{Message: "quantity must be positive"}
	}

	var cartID string
	err := s.uow.Do(func(repos repositories.RepositoryProvider) error {
		product, err := repos.Products().FindByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return &models.ProductNotFoundError{ProductID: productID}
		}

		cart, err := repos.Carts().FindByUserID(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			cart = models.NewCart(userID)
		}

		if err := cart.AddItem(productID, quantity); err != nil {
			return err
		}

		cartID = cart.ID
		return repos.Carts().Save(cart)
	})
	if err != nil {
		return "", err
	}
	return cartID, nil
}

// RemoveItem drops a line from the user's cart. A missing cart or an unknown
// item id is a no-op.
func (s *CartService) RemoveItem(userID, itemID string) error {
	return s.uow.Do(func(repos repositories.RepositoryProvider) error {
		cart, err := repos.Carts().FindByUserID(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return nil
		}

		cart.RemoveItem(itemID)
		return repos.Carts().Save(cart)
	})
}
