package services_test

import (
	"testing"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartFixture() (*services.CartService, *repositories.MockRepositoryProvider) {
	provider := repositories.NewMockRepositoryProvider()
	uow := repositories.NewMockUnitOfWork(provider)
	return services.NewCartService(uow), provider
}

func TestCartService_AddItem(t *testing.T) {
	cartService, provider := newCartFixture()
	laptop := seedProduct(t, provider, "Laptop", "15.00", 5)

	// First add creates the cart lazily
	cartID, err := cartService.AddItem("user-1", laptop.ID, 2)
	assert.NoError(t, err)
	assert.NotEmpty(t, cartID)

	cart, err := provider.CartRepo.FindByUserID("user-1")
	assert.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	// Adding the same product again merges into the same cart
	sameCartID, err := cartService.AddItem("user-1", laptop.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, cartID, sameCartID)

	cart, err = provider.CartRepo.FindByUserID("user-1")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Unknown product
	_, err = cartService.AddItem("user-1", "no-such-product", 1)
	assert.Error(t, err)
	var notFound *models.ProductNotFoundError
	assert.ErrorAs(t, err, &notFound)

	// Non-positive quantity
	_, err = cartService.AddItem("user-1", laptop.ID, 0)
	assert.Error(t, err)
	_, err = cartService.AddItem("user-1", laptop.ID, -1)
	assert.Error(t, err)
}

func TestCartService_RemoveItem(t *testing.T) {
	cartService, provider := newCartFixture()
	laptop := seedProduct(t, provider, "Laptop", "15.00", 5)

	_, err := cartService.AddItem("user-1", laptop.ID, 2)
	assert.NoError(t, err)
	cart, err := provider.CartRepo.FindByUserID("user-1")
	assert.NoError(t, err)
	itemID := cart.Items[0].ID

	err = cartService.RemoveItem("user-1", itemID)
	assert.NoError(t, err)

	cart, err = provider.CartRepo.FindByUserID("user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Unknown item id is a no-op
	err = cartService.RemoveItem("user-1", "no-such-item")
	assert.NoError(t, err)

	// Missing cart is a no-op too
	err = cartService.RemoveItem("user-without-cart", itemID)
	assert.NoError(t, err)
}
