package models_test

import (
	"testing"

	"pasar/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCartAddItem(t *testing.T) {
	cart := models.NewCart("user-1")
	assert.NotEmpty(t, cart.ID)
	assert.Empty(t, cart.Items)

	// First add appends a line
	err := cart.AddItem("product-1", 2)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, cart.ID, cart.Items[0].CartID)

	// Adding the same product merges quantities instead of appending
	err = cart.AddItem("product-1", 3)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// A different product gets its own line, after the first
	err = cart.AddItem("product-2", 1)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "product-1", cart.Items[0].ProductID)
	assert.Equal(t, "product-2", cart.Items[1].ProductID)
}

func TestCartItemUpdateQuantity(t *testing.T) {
	item := models.NewCartItem("cart-1", "product-1", 1)

	err := item.UpdateQuantity(4)
	assert.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)

	// Zero and negative quantities are rejected and leave the item untouched
	err = item.UpdateQuantity(0)
	assert.Error(t, err)
	assert.Equal(t, 4, item.Quantity)

	err = item.UpdateQuantity(-2)
	assert.Error(t, err)
	assert.Equal(t, 4, item.Quantity)
}

func TestCartRemoveItem(t *testing.T) {
	cart := models.NewCart("user-1")
	assert.NoError(t, cart.AddItem("product-1", 1))
	assert.NoError(t, cart.AddItem("product-2", 2))

	itemID := cart.Items[0].ID
	cart.RemoveItem(itemID)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "product-2", cart.Items[0].ProductID)

	// Removing an unknown id is a no-op
	cart.RemoveItem("does-not-exist")
	assert.Len(t, cart.Items, 1)
}

func TestCartClear(t *testing.T) {
	cart := models.NewCart("user-1")
	assert.NoError(t, cart.AddItem("product-1", 1))
	assert.NoError(t, cart.AddItem("product-2", 2))

	cart.Clear()
	assert.Empty(t, cart.Items)
	// The cart itself survives clearing
	assert.NotEmpty(t, cart.ID)
	assert.Equal(t, "user-1", cart.UserID)
}
