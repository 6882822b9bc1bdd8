package models_test

import (
	"testing"
	"time"

	"pasar/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestProductDecreaseStock(t *testing.T) {
	price, _ := models.NewMoneyFromString("25.00", "USD")
	product := models.NewProduct("Laptop", "A laptop", price, 10, "category-1")

	err := product.DecreaseStock(4)
	assert.NoError(t, err)
	assert.Equal(t, 6, product.Stock)

	// Draining to exactly zero is allowed
	err = product.DecreaseStock(6)
	assert.NoError(t, err)
	assert.Equal(t, 0, product.Stock)

	// Over-draining fails and leaves stock untouched
	err = product.DecreaseStock(1)
	assert.Error(t, err)
	var insufficient *models.InsufficientStockError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, product.ID, insufficient.ProductID)
	assert.Equal(t, 1, insufficient.Requested)
	assert.Equal(t, 0, insufficient.Available)
	assert.Equal(t, 0, product.Stock)
}

func TestProductIncreaseStock(t *testing.T) {
	price, _ := models.NewMoneyFromString("25.00", "USD")
	product := models.NewProduct("Laptop", "A laptop", price, 3, "category-1")

	product.IncreaseStock(7)
	assert.Equal(t, 10, product.Stock)
}

func TestPasswordResetToken(t *testing.T) {
	token := models.NewPasswordResetToken("user-1", "opaque-token", time.Now().UTC().Add(time.Hour))
	assert.NotEmpty(t, token.ID)
	assert.False(t, token.Used)
	assert.False(t, token.IsExpired())

	token.MarkAsUsed()
	assert.True(t, token.Used)

	expired := models.NewPasswordResetToken("user-1", "old-token", time.Now().UTC().Add(-time.Minute))
	assert.True(t, expired.IsExpired())
}
