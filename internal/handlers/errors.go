package handlers

import (
	"errors"

	"pasar/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps domain errors onto HTTP responses. Domain-rule and
// validation failures surface with their message; anything unexpected becomes
// a generic server fault so persistence details never leak.
func respondError(c *fiber.Ctx, err error) error {
	var (
		invalidEmail    *models.InvalidEmailError
		invalidPassword *models.InvalidPasswordError
		invalidMoney    *models.InvalidMoneyError
		validation      *models.ValidationError
		insufficient    *models.InsufficientStockError
		credentials     *models.InvalidCredentialsError
		invalidToken    *models.InvalidTokenError
		expiredToken    *models.ExpiredTokenError
		userExists      *models.UserAlreadyExistsError
		userNotFound    *models.UserNotFoundError
		productNotFound *models.ProductNotFoundError
		catNotFound     *models.CategoryNotFoundError
	)

	switch {
	case errors.As(err, &invalidEmail),
		errors.As(err, &invalidPassword),
		errors.As(err, &invalidMoney),
		errors.As(err, &validation),
		errors.As(err, &expiredToken),
		errors.Is(err, models.ErrCartEmpty):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":    err.Error(),
			"product_id": insufficient.ProductID,
			"requested":  insufficient.Requested,
			"available":  insufficient.Available,
		})
	case errors.As(err, &credentials), errors.As(err, &invalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.As(err, &userNotFound),
		errors.As(err, &productNotFound),
		errors.As(err, &catNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.As(err, &userExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "internal server error",
		})
	}
}
