package models

import (
	"errors"
	"fmt"
)

// ErrCartEmpty is returned when an order is placed from an absent or empty cart.
var ErrCartEmpty = errors.New("cart is empty")

// InvalidEmailError indicates a malformed email address.
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email format: %s", e.Email)
}

// InvalidPasswordError indicates a password that fails the strength rules.
type InvalidPasswordError struct {
	Reason string
}

func (e *InvalidPasswordError) Error() string {
	return fmt.Sprintf("invalid password: %s", e.Reason)
}

// InvalidMoneyError indicates an invalid monetary value or operation.
type InvalidMoneyError struct {
	Reason string
}

func (e *InvalidMoneyError) Error() string {
	return fmt.Sprintf("invalid money value: %s", e.Reason)
}

// ValidationError indicates a violated domain rule that carries no extra
// context beyond its message (pagination bounds, quantities, illegal status
// transitions).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UserNotFoundError indicates a missing user.
type UserNotFoundError struct {
	Identifier string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user not found: %s", e.Identifier)
}

// ProductNotFoundError indicates a missing product.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

// CategoryNotFoundError indicates a missing category.
type CategoryNotFoundError struct {
	CategoryID string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category not found: %s", e.CategoryID)
}

// InsufficientStockError indicates a stock decrement that exceeds the
// available quantity. It carries the identifying context so callers can
// report which product failed and by how much.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available,
	)
}

// InvalidCredentialsError is deliberately uniform: it is returned whether the
// user is unknown, the password is wrong, or the account is inactive.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid credentials"
}

// UserAlreadyExistsError indicates a registration attempt with a taken email.
type UserAlreadyExistsError struct {
	Email string
}

func (e *UserAlreadyExistsError) Error() string {
	return fmt.Sprintf("user already exists: %s", e.Email)
}

// InvalidTokenError indicates a malformed or unverifiable token.
type InvalidTokenError struct{}

func (e *InvalidTokenError) Error() string {
	return "invalid token"
}

// ExpiredTokenError indicates a token that is absent, already used, or past
// its expiry.
type ExpiredTokenError struct{}

func (e *ExpiredTokenError) Error() string {
	return "token has expired"
}
