package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts. It uses exact decimal
// arithmetic and is normalized to 2 decimal places on construction, so
// summing order lines never drifts the way binary floats do.
type Money struct {
	Amount   decimal.Decimal `json:"amount" gorm:"type:decimal(16,2)"`
	Currency string          `json:"currency" gorm:"type:varchar(3)"`
}

// NewMoney creates a Money value. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, &InvalidMoneyError{Reason: amount.String()}
	}
	return Money{Amount: amount.Round(2), Currency: currency}, nil
}

// NewMoneyFromString parses a decimal string like "15.00" into Money.
func NewMoneyFromString(amount string, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, &InvalidMoneyError{Reason: amount}
	}
	return NewMoney(d, currency)
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{Amount: decimal.Zero.Round(2), Currency: currency}
}

// Add returns the sum of two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, &InvalidMoneyError{Reason: "cannot add different currencies"}
	}
	return NewMoney(m.Amount.Add(other.Amount), m.Currency)
}

// Sub returns the difference of two amounts of the same currency. A negative
// result is rejected.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, &InvalidMoneyError{Reason: "cannot subtract different currencies"}
	}
	result := m.Amount.Sub(other.Amount)
	if result.IsNegative() {
		return Money{}, &InvalidMoneyError{Reason: result.String()}
	}
	return NewMoney(result, m.Currency)
}

// Mul scales the amount by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
		Currency: m.Currency,
	}
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}
