package models

import (
	"regexp"
	"strings"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a validated email address.
type Email string

// NewEmail validates the address format and length.
func NewEmail(value string) (Email, error) {
	if value == "" || len(value) > 254 || !emailPattern.MatchString(value) {
		return "", &InvalidEmailError{Email: value}
	}
	return Email(value), nil
}

func (e Email) String() string {
	return string(e)
}

const passwordSpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// Password is a validated plaintext password. It renders opaquely; the clear
// value is only reachable through Value, for hashing.
type Password string

// NewPassword enforces the strength rules: at least 8 characters with upper,
// lower, digit and one special character.
func NewPassword(value string) (Password, error) {
	if !isStrongEnough(value) {
		return "", &InvalidPasswordError{
			Reason: "must be at least 8 characters long and contain " +
				"uppercase, lowercase, digit, and special character",
		}
	}
	return Password(value), nil
}

func isStrongEnough(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, c):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

// Value returns the clear password for hashing.
func (p Password) Value() string {
	return string(p)
}

func (p Password) String() string {
	return "***"
}

// Pagination is a validated page/page-size pair.
type Pagination struct {
	Page     int
	PageSize int
}

// NewPagination validates the bounds: page >= 1, 1 <= page_size <= 100.
func NewPagination(page, pageSize int) (Pagination, error) {
	if page < 1 {
		return Pagination{}, &ValidationError{Message: "page must be >= 1"}
	}
	if pageSize < 1 {
		return Pagination{}, &ValidationError{Message: "page size must be >= 1"}
	}
	if pageSize > 100 {
		return Pagination{}, &ValidationError{Message: "page size must be <= 100"}
	}
	return Pagination{Page: page, PageSize: pageSize}, nil
}

// Offset is the number of rows to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit is the maximum number of rows to return.
func (p Pagination) Limit() int {
	return p.PageSize
}
