package models_test

import (
	"strings"
	"testing"

	"pasar/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNewEmail(t *testing.T) {
	// Valid addresses
	for _, addr := range []string{
		"user@example.com",
		"first.last+tag@sub.domain.co",
		"UPPER_case%ok@example.org",
	} {
		email, err := models.NewEmail(addr)
		assert.NoError(t, err, addr)
		assert.Equal(t, addr, email.String())
	}

	// Invalid addresses
	for _, addr := range []string{
		"",
		"plainaddress",
		"missing@tld",
		"@example.com",
		"user@.com",
		"user@example.com" + strings.Repeat("m", 254),
	} {
		_, err := models.NewEmail(addr)
		assert.Error(t, err, addr)
		var invalidEmail *models.InvalidEmailError
		assert.ErrorAs(t, err, &invalidEmail)
	}
}

func TestNewPassword(t *testing.T) {
	// Strong password passes
	p, err := models.NewPassword("Str0ng!pass")
	assert.NoError(t, err)
	assert.Equal(t, "Str0ng!pass", p.Value())
	// String() never leaks the clear value
	assert.Equal(t, "***", p.String())

	// Each missing requirement fails
	cases := map[string]string{
		"too short":       "S1!a",
		"no uppercase":    "weak1pass!",
		"no lowercase":    "WEAK1PASS!",
		"no digit":        "Weakpass!",
		"no special char": "Weak1pass",
	}
	for name, value := range cases {
		_, err := models.NewPassword(value)
		assert.Error(t, err, name)
		var invalidPassword *models.InvalidPasswordError
		assert.ErrorAs(t, err, &invalidPassword, name)
	}
}

func TestNewPagination(t *testing.T) {
	p, err := models.NewPagination(3, 10)
	assert.NoError(t, err)
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 10, p.Limit())

	// First page starts at offset zero
	p, err = models.NewPagination(1, 100)
	assert.NoError(t, err)
	assert.Equal(t, 0, p.Offset())

	// Out-of-bounds values are rejected
	_, err = models.NewPagination(0, 10)
	assert.Error(t, err)
	_, err = models.NewPagination(1, 0)
	assert.Error(t, err)
	_, err = models.NewPagination(1, 101)
	assert.Error(t, err)
}
