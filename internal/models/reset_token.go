package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetToken is a single-use token for the password-reset flow. It is
// valid until its expiry or its first use, whichever comes first.
type PasswordResetToken struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index"`
	Token     string    `json:"-" gorm:"uniqueIndex;type:varchar(64)"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPasswordResetToken creates a reset token for a user.
func NewPasswordResetToken(userID, token string, expiresAt time.Time) *PasswordResetToken {
	return &PasswordResetToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
}

// IsExpired reports whether the token is past its expiry.
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().UTC().After(t.ExpiresAt)
}

// MarkAsUsed burns the token.
func (t *PasswordResetToken) MarkAsUsed() {
	t.Used = true
}
