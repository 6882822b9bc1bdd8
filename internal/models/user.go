package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the store. The password is only ever
// stored as a hash; hashing itself is delegated to the services layer.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	Username     string    `json:"username" gorm:"type:varchar(100)"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates a user with a fresh id. Users are never hard-deleted;
// deactivation flips IsActive instead.
func NewUser(email Email, passwordHash, username string) *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        email.String(),
		PasswordHash: passwordHash,
		Username:     username,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}
