package services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

const resetTokenTTL = time.Hour

// AuthService handles registration, login and the password-reset workflows.
type AuthService struct {
	uow    repositories.UnitOfWork
	hasher PasswordHasher
	tokens TokenService
	mailer EmailGateway
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	uow repositories.UnitOfWork,
	hasher PasswordHasher,
	tokens TokenService,
	mailer EmailGateway,
) *AuthService {
	return &AuthService{
		uow:    uow,
		hasher: hasher,
		tokens: tokens,
		mailer: mailer,
	}
}

// Register creates a new user and returns its id. The registration email goes
// out after the transaction commits; a delivery failure does not undo the
// registration.
func (s *AuthService) Register(emailAddr, plainPassword, username string) (string, error) {
	email, err := models.NewEmail(emailAddr)
	if err != nil {
		return "", err
	}
	password, err := models.NewPassword(plainPassword)
	if err != nil {
		return "", err
	}

	passwordHash, err := s.hasher.HashPassword(password.Value())
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	var user *models.User
	err = s.uow.Do(func(repos repositories.RepositoryProvider) error {
		exists, err := repos.Users().ExistsByEmail(email)
		if err != nil {
			return err
		}
		if exists {
			return &models.UserAlreadyExistsError{Email: email.String()}
		}

		user = models.NewUser(email, passwordHash, username)
		return repos.Users().Save(user)
	})
	if err != nil {
		return "", err
	}

	if err := s.mailer.SendRegistrationEmail(email.String(), username); err != nil {
		log.Printf("Warning: failed to send registration email to %s: %v", email, err)
	}

	return user.ID, nil
}

// Login authenticates a user and returns an access token. Unknown email,
// wrong password and inactive account all fail identically.
func (s *AuthService) Login(emailAddr, plainPassword string) (string, error) {
	email, err := models.NewEmail(emailAddr)
	if err != nil {
		return "", &models.InvalidCredentialsError{}
	}

	var user *models.User
	err = s.uow.Do(func(repos repositories.RepositoryProvider) error {
		user, err = repos.Users().FindByEmail(email)
		return err
	})
	if err != nil {
		return "", err
	}

	if user == nil {
		return "", &models.InvalidCredentialsError{}
	}
	if !s.hasher.VerifyPassword(plainPassword, user.PasswordHash) {
		return "", &models.InvalidCredentialsError{}
	}
	if !user.IsActive {
		return "", &models.InvalidCredentialsError{}
	}

	return s.tokens.CreateAccessToken(user.ID)
}

// RequestPasswordReset issues a single-use reset token valid for one hour and
// emails the reset link. An unknown email is a silent no-op so the endpoint
// does not reveal which addresses are registered.
func (s *AuthService) RequestPasswordReset(emailAddr string) error {
	email, err := models.NewEmail(emailAddr)
	if err != nil {
		return err
	}

	var user *models.User
	var tokenStr string
	err = s.uow.Do(func(repos repositories.RepositoryProvider) error {
		user, err = repos.Users().FindByEmail(email)
		if err != nil {
			return err
		}
		if user == nil {
			return nil
		}

		tokenStr, err = generateResetToken()
		if err != nil {
			return err
		}

		token := models.NewPasswordResetToken(
			user.ID,
			tokenStr,
			time.Now().UTC().Add(resetTokenTTL),
		)
		return repos.ResetTokens().Save(token)
	})
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	if err := s.mailer.SendPasswordResetEmail(email.String(), user.Username, tokenStr); err != nil {
		log.Printf("Warning: failed to send password reset email to %s: %v", email, err)
	}
	return nil
}

// ResetPassword burns the token and rehashes the new password onto the user,
// both in one transaction. An absent, used or expired token fails with
// ExpiredTokenError.
func (s *AuthService) ResetPassword(tokenStr, newPassword string) error {
	password, err := models.NewPassword(newPassword)
	if err != nil {
		return err
	}

	passwordHash, err := s.hasher.HashPassword(password.Value())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.uow.Do(func(repos repositories.RepositoryProvider) error {
		token, err := repos.ResetTokens().FindByToken(tokenStr)
		if err != nil {
			return err
		}
		if token == nil || token.Used || token.IsExpired() {
			return &models.ExpiredTokenError{}
		}

		user, err := repos.Users().FindByID(token.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return &models.UserNotFoundError{Identifier: token.UserID}
		}

		user.PasswordHash = passwordHash
		token.MarkAsUsed()

		if err := repos.Users().Save(user); err != nil {
			return err
		}
		return repos.ResetTokens().Save(token)
	})
}

// generateResetToken returns 32 bytes of cryptographic randomness in URL-safe
// base64.
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
