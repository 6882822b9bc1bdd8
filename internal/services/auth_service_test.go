package services_test

import (
	"log"
	"os"
	"testing"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEmailGateway is a mock implementation of services.EmailGateway
type MockEmailGateway struct {
	mock.Mock
}

func (m *MockEmailGateway) SendRegistrationEmail(to, username string) error {
	args := m.Called(to, username)
	return args.Error(0)
}

func (m *MockEmailGateway) SendPasswordResetEmail(to, username, resetToken string) error {
	args := m.Called(to, username, resetToken)
	return args.Error(0)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func newAuthFixture() (*services.AuthService, *repositories.MockRepositoryProvider, *MockEmailGateway, services.TokenService) {
	provider := repositories.NewMockRepositoryProvider()
	uow := repositories.NewMockUnitOfWork(provider)
	hasher := services.NewBcryptHasher()
	tokens := services.NewJWTTokenService("test_jwt_secret", time.Hour)
	mailer := new(MockEmailGateway)
	return services.NewAuthService(uow, hasher, tokens, mailer), provider, mailer, tokens
}

func TestAuthService_Register(t *testing.T) {
	authService, provider, mailer, _ := newAuthFixture()

	// Test successful registration
	mailer.On("SendRegistrationEmail", "test@example.com", "testuser").Return(nil).Once()
	userID, err := authService.Register("test@example.com", "Sup3r!secret", "testuser")
	assert.NoError(t, err)
	assert.NotEmpty(t, userID)
	mailer.AssertExpectations(t)

	saved, err := provider.UserRepo.FindByID(userID)
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, "test@example.com", saved.Email)
	assert.True(t, saved.IsActive)
	// The plaintext password never lands in storage
	assert.NotEqual(t, "Sup3r!secret", saved.PasswordHash)
	assert.NotEmpty(t, saved.PasswordHash)

	// Test duplicate email
	_, err = authService.Register("test@example.com", "Sup3r!secret", "otheruser")
	assert.Error(t, err)
	var alreadyExists *models.UserAlreadyExistsError
	assert.ErrorAs(t, err, &alreadyExists)
	assert.Equal(t, "test@example.com", alreadyExists.Email)

	// Test invalid email format
	_, err = authService.Register("not-an-email", "Sup3r!secret", "testuser")
	assert.Error(t, err)
	var invalidEmail *models.InvalidEmailError
	assert.ErrorAs(t, err, &invalidEmail)

	// Test weak password
	_, err = authService.Register("weak@example.com", "weakpass", "testuser")
	assert.Error(t, err)
	var invalidPassword *models.InvalidPasswordError
	assert.ErrorAs(t, err, &invalidPassword)
}

func TestAuthService_Login(t *testing.T) {
	authService, provider, mailer, tokens := newAuthFixture()

	mailer.On("SendRegistrationEmail", mock.Anything, mock.Anything).Return(nil)
	userID, err := authService.Register("login@example.com", "Sup3r!secret", "loginuser")
	assert.NoError(t, err)

	// Test successful login
	token, err := authService.Login("login@example.com", "Sup3r!secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// The token subject is the user id
	subject, err := tokens.GetSubject(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, subject)

	// Test wrong password
	_, err = authService.Login("login@example.com", "Wr0ng!secret")
	assert.Error(t, err)
	var invalidCreds *models.InvalidCredentialsError
	assert.ErrorAs(t, err, &invalidCreds)

	// Test unknown email: same error as wrong password
	_, err = authService.Login("nobody@example.com", "Sup3r!secret")
	assert.Error(t, err)
	assert.ErrorAs(t, err, &invalidCreds)

	// Test malformed email: still the generic credentials error
	_, err = authService.Login("not-an-email", "Sup3r!secret")
	assert.Error(t, err)
	assert.ErrorAs(t, err, &invalidCreds)

	// Test deactivated account
	user, err := provider.UserRepo.FindByID(userID)
	assert.NoError(t, err)
	user.IsActive = false
	assert.NoError(t, provider.UserRepo.Save(user))

	_, err = authService.Login("login@example.com", "Sup3r!secret")
	assert.Error(t, err)
	assert.ErrorAs(t, err, &invalidCreds)
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	authService, _, mailer, _ := newAuthFixture()

	mailer.On("SendRegistrationEmail", mock.Anything, mock.Anything).Return(nil)
	_, err := authService.Register("reset@example.com", "Sup3r!secret", "resetuser")
	assert.NoError(t, err)

	// Request a reset and capture the token handed to the mailer
	var resetToken string
	mailer.On("SendPasswordResetEmail", "reset@example.com", "resetuser", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { resetToken = args.String(2) }).
		Return(nil).Once()

	err = authService.RequestPasswordReset("reset@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, resetToken)
	mailer.AssertExpectations(t)

	// Reset the password with the token
	err = authService.ResetPassword(resetToken, "N3w!secret")
	assert.NoError(t, err)

	// Old password no longer works, new one does
	_, err = authService.Login("reset@example.com", "Sup3r!secret")
	assert.Error(t, err)
	token, err := authService.Login("reset@example.com", "N3w!secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// The token is single use
	err = authService.ResetPassword(resetToken, "An0ther!secret")
	assert.Error(t, err)
	var expiredToken *models.ExpiredTokenError
	assert.ErrorAs(t, err, &expiredToken)

	// An unknown token fails the same way
	err = authService.ResetPassword("no-such-token", "An0ther!secret")
	assert.Error(t, err)
	assert.ErrorAs(t, err, &expiredToken)
}

func TestAuthService_RequestPasswordResetUnknownEmail(t *testing.T) {
	authService, provider, mailer, _ := newAuthFixture()

	// Unknown email is a silent no-op: no error, no email, no token
	err := authService.RequestPasswordReset("ghost@example.com")
	assert.NoError(t, err)
	mailer.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything, mock.Anything)

	stored, err := provider.TokenRepo.FindByToken("")
	assert.NoError(t, err)
	assert.Nil(t, stored)
}

func TestJWTTokenService(t *testing.T) {
	tokens := services.NewJWTTokenService("test_jwt_secret", time.Hour)

	token, err := tokens.CreateAccessToken("user-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["sub"])

	subject, err := tokens.GetSubject(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", subject)

	// Garbage token
	_, err = tokens.DecodeToken("invalid.token.string")
	assert.Error(t, err)
	var invalidToken *models.InvalidTokenError
	assert.ErrorAs(t, err, &invalidToken)

	// Expired token
	expiring := services.NewJWTTokenService("test_jwt_secret", -time.Hour)
	expiredString, err := expiring.CreateAccessToken("user-123")
	assert.NoError(t, err)
	_, err = tokens.DecodeToken(expiredString)
	assert.Error(t, err)
	var expiredToken *models.ExpiredTokenError
	assert.ErrorAs(t, err, &expiredToken)

	// Wrong secret
	other := services.NewJWTTokenService("other_secret", time.Hour)
	otherString, err := other.CreateAccessToken("user-123")
	assert.NoError(t, err)
	_, err = tokens.DecodeToken(otherString)
	assert.Error(t, err)
}
