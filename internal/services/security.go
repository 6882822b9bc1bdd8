package services

import (
	"time"

	"pasar/internal/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements PasswordHasher with bcrypt at the default cost.
type BcryptHasher struct{}

// NewBcryptHasher creates a BcryptHasher.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

// HashPassword hashes a plaintext password.
func (h *BcryptHasher) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext matches the hash.
func (h *BcryptHasher) VerifyPassword(plainPassword, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword)) == nil
}

// JWTTokenService implements TokenService with HS256 JWTs.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenService creates a token service with the given signing secret
// and token lifetime.
func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// CreateAccessToken issues a signed token with the subject and expiry claims.
func (s *JWTTokenService) CreateAccessToken(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
	})
	return token.SignedString(s.secret)
}

// DecodeToken parses and verifies a token, returning its claims. Expired
// tokens map to ExpiredTokenError, anything else unverifiable to
// InvalidTokenError.
func (s *JWTTokenService) DecodeToken(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &models.InvalidTokenError{}
		}
		return s.secret, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, &models.ExpiredTokenError{}
		}
		return nil, &models.InvalidTokenError{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, &models.InvalidTokenError{}
	}
	return claims, nil
}

// GetSubject extracts the subject claim from a token.
func (s *JWTTokenService) GetSubject(tokenString string) (string, error) {
	claims, err := s.DecodeToken(tokenString)
	if err != nil {
		return "", err
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", &models.InvalidTokenError{}
	}
	return subject, nil
}
