package services

// PasswordHasher hashes and verifies passwords. The workflow layer never
// chooses the algorithm.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(plainPassword, hashedPassword string) bool
}

// TokenService issues and validates opaque access tokens.
type TokenService interface {
	CreateAccessToken(subject string) (string, error)
	DecodeToken(token string) (map[string]interface{}, error)
	GetSubject(token string) (string, error)
}

// EmailGateway delivers transactional emails. Calls happen after the
// surrounding business transaction commits; failures are logged, never rolled
// back.
type EmailGateway interface {
	SendRegistrationEmail(to, username string) error
	SendPasswordResetEmail(to, username, resetToken string) error
}

// EventPublisher publishes domain events to a message queue.
type EventPublisher interface {
	Publish(queue string, body []byte) error
}
