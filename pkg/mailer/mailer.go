package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Config holds SMTP connection details.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	BaseURL  string // base URL used to build password-reset links
}

// SMTPMailer sends transactional emails over SMTP.
type SMTPMailer struct {
	cfg Config
}

// NewSMTPMailer creates a mailer with the given configuration.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendRegistrationEmail sends the welcome email after registration.
func (m *SMTPMailer) SendRegistrationEmail(to, username string) error {
	subject := "Welcome to Pasar"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour account has been created. Happy shopping!\n",
		username,
	)
	return m.send(to, subject, body)
}

// SendPasswordResetEmail sends the reset link for a requested password reset.
func (m *SMTPMailer) SendPasswordResetEmail(to, username, resetToken string) error {
	subject := "Password reset request"
	body := fmt.Sprintf(
		"Hi %s,\n\nReset your password here:\n%s/reset-password?token=%s\n\n"+
			"The link expires in one hour. If you did not request this, ignore this email.\n",
		username, strings.TrimRight(m.cfg.BaseURL, "/"), resetToken,
	)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.cfg.From, to, subject, body,
	))

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// LogMailer writes emails to the log instead of sending them. Used in local
// development and tests.
type LogMailer struct{}

// NewLogMailer creates a LogMailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendRegistrationEmail logs the welcome email.
func (m *LogMailer) SendRegistrationEmail(to, username string) error {
	log.Printf("registration email to %s (username %s)", to, username)
	return nil
}

// SendPasswordResetEmail logs the reset email.
func (m *LogMailer) SendPasswordResetEmail(to, username, resetToken string) error {
	log.Printf("password reset email to %s (username %s, token %s)", to, username, resetToken)
	return nil
}
