package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinicapires/backend/internal/model"
	"github.com/clinicapires/backend/internal/repository"
	"github.com/clinicapires/backend/internal/service/mail"
)

var (
	ErrMissingFields        = errors.New("email and password are required")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailNotFound        = errors.New("email not found")
	ErrInvalidRecoveryToken = errors.New("invalid recovery token")
	ErrInvalidSession       = errors.New("invalid session token")
	ErrMailSend             = errors.New("failed to send recovery email")
)

// Recovery codes are truncated uuids. Eight characters is what the clinic
// frontend displays and what accounts already in the wild expect.
const recoveryTokenLength = 8

type AuthService struct {
	users         repository.UserRepository
	mailer        mail.Sender
	adminEmail    string
	adminPassword string
}

func NewAuthService(users repository.UserRepository, mailer mail.Sender, adminEmail, adminPassword string) *AuthService {
	return &AuthService{
		users:         users,
		mailer:        mailer,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// SeedAdmin creates the configured administrative account when the
// credential store is empty. It runs once during startup wiring, never
// during request handling.
func (s *AuthService) SeedAdmin() error {
	users, err := s.users.Load()
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	if len(users) > 0 {
		return nil
	}

	if s.adminEmail == "" || s.adminPassword == "" {
		slog.Warn("credential store empty and no admin account configured, skipping seed",
			"hint", "set ADMIN_EMAIL and ADMIN_PASSWORD")
		return nil
	}

	hash, err := s.HashPassword(s.adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	users[s.adminEmail] = &model.User{PasswordHash: hash}
	err = s.users.Save(users)
	if err != nil {
		return fmt.Errorf("failed to persist admin account: %w", err)
	}

	slog.Info("seeded default admin account", "email", s.adminEmail)
	return nil
}

// Register creates a credential record for a new email. Emails are the
// sole identity key and are kept case-sensitive as supplied.
func (s *AuthService) Register(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingFields
	}

	users, err := s.users.Load()
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	_, exists := users[email]
	if exists {
		return ErrEmailTaken
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	users[email] = &model.User{PasswordHash: hash}
	err = s.users.Save(users)
	if err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}

	slog.Info("user registered", "email", email)
	return nil
}

// Login verifies credentials and issues a fresh session token, overwriting
// any previous one. Unknown emails and wrong passwords are indistinguishable
// to the caller.
func (s *AuthService) Login(email, password string) (string, error) {
	users, err := s.users.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load users: %w", err)
	}

	user, exists := users[email]
	if !exists {
		return "", ErrInvalidCredentials
	}

	err = s.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.New().String()
	user.SessionToken = &token
	err = s.users.Save(users)
	if err != nil {
		return "", fmt.Errorf("failed to persist session token: %w", err)
	}

	slog.Info("user logged in", "email", email)
	return token, nil
}

// ForgotPassword persists a short recovery code on the record and mails it.
// The code is stored before the send, so a failed send leaves it usable
// when relayed out of band; the send failure is still reported.
func (s *AuthService) ForgotPassword(email string) error {
	users, err := s.users.Load()
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	user, exists := users[email]
	if !exists {
		return ErrEmailNotFound
	}

	code := uuid.New().String()[:recoveryTokenLength]
	user.RecoveryToken = &code
	err = s.users.Save(users)
	if err != nil {
		return fmt.Errorf("failed to persist recovery token: %w", err)
	}

	err = s.mailer.SendRecoveryCode(email, code)
	if err != nil {
		slog.Error("recovery email failed, token remains persisted", "error", err, "email", email)
		return fmt.Errorf("%w: %v", ErrMailSend, err)
	}

	slog.Info("recovery email sent", "email", email)
	return nil
}

// ResetPassword sets a new password when the supplied code exactly matches
// the stored recovery token, then clears the token so it cannot be reused.
// There is no expiry and no attempt limiting.
func (s *AuthService) ResetPassword(email, token, newPassword string) error {
	users, err := s.users.Load()
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	user, exists := users[email]
	if !exists || user.RecoveryToken == nil || *user.RecoveryToken != token {
		return ErrInvalidRecoveryToken
	}

	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hash
	user.RecoveryToken = nil
	err = s.users.Save(users)
	if err != nil {
		return fmt.Errorf("failed to persist password: %w", err)
	}

	slog.Info("password reset", "email", email)
	return nil
}

// Authorize returns the email owning the given session token. Any valid
// session across any account authorizes posting; there is no per-user
// ownership of posts. Flagged for product review, preserved for
// compatibility with the deployed frontend.
func (s *AuthService) Authorize(token string) (string, error) {
	users, err := s.users.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load users: %w", err)
	}

	for email, user := range users {
		if user.HasSession() && *user.SessionToken == token {
			return email, nil
		}
	}

	return "", ErrInvalidSession
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
