package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobboard-api/internal/auth"
	"jobboard-api/internal/domain"
	"jobboard-api/internal/repository"
)

var (
	// ErrDuplicateEmail is returned when signing up with an email that is taken.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrUserNotFound is returned when no account matches the login email.
	ErrUserNotFound = errors.New("no account found for this email")
	// ErrUserTypeMismatch is returned when the login user type does not match
	// the registered one. Checked before the password on purpose.
	ErrUserTypeMismatch = errors.New("user type does not match this account")
	// ErrInvalidCredentials indicates the supplied password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}

// SignupInput carries the validated signup request fields.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	UserType string
}

// LoginInput carries the validated login request fields.
type LoginInput struct {
	Email    string
	Password string
	UserType string
}

// AuthService orchestrates signup, login, and token issuance.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) error
	Login(ctx context.Context, in LoginInput) (string, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenIssuer
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenIssuer) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Signup validates the input, checks email uniqueness, hashes the password,
// and persists a new user. No token is issued at signup.
func (s *authService) Signup(ctx context.Context, in SignupInput) error {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	userType := domain.UserType(strings.TrimSpace(in.UserType))

	if name == "" {
		return missingField("name")
	}
	if email == "" {
		return missingField("email")
	}
	if in.Password == "" {
		return missingField("password")
	}
	if strings.TrimSpace(in.UserType) == "" {
		return missingField("userType")
	}
	if !userType.Valid() {
		return &ValidationError{Field: "userType", Reason: "must be employer or jobseeker"}
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		UserType:     userType,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// a concurrent signup can slip past the pre-check; the store's unique
		// index settles it
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies email, user type, and password in that order, then returns
// a signed session token. The type check runs before the password check so a
// mismatched role is reported as such rather than as bad credentials.
func (s *authService) Login(ctx context.Context, in LoginInput) (string, error) {
	email := normalizeEmail(in.Email)

	if email == "" {
		return "", missingField("email")
	}
	if in.Password == "" {
		return "", missingField("password")
	}
	if strings.TrimSpace(in.UserType) == "" {
		return "", missingField("userType")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("lookup email: %w", err)
	}

	if domain.UserType(strings.TrimSpace(in.UserType)) != user.UserType {
		return "", ErrUserTypeMismatch
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.UserType)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
