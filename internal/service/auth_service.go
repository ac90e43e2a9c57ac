package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jengzang/putusan-backend-go/internal/auth"
	"github.com/jengzang/putusan-backend-go/internal/models"
)

// maxPasswordBytes is the longest input bcrypt accepts
const maxPasswordBytes = 72

// UserStore persists user accounts
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthService registers users and issues session tokens
type AuthService struct {
	users  UserStore
	tokens *auth.TokenManager
	logger *slog.Logger
	cost   int
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, tokens *auth.TokenManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
		cost:   bcrypt.DefaultCost,
	}
}

// Register creates a user with the user role.
// Returns models.ErrConflict when the email is taken.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", models.ErrInvalidFilter)
	}
	return s.CreateUser(ctx, req.NamaLengkap, req.Email, req.Password, models.RoleUser)
}

// CreateUser hashes the password and stores a new account
func (s *AuthService) CreateUser(ctx context.Context, nama, email, password, role string) (*models.User, error) {
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password exceeds %d bytes", models.ErrInvalidFilter, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidFilter, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &models.User{
		NamaLengkap: nama,
		Email:       strings.ToLower(strings.TrimSpace(email)),
		Password:    string(hash),
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// Login checks the credentials and issues a session token.
// Unknown emails and wrong passwords both return models.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if len(req.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password exceeds %d bytes", models.ErrInvalidFilter, maxPasswordBytes)
	}

	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.Issue(u)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.LoginResponse{
		Message:   "Login berhasil",
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *u,
	}, nil
}

// Me returns the account of an authenticated user
func (s *AuthService) Me(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
