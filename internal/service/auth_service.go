package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dealerdesk/internal/auth"
	"dealerdesk/internal/model"
	"dealerdesk/pkg/apierror"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, u model.User) error
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByID(ctx context.Context, id string) (model.User, error)
	List(ctx context.Context) ([]model.PublicUser, error)
}

type AuthService struct {
	users  UserStore
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
}

func NewAuthService(users UserStore, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Signup hashes the password and inserts a new identity. Duplicate
// emails surface as 409 via the store's uniqueness violation, never a
// pre-check.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.PublicUser, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	role := strings.TrimSpace(req.Role)

	if name == "" || email == "" || req.Password == "" || role == "" {
		return model.PublicUser{}, apierror.BadRequest("All fields required")
	}

	if !model.ValidRole(role) {
		return model.PublicUser{}, apierror.BadRequest("Invalid role")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.PublicUser{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrEmailExists) {
			return model.PublicUser{}, apierror.Conflict("Email already exists")
		}
		return model.PublicUser{}, err
	}

	return user.Public(), nil
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password produce the same failure so callers cannot tell which
// field was wrong.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return model.LoginResponse{}, apierror.BadRequest("Email and password required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.LoginResponse{}, apierror.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return model.LoginResponse{}, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return model.LoginResponse{}, apierror.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return model.LoginResponse{}, fmt.Errorf("issue token: %w", err)
	}

	return model.LoginResponse{Token: token, User: user.Public()}, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.PublicUser{}, err
	}
	return user.Public(), nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]model.PublicUser, error) {
	return s.users.List(ctx)
}
