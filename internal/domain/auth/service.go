package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/pkg/jwt"
	"github.com/ayuu-te/studio-look/internal/pkg/password"
	"github.com/ayuu-te/studio-look/internal/pkg/validator"
)

const minPasswordLength = 8

// Service handles authentication business logic
type Service struct {
	users      UserRepository
	jwtService *jwt.Service
	denylist   Denylist
	hashCost   int
	now        func() time.Time
}

// NewService creates auth service
func NewService(users UserRepository, jwtService *jwt.Service, denylist Denylist) *Service {
	return &Service{
		users:      users,
		jwtService: jwtService,
		denylist:   denylist,
		hashCost:   password.DefaultCost,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Signup creates a new account and signs it in
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	// 1. Required fields
	if email == "" || req.Password == "" || name == "" || req.Role == "" {
		return nil, ErrMissingFields
	}

	// 2. Role
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	// 3. Format
	if err := validator.ValidateVar(email, "email,max=255"); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	// 4. Hash password
	hash, err := password.HashWithCost(req.Password, s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 5. Create user
	u := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Name:         name,
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("User signed up")
	return s.issue(u)
}

// Login authenticates user by email and password
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	u, ok, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !ok || !password.Verify(req.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

// Logout revokes the presented token until its natural expiry
func (s *Service) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.ID, claims.ExpiresAtTime()); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// Me returns the account behind identity
func (s *Service) Me(ctx context.Context, identity models.Identity) (*UserResponse, error) {
	u, ok, err := s.users.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	resp := NewUserResponse(u)
	return &resp, nil
}

func (s *Service) issue(u models.User) (*AuthResponse, error) {
	token, err := s.jwtService.GenerateAccessToken(u.Identity())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResponse{
		User:      NewUserResponse(u),
		Token:     token,
		TokenType: tokenTypeBearer,
		ExpiresIn: int(s.jwtService.GetAccessTTL().Seconds()),
	}, nil
}
