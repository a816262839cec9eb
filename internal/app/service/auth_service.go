package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resqconnect/internal/common"
	"resqconnect/internal/common/security"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const minPasswordLength = 4

type AuthService struct {
	userRepo repository.UserRepository
	log      zerolog.Logger
}

func NewAuthService(userRepo repository.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, log: log}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, common.Errorf("name, email, and password are required: %w", common.ErrBadRequest)
	}
	if len(req.Password) < minPasswordLength {
		return nil, common.Errorf("password must be at least %d characters: %w", minPasswordLength, common.ErrBadRequest)
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, common.Errorf("user with this email already exists: %w", common.ErrConflict)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	location := req.Location
	if location == "" {
		location = "Not specified"
	}
	verified := false
	user := &model.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Role:      model.RoleUser,
		Password:  hashedPassword,
		Location:  location,
		Verified:  &verified,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := security.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Token: token, User: user.Public()}, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.Errorf("email and password are required: %w", common.ErrBadRequest)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("invalid email or password: %w", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// A plaintext password at rest means the startup migration never ran.
	if !security.IsHashed(user.Password) {
		return nil, common.Errorf("server configuration error: %w", common.ErrInternalServer)
	}

	if !security.CheckPasswordHash(req.Password, user.Password) {
		return nil, common.Errorf("invalid email or password: %w", common.ErrUnauthorized)
	}

	token, err := security.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Token: token, User: user.Public()}, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*model.PublicUser, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("user not found: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	public := user.Public()
	return &public, nil
}

// InitUsers runs once at startup. An empty collection gets the two demo
// accounts; otherwise any stored password that is not yet a bcrypt hash is
// re-hashed in place.
func (s *AuthService) InitUsers(ctx context.Context) error {
	users := s.userRepo.List(ctx)

	if len(users) == 0 {
		seeded, err := s.defaultUsers()
		if err != nil {
			return err
		}
		s.log.Info().Msg("seeding default user accounts")
		return s.userRepo.ReplaceAll(ctx, seeded)
	}

	migrated := false
	for i := range users {
		if security.IsHashed(users[i].Password) {
			continue
		}
		hashed, err := security.HashPassword(users[i].Password)
		if err != nil {
			return fmt.Errorf("failed to hash legacy password: %w", err)
		}
		users[i].Password = hashed
		migrated = true
	}
	if migrated {
		s.log.Info().Msg("re-hashed legacy plaintext passwords")
		return s.userRepo.ReplaceAll(ctx, users)
	}
	return nil
}

func (s *AuthService) defaultUsers() ([]model.User, error) {
	hashed, err := security.HashPassword("12345")
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}
	now := time.Now()
	return []model.User{
		{
			ID:        "1",
			Name:      "Admin User",
			Email:     "admin@gmail.com",
			Role:      model.RoleAdmin,
			Password:  hashed,
			CreatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Regular User",
			Email:     "user@gmail.com",
			Role:      model.RoleUser,
			Password:  hashed,
			CreatedAt: now,
		},
	}, nil
}
