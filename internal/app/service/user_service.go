package service

import (
	"context"
	"errors"
	"fmt"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type VerifyUserRequest struct {
	Verified *bool `json:"verified"`
}

// List returns sanitized views of every account.
func (s *UserService) List(ctx context.Context) []model.PublicUser {
	users := s.userRepo.List(ctx)
	public := make([]model.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}
	return public
}

func (s *UserService) Get(ctx context.Context, id string) (*model.PublicUser, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Errorf("user not found: %w", common.ErrNotFound)
	}
	public := user.Public()
	return &public, nil
}

// SetVerified flips the admin-controlled verification flag. An absent value
// in the request counts as true.
func (s *UserService) SetVerified(ctx context.Context, id string, req VerifyUserRequest) (*model.PublicUser, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Errorf("user not found: %w", common.ErrNotFound)
	}

	verified := true
	if req.Verified != nil {
		verified = *req.Verified
	}
	user.Verified = &verified

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	public := user.Public()
	return &public, nil
}

// Delete removes the account only. Registrations and notifications that
// reference it stay in storage and are filtered from joined views.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Errorf("user not found: %w", common.ErrNotFound)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
