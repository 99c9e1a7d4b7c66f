package service

import (
	"context"
	"fmt"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/repository"
)

type UserService interface {
	SyncProfile(ctx context.Context, user *domain.User) error
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// SyncProfile mirrors the auth provider's profile (and the device token used
// for push delivery) into the local users table.
func (s *userService) SyncProfile(ctx context.Context, user *domain.User) error {
	if user.ID == "" || user.Email == "" {
		return fmt.Errorf("%w: user id and email are required", domain.ErrValidation)
	}
	return s.userRepo.Upsert(ctx, user)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
