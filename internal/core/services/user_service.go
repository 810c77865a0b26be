package services

import (
	"context"
	"fmt"

	portsrepo "github.com/Hanifzan/auth_acl_app/internal/core/ports/repositories"
	portssvc "github.com/Hanifzan/auth_acl_app/internal/core/ports/services"

	"github.com/Hanifzan/auth_acl_app/internal/core/domain"
)

// userService wraps the user repository, keeping higher layers on the
// service facade rather than the storage port.
type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service backed by the given repository.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, user domain.User) error {
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *userService) UpdateUser(ctx context.Context, user domain.User) error {
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
