package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user administration service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "get user", "User not found", "Invalid user ID")
	}
	return user, nil
}

func (s *userService) MakeAdmin(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.IsAdmin = true
	user.Touch(time.Now().UTC())
	if err := s.userRepo.SaveUser(ctx, *user); err != nil {
		return nil, s.lookupError(ctx, err, "save user", "User not found", "Invalid user ID")
	}

	s.LogInfo(ctx, "User promoted to admin", slog.String("target_user_id", userID))
	return user, nil
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// wrapf is shorthand for wrapping a repository error with the failing operation.
func wrapf(err error, op string) error {
	return fmt.Errorf("failed to %s: %w", op, err)
}
