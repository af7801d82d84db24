package services

import (
	"context"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
)

// UserSvcFacade exposes user administration.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// MakeAdmin sets the admin flag on the user.
	MakeAdmin(ctx context.Context, userID string) (*domain.User, error)
}
