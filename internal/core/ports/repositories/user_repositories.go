package repositories

import (
	"context"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
)

// UserReader defines read operations for user data.
// Every lookup returns apperrors.ErrNotFound when no user matches.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves the user with exactly this username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByUsernameOrEmail retrieves a user holding either identity.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)

	// FindUserByRefreshToken retrieves the user whose stored refresh token equals token.
	FindUserByRefreshToken(ctx context.Context, token string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// CreateUser persists a new user and sets its ID. It fails with
	// apperrors.ErrDuplicate when the username or email is taken.
	CreateUser(ctx context.Context, user *domain.User) error

	// SaveUser writes the profile fields and admin flag of an existing user.
	// The stored password hash is written as-is.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken overwrites the single refresh token slot.
	UpdateRefreshToken(ctx context.Context, userID string, token string) error

	// ClearRefreshToken empties the refresh token slot.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
