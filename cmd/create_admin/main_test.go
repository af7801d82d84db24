package main

import (
	"context"
	"testing"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	panic("unexpected call")
}

func (m *mockUsers) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUsers) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	panic("unexpected call")
}

func (m *mockUsers) FindUserByRefreshToken(ctx context.Context, token string) (*domain.User, error) {
	panic("unexpected call")
}

func (m *mockUsers) CreateUser(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUsers) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUsers) UpdateRefreshToken(ctx context.Context, userID string, token string) error {
	panic("unexpected call")
}

func (m *mockUsers) ClearRefreshToken(ctx context.Context, userID string) error {
	panic("unexpected call")
}

func TestEnsureAdmin_CreatesMissingUser(t *testing.T) {
	ctx := context.Background()
	users := new(mockUsers)
	users.On("FindUserByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()
	users.On("CreateUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.IsAdmin && u.Email == "admin@example.com" && u.CheckPassword("hunter2")
	})).Return(nil).Once()

	user, created, err := ensureAdmin(ctx, users, "admin", "Admin@Example.com", "hunter2", bcrypt.MinCost)

	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, user.IsAdmin)
	users.AssertExpectations(t)
}

func TestEnsureAdmin_PromotesExistingUser(t *testing.T) {
	ctx := context.Background()
	users := new(mockUsers)
	existing := &domain.User{ID: "64b7f0c2a1b2c3d4e5f60701", Username: "admin", PasswordHash: "kept"}
	users.On("FindUserByUsername", ctx, "admin").Return(existing, nil).Once()
	users.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.IsAdmin && u.PasswordHash == "kept"
	})).Return(nil).Once()

	user, created, err := ensureAdmin(ctx, users, "admin", "", "ignored", bcrypt.MinCost)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, user.ID)
	users.AssertExpectations(t)
}

func TestEnsureAdmin_TrimsAndRequiresUsername(t *testing.T) {
	ctx := context.Background()
	users := new(mockUsers)

	_, _, err := ensureAdmin(ctx, users, "   ", "admin@example.com", "pw", bcrypt.MinCost)
	assert.Error(t, err)
	users.AssertNotCalled(t, "FindUserByUsername", mock.Anything, mock.Anything)

	users.On("FindUserByUsername", ctx, "root").Return(&domain.User{ID: "64b7f0c2a1b2c3d4e5f60702", Username: "root"}, nil).Once()
	users.On("SaveUser", ctx, mock.Anything).Return(nil).Once()
	_, created, err := ensureAdmin(ctx, users, " root ", "", "pw", bcrypt.MinCost)
	require.NoError(t, err)
	assert.False(t, created)
	users.AssertExpectations(t)
}
