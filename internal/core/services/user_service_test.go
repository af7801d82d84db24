package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	"github.com/SscSPs/garage_invoice_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_MakeAdmin(t *testing.T) {
	ctx := context.Background()
	const userID = "64b7f0c2a1b2c3d4e5f60718"

	t.Run("promotes and saves", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindUserByID", ctx, userID).Return(&domain.User{ID: userID, Username: "bob", PasswordHash: "h"}, nil).Once()
		repo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
			return u.ID == userID && u.IsAdmin && u.PasswordHash == "h"
		})).Return(nil).Once()

		user, err := services.NewUserService(repo).MakeAdmin(ctx, userID)

		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
		repo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

		_, err := services.NewUserService(repo).MakeAdmin(ctx, userID)

		appErr := apperrors.Resolve(err)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.Equal(t, "User not found", appErr.Message)
		repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindUserByID", ctx, "nope").Return(nil, apperrors.ErrInvalidID).Once()

		_, err := services.NewUserService(repo).MakeAdmin(ctx, "nope")

		appErr := apperrors.Resolve(err)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Equal(t, []apperrors.FieldError{{Field: "id", Message: "Invalid user ID"}}, appErr.Fields)
	})
}
