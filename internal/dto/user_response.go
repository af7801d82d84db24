package dto

import (
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
)

// UserResponse is the public view of a user. It never carries the password
// hash or the refresh token.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to its public view.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MakeAdminResponse is returned by POST /admin/users/:id/make-admin.
type MakeAdminResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
