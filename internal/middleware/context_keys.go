package middleware

import (
	"context"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userCtxKey is the key used to store the authenticated user in the request context.
const userCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// GetUserFromCtx retrieves the authenticated user from a standard context.
func GetUserFromCtx(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*domain.User)
	return user, ok && user != nil
}

// GetUserFromContext retrieves the authenticated user attached by AuthMiddleware.
// It returns the user and a boolean indicating if it was found.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	return GetUserFromCtx(c.Request.Context())
}

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	user, ok := GetUserFromContext(c)
	if !ok {
		return "", false
	}
	return user.ID, true
}
