package services

import (
	"context"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
	"github.com/SscSPs/garage_invoice_app/internal/utils"
)

// TokenSvc issues and verifies signed access and refresh tokens.
type TokenSvc interface {
	IssueAccess(userID string) (string, error)
	IssueRefresh(userID string) (string, error)

	// Verify checks signature, expiry and token type and returns the user id claim.
	Verify(token string, kind utils.TokenType) (string, error)
}

// Session is the pair of tokens handed out on login.
type Session struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// AuthSvcFacade covers the register/login/logout/refresh session flow.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*Session, error)
	Logout(ctx context.Context, userID string) error
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// Authenticate resolves the user behind a bearer access token.
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}
