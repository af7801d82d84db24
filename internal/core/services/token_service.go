package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/garage_invoice_app/internal/platform/config"
	"github.com/SscSPs/garage_invoice_app/internal/utils"
)

// tokenService signs and verifies HS256 tokens with one process-wide secret.
type tokenService struct {
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a token service from the JWT settings in cfg.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{
		secret:     cfg.JWTSecret,
		accessTTL:  cfg.JWTExpiryDuration,
		refreshTTL: cfg.RefreshTokenExpiryDuration,
	}
}

func (s *tokenService) IssueAccess(userID string) (string, error) {
	return utils.GenerateJWT(userID, utils.AccessToken, s.secret, s.accessTTL)
}

func (s *tokenService) IssueRefresh(userID string) (string, error) {
	return utils.GenerateJWT(userID, utils.RefreshToken, s.secret, s.refreshTTL)
}

// Verify returns the user id claim, or an error wrapping apperrors.ErrInvalidToken.
func (s *tokenService) Verify(token string, kind utils.TokenType) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.secret, kind)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	return claims.UserID, nil
}
