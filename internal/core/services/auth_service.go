package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
	"github.com/SscSPs/garage_invoice_app/internal/utils"
)

var (
	errDuplicateIdentity = apperrors.NewAppError(http.StatusBadRequest, "Username or email already exists", apperrors.ErrDuplicate)
	errInvalidCredential = apperrors.NewAppError(http.StatusUnauthorized, "Invalid credentials", apperrors.ErrInvalidCredentials)
	errMissingRefresh    = apperrors.NewAppError(http.StatusBadRequest, "Refresh token required", apperrors.ErrMissingInput)
	errInvalidRefresh    = apperrors.NewAppError(http.StatusUnauthorized, "Invalid refresh token", apperrors.ErrInvalidToken)
	errInvalidAccess     = apperrors.NewAppError(http.StatusUnauthorized, "Invalid token", apperrors.ErrInvalidToken)
	errUserNotFound      = apperrors.NewAppError(http.StatusNotFound, "User not found", apperrors.ErrNotFound)
	errUsernameRequired  = apperrors.NewFieldError("username", "Username is required")
)

// authService implements the session flow on top of the credential store.
type authService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	tokens     portssvc.TokenSvc
	bcryptCost int
}

// NewAuthService creates the authentication service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvc, bcryptCost int) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	username := domain.NormalizeUsername(req.Username)
	if username == "" {
		return nil, errUsernameRequired
	}

	_, err := s.userRepo.FindUserByUsernameOrEmail(ctx, username, domain.NormalizeEmail(req.Email))
	if err == nil {
		s.LogWarn(ctx, "Registration rejected: identity taken", slog.String("username", username))
		return nil, errDuplicateIdentity
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing identity")
		return nil, fmt.Errorf("failed to check existing identity: %w", err)
	}

	user, err := domain.NewUser(username, req.Email, req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Touch(time.Now().UTC())

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, errDuplicateIdentity
		}
		s.LogError(ctx, err, "Failed to create user", slog.String("username", username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.ID))
	return user, nil
}

// Login never distinguishes an unknown username from a wrong password.
// The username is normalized the same way Register stores it.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*portssvc.Session, error) {
	username := domain.NormalizeUsername(req.Username)
	if username == "" {
		return nil, errUsernameRequired
	}

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errInvalidCredential
		}
		s.LogError(ctx, err, "Failed to load user for login")
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.CheckPassword(req.Password) {
		return nil, errInvalidCredential
	}

	access, err := s.tokens.IssueAccess(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	// Overwrites any earlier refresh token, ending that session.
	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, refresh); err != nil {
		s.LogError(ctx, err, "Failed to persist refresh token", slog.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	user.RefreshToken = refresh

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.ID))
	return &portssvc.Session{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidID) {
			return errUserNotFound
		}
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// Refresh mints a new access token. The refresh token itself is not rotated.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", errMissingRefresh
	}

	user, err := s.userRepo.FindUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", errInvalidRefresh
		}
		s.LogError(ctx, err, "Failed to look up refresh token")
		return "", fmt.Errorf("failed to look up refresh token: %w", err)
	}

	// A stored token can still be expired or signed with a rotated secret.
	userID, err := s.tokens.Verify(refreshToken, utils.RefreshToken)
	if err != nil || userID != user.ID {
		s.LogWarn(ctx, "Stored refresh token failed verification", slog.String("user_id", user.ID))
		return "", errInvalidRefresh
	}

	access, err := s.tokens.IssueAccess(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}
	return access, nil
}

// Authenticate re-reads the user on every call so role changes apply immediately.
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	userID, err := s.tokens.Verify(accessToken, utils.AccessToken)
	if err != nil {
		return nil, errInvalidAccess
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidID) {
			return nil, errUserNotFound
		}
		s.LogError(ctx, err, "Failed to load authenticated user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
