package services

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
)

var errSettingsForbidden = apperrors.NewAppError(http.StatusForbidden, "Access denied", apperrors.ErrForbidden)

type pdfSettingsService struct {
	BaseService
	settingsRepo portsrepo.PDFSettingsRepository
}

// NewPDFSettingsService creates the PDF template settings service.
func NewPDFSettingsService(settingsRepo portsrepo.PDFSettingsRepository) portssvc.PDFSettingsSvcFacade {
	return &pdfSettingsService{settingsRepo: settingsRepo}
}

func (s *pdfSettingsService) authorize(ctx context.Context, requester *domain.User, userID string) error {
	if requester == nil || (requester.ID != userID && !requester.IsAdmin) {
		s.LogWarn(ctx, "Denied access to another user's PDF settings", slog.String("target_user_id", userID))
		return errSettingsForbidden
	}
	return nil
}

func (s *pdfSettingsService) GetSettings(ctx context.Context, requester *domain.User, userID string) (map[string]any, error) {
	if err := s.authorize(ctx, requester, userID); err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.FindSettingsByUserID(ctx, userID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "get pdf settings", "Settings not found", "Invalid user ID")
	}
	return settings.Settings, nil
}

func (s *pdfSettingsService) SaveSettings(ctx context.Context, requester *domain.User, userID string, settings map[string]any) (map[string]any, error) {
	if err := s.authorize(ctx, requester, userID); err != nil {
		return nil, err
	}
	if settings == nil {
		settings = map[string]any{}
	}

	doc := &domain.PDFTemplateSettings{UserID: userID, Settings: settings}
	doc.Touch(time.Now().UTC())
	if err := s.settingsRepo.UpsertSettings(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save pdf settings", slog.String("target_user_id", userID))
		return nil, wrapf(err, "save pdf settings")
	}
	return doc.Settings, nil
}
