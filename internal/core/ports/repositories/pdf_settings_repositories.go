package repositories

import (
	"context"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
)

// PDFSettingsRepository persists one settings document per user.
type PDFSettingsRepository interface {
	FindSettingsByUserID(ctx context.Context, userID string) (*domain.PDFTemplateSettings, error)

	// UpsertSettings replaces the user's settings, creating the document if needed.
	UpsertSettings(ctx context.Context, settings *domain.PDFTemplateSettings) error
}
