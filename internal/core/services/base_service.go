package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// lookupError translates a repository lookup failure into the error returned to callers.
// Not-found and malformed ids become client errors; anything else is logged and wrapped.
func (s *BaseService) lookupError(ctx context.Context, err error, op, notFoundMsg, invalidIDMsg string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewAppError(http.StatusNotFound, notFoundMsg, err)
	case errors.Is(err, apperrors.ErrInvalidID):
		return apperrors.NewFieldError("id", invalidIDMsg)
	default:
		s.LogError(ctx, err, "Repository call failed", slog.String("op", op))
		return fmt.Errorf("%s: %w", op, err)
	}
}
