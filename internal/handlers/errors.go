package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
	"github.com/SscSPs/garage_invoice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError writes the client-facing form of err. Server-side failures are
// logged with their cause; the body only ever carries the generic message.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.Resolve(err)
	if appErr.Status >= http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Request failed", slog.String("error", err.Error()))
	}
	c.JSON(appErr.Status, dto.NewErrorResponse(appErr))
}

// currentUser returns the identity attached by AuthMiddleware, answering 401 when absent.
func currentUser(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "No token provided"})
		return nil, false
	}
	return user, true
}
