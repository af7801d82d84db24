package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// Authenticator resolves a bearer access token to the user it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}

// abortWithError writes the client-facing form of err and stops the chain.
func abortWithError(c *gin.Context, err error) {
	appErr := apperrors.Resolve(err)
	c.AbortWithStatusJSON(appErr.Status, dto.NewErrorResponse(appErr))
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthMiddleware creates a Gin middleware handler that verifies the bearer token,
// loads the user it names, and attaches that user to the request context.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Warn("Bearer token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "No token provided"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Authentication failed", slog.String("error", err.Error()))
			abortWithError(c, err)
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", user.ID))
		ctx := WithLogger(WithUser(c.Request.Context(), user), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
