package middleware

import (
	"net/http"

	"github.com/SscSPs/garage_invoice_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// AdminMiddleware rejects callers whose attached identity is not an admin.
// It must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "No token provided"})
			return
		}
		if !user.IsAdmin {
			GetLoggerFromCtx(c.Request.Context()).Warn("Admin access denied")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required"})
			return
		}
		c.Next()
	}
}
