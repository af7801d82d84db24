package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
	"github.com/SscSPs/garage_invoice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles user administration.
type adminHandler struct {
	userService portssvc.UserSvcFacade
}

func newAdminHandler(us portssvc.UserSvcFacade) *adminHandler {
	return &adminHandler{userService: us}
}

// registerAdminRoutes registers the admin-only routes. rg must already be authenticated.
func registerAdminRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newAdminHandler(userService)

	admin := rg.Group("/admin", middleware.AdminMiddleware())
	{
		admin.POST("/users/:id/make-admin", h.makeAdmin)
	}
}

// makeAdmin godoc
// @Summary Grant admin rights
// @Description Sets the admin flag on a user. Admin only.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.MakeAdminResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/make-admin [post]
func (h *adminHandler) makeAdmin(c *gin.Context) {
	targetID := c.Param("id")

	user, err := h.userService.MakeAdmin(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User promoted to admin", slog.String("target_user_id", targetID))
	c.JSON(http.StatusOK, dto.MakeAdminResponse{
		Message: "User has been made admin successfully",
		User:    dto.ToUserResponse(user),
	})
}
