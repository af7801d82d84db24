package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type pdfSettingsHandler struct {
	settingsService portssvc.PDFSettingsSvcFacade
}

func newPDFSettingsHandler(ss portssvc.PDFSettingsSvcFacade) *pdfSettingsHandler {
	return &pdfSettingsHandler{settingsService: ss}
}

// registerPDFSettingsRoutes registers the per-user PDF template settings routes.
func registerPDFSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.PDFSettingsSvcFacade) {
	h := newPDFSettingsHandler(settingsService)

	settings := rg.Group("/pdf-template-settings")
	{
		settings.GET("/:userId", h.getSettings)
		settings.POST("/:userId", h.saveSettings)
	}
}

// getSettings godoc
// @Summary Get PDF template settings
// @Description Returns the stored settings object. Callers may read their own settings; admins may read anyone's.
// @Tags pdf-template-settings
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Settings not found"
// @Security BearerAuth
// @Router /pdf-template-settings/{userId} [get]
func (h *pdfSettingsHandler) getSettings(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	settings, err := h.settingsService.GetSettings(c.Request.Context(), user, c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// saveSettings godoc
// @Summary Save PDF template settings
// @Description Replaces the user's settings with the request body, creating them if needed.
// @Tags pdf-template-settings
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param settings body object true "Settings object"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse "Request body must be a JSON object"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Security BearerAuth
// @Router /pdf-template-settings/{userId} [post]
func (h *pdfSettingsHandler) saveSettings(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var body map[string]any
	if !bindJSON(c, &body) {
		return
	}
	settings, err := h.settingsService.SaveSettings(c.Request.Context(), user, c.Param("userId"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
