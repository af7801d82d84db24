package handlers

import (
	"net/http"

	"github.com/SscSPs/garage_invoice_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// getHello godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /hello [get]
func getHello(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello, I am working!"})
}

// getHealth answers load balancer probes.
func getHealth(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}

// registerHomeRoutes registers the unauthenticated status routes.
func registerHomeRoutes(r gin.IRoutes) {
	r.GET("/hello", getHello)
	r.GET("/health", getHealth)
}
