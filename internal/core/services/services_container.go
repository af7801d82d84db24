package services

import (
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/garage_invoice_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	tokens := NewTokenService(cfg)

	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(repos.UserRepo, tokens, cfg.BcryptCost),
		User:        NewUserService(repos.UserRepo),
		Customer:    NewCustomerService(repos.CustomerRepo),
		Invoice:     NewInvoiceService(repos.InvoiceRepo, repos.CustomerRepo),
		Product:     NewProductService(repos.ProductRepo),
		PDFSettings: NewPDFSettingsService(repos.PDFSettingsRepo),
	}
}
