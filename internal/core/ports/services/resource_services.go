package services

import (
	"context"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
)

// CustomerSvcFacade manages customer records.
type CustomerSvcFacade interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

// InvoiceSvcFacade manages invoices and their status transitions.
type InvoiceSvcFacade interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
	SendInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	MarkInvoicePaid(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

// ProductSvcFacade manages the product catalogue.
type ProductSvcFacade interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	CreateProduct(ctx context.Context, req dto.ProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.ProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// PDFSettingsSvcFacade reads and writes per-user PDF template settings.
// The requester must be the owner or an admin.
type PDFSettingsSvcFacade interface {
	GetSettings(ctx context.Context, requester *domain.User, userID string) (map[string]any, error)
	SaveSettings(ctx context.Context, requester *domain.User, userID string, settings map[string]any) (map[string]any, error)
}
