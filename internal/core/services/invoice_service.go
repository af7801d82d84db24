package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
)

const (
	invoiceNotFound  = "Invoice not found"
	invalidInvoiceID = "Invalid invoice ID"
)

var errDuplicateInvoiceNumber = apperrors.NewAppError(http.StatusBadRequest, "Invoice number already exists", apperrors.ErrDuplicate)

type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewInvoiceService creates the invoice service. customerRepo is used to check
// that an invoice references an existing customer.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, customerRepo portsrepo.CustomerReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, wrapf(err, "list invoices")
	}
	return invoices, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "get invoice", invoiceNotFound, invalidInvoiceID)
	}
	return invoice, nil
}

func (s *invoiceService) ensureCustomer(ctx context.Context, customerID string) error {
	_, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrInvalidID):
		return apperrors.NewFieldError("customerId", invalidCustomerID)
	default:
		s.LogError(ctx, err, "Failed to check invoice customer", slog.String("customer_id", customerID))
		return wrapf(err, "check customer")
	}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields...)
	}
	invoice, err := req.ToDomain(creatorUserID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCustomer(ctx, invoice.CustomerID); err != nil {
		return nil, err
	}

	invoice.Touch(time.Now().UTC())
	if err := s.invoiceRepo.CreateInvoice(ctx, invoice); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, errDuplicateInvoiceNumber
		}
		s.LogError(ctx, err, "Failed to create invoice")
		return nil, wrapf(err, "create invoice")
	}

	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoice.ID), slog.String("invoice_number", invoice.InvoiceNumber))
	return invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields...)
	}
	patch, err := req.ToPatch()
	if err != nil {
		return nil, err
	}

	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if patch.CustomerID != nil && *patch.CustomerID != invoice.CustomerID {
		if err := s.ensureCustomer(ctx, *patch.CustomerID); err != nil {
			return nil, err
		}
	}

	patch.Apply(invoice)
	return s.save(ctx, invoice)
}

func (s *invoiceService) save(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	invoice.Touch(time.Now().UTC())
	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, errDuplicateInvoiceNumber
		}
		return nil, s.lookupError(ctx, err, "update invoice", invoiceNotFound, invalidInvoiceID)
	}
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		return s.lookupError(ctx, err, "delete invoice", invoiceNotFound, invalidInvoiceID)
	}
	return nil
}

func (s *invoiceService) SendInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := invoice.MarkSent(); err != nil {
		s.LogWarn(ctx, "Rejected invoice send", slog.String("invoice_id", invoiceID), slog.String("status", string(invoice.Status)))
		return nil, err
	}
	return s.save(ctx, invoice)
}

func (s *invoiceService) MarkInvoicePaid(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.MarkPaid()
	return s.save(ctx, invoice)
}
