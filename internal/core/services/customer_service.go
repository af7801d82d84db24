package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
)

const (
	customerNotFound  = "Customer not found"
	invalidCustomerID = "Invalid customer ID"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates the customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.FindCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, wrapf(err, "list customers")
	}
	return customers, nil
}

func (s *customerService) SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	customers, err := s.customerRepo.SearchCustomersByName(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to search customers", slog.String("query", query))
		return nil, wrapf(err, "search customers")
	}
	return customers, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "get customer", customerNotFound, invalidCustomerID)
	}
	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	customer := req.ToDomain(creatorUserID)
	customer.Touch(time.Now().UTC())

	if err := s.customerRepo.CreateCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to create customer")
		return nil, wrapf(err, "create customer")
	}
	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.ID))
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	req.ToPatch().Apply(customer)
	customer.Touch(time.Now().UTC())

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, s.lookupError(ctx, err, "update customer", customerNotFound, invalidCustomerID)
	}
	return customer, nil
}

// DeleteCustomer succeeds whether or not the customer existed.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		return s.lookupError(ctx, err, "delete customer", customerNotFound, invalidCustomerID)
	}
	return nil
}
