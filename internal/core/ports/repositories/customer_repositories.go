package repositories

import (
	"context"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
)

// CustomerReader defines read operations for customers.
type CustomerReader interface {
	FindCustomers(ctx context.Context) ([]domain.Customer, error)

	// SearchCustomersByName returns customers whose name contains query, ignoring case.
	SearchCustomersByName(ctx context.Context, query string) ([]domain.Customer, error)

	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
}

// CustomerWriter defines write operations for customers.
type CustomerWriter interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes the customer if present; deleting a missing one is not an error.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerRepositoryFacade combines all customer repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
