package handlers_test

import (
	"context"
	"strings"
	"sync"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory stand-in for the Mongo repositories.
type memStore struct {
	mu        sync.Mutex
	users     map[string]domain.User
	customers map[string]domain.Customer
	invoices  map[string]domain.Invoice
	products  map[string]domain.Product
	settings  map[string]domain.PDFTemplateSettings
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]domain.User{},
		customers: map[string]domain.Customer{},
		invoices:  map[string]domain.Invoice{},
		products:  map[string]domain.Product{},
		settings:  map[string]domain.PDFTemplateSettings{},
	}
}

func (s *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        memUsers{s},
		CustomerRepo:    memCustomers{s},
		InvoiceRepo:     memInvoices{s},
		ProductRepo:     memProducts{s},
		PDFSettingsRepo: memSettings{s},
	}
}

func validID(id string) error {
	if !primitive.IsValidObjectID(id) {
		return apperrors.ErrInvalidID
	}
	return nil
}

type memUsers struct{ s *memStore }

func (r memUsers) find(match func(domain.User) bool) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r memUsers) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	if err := validID(userID); err != nil {
		return nil, err
	}
	return r.find(func(u domain.User) bool { return u.ID == userID })
}

func (r memUsers) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == username })
}

func (r memUsers) FindUserByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == username || u.Email == email })
}

func (r memUsers) FindUserByRefreshToken(_ context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperrors.ErrNotFound
	}
	return r.find(func(u domain.User) bool { return u.RefreshToken == token })
}

func (r memUsers) CreateUser(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return apperrors.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID().Hex()
	r.s.users[user.ID] = *user
	return nil
}

func (r memUsers) update(userID string, fn func(*domain.User)) error {
	if err := validID(userID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	fn(&u)
	r.s.users[userID] = u
	return nil
}

func (r memUsers) SaveUser(_ context.Context, user domain.User) error {
	return r.update(user.ID, func(u *domain.User) {
		token := u.RefreshToken
		*u = user
		u.RefreshToken = token
	})
}

func (r memUsers) UpdateRefreshToken(_ context.Context, userID string, token string) error {
	return r.update(userID, func(u *domain.User) { u.RefreshToken = token })
}

func (r memUsers) ClearRefreshToken(_ context.Context, userID string) error {
	return r.update(userID, func(u *domain.User) { u.RefreshToken = "" })
}

type memCustomers struct{ s *memStore }

func (r memCustomers) FindCustomers(_ context.Context) ([]domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r memCustomers) SearchCustomersByName(ctx context.Context, query string) ([]domain.Customer, error) {
	all, _ := r.FindCustomers(ctx)
	out := make([]domain.Customer, 0)
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memCustomers) FindCustomerByID(_ context.Context, customerID string) (*domain.Customer, error) {
	if err := validID(customerID); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r memCustomers) CreateCustomer(_ context.Context, customer *domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	customer.ID = primitive.NewObjectID().Hex()
	r.s.customers[customer.ID] = *customer
	return nil
}

func (r memCustomers) UpdateCustomer(_ context.Context, customer domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[customer.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.s.customers[customer.ID] = customer
	return nil
}

func (r memCustomers) DeleteCustomer(_ context.Context, customerID string) error {
	if err := validID(customerID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.customers, customerID)
	return nil
}

type memInvoices struct{ s *memStore }

func (r memInvoices) FindInvoices(_ context.Context) ([]domain.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r memInvoices) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	if err := validID(invoiceID); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[invoiceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &inv, nil
}

func (r memInvoices) CreateInvoice(_ context.Context, invoice *domain.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, inv := range r.s.invoices {
		if inv.InvoiceNumber == invoice.InvoiceNumber {
			return apperrors.ErrDuplicate
		}
	}
	invoice.ID = primitive.NewObjectID().Hex()
	r.s.invoices[invoice.ID] = *invoice
	return nil
}

func (r memInvoices) UpdateInvoice(_ context.Context, invoice domain.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[invoice.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.s.invoices[invoice.ID] = invoice
	return nil
}

func (r memInvoices) DeleteInvoice(_ context.Context, invoiceID string) error {
	if err := validID(invoiceID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.invoices, invoiceID)
	return nil
}

type memProducts struct{ s *memStore }

func (r memProducts) FindProducts(_ context.Context) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

func (r memProducts) FindProductByID(_ context.Context, productID string) (*domain.Product, error) {
	if err := validID(productID); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (r memProducts) CreateProduct(_ context.Context, product *domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	product.ID = primitive.NewObjectID().Hex()
	r.s.products[product.ID] = *product
	return nil
}

func (r memProducts) UpdateProduct(_ context.Context, product domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.s.products[product.ID] = product
	return nil
}

func (r memProducts) DeleteProduct(_ context.Context, productID string) error {
	if err := validID(productID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[productID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.s.products, productID)
	return nil
}

type memSettings struct{ s *memStore }

func (r memSettings) FindSettingsByUserID(_ context.Context, userID string) (*domain.PDFTemplateSettings, error) {
	if err := validID(userID); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, ok := r.s.settings[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &doc, nil
}

func (r memSettings) UpsertSettings(_ context.Context, settings *domain.PDFTemplateSettings) error {
	if err := validID(settings.UserID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.settings[settings.UserID] = *settings
	return nil
}
