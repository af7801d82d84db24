package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/garage_invoice_app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCustomerRepository struct {
	BaseRepository
}

func newMongoCustomerRepository(db *mongo.Database, timeout time.Duration) *MongoCustomerRepository {
	return &MongoCustomerRepository{BaseRepository: newBaseRepository(db, customersCollection, timeout)}
}

var _ portsrepo.CustomerRepositoryFacade = (*MongoCustomerRepository)(nil)

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func toModelCustomer(d domain.Customer) (models.Customer, error) {
	id, err := parseOptionalID(d.ID)
	if err != nil {
		return models.Customer{}, err
	}
	userID, err := parseOptionalID(d.UserID)
	if err != nil {
		return models.Customer{}, err
	}
	m := models.Customer{
		ID:          id,
		Name:        d.Name,
		Email:       d.Email,
		Contact:     d.Contact,
		VehicleNo:   d.VehicleNo,
		CarModel:    d.CarModel,
		Avatar:      d.Avatar,
		UserID:      userID,
		AuditFields: auditFields(d.CreatedAt, d.UpdatedAt),
	}
	if d.Address != nil {
		m.Address = &models.Address{
			Street:  d.Address.Street,
			City:    d.Address.City,
			State:   d.Address.State,
			Zip:     d.Address.Zip,
			Country: d.Address.Country,
		}
	}
	return m, nil
}

func toDomainCustomer(m models.Customer) domain.Customer {
	c := domain.Customer{
		ID:         m.ID.Hex(),
		Name:       m.Name,
		Email:      m.Email,
		Contact:    m.Contact,
		VehicleNo:  m.VehicleNo,
		CarModel:   m.CarModel,
		Avatar:     m.Avatar,
		UserID:     hexOrEmpty(m.UserID),
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
	if m.Address != nil {
		c.Address = &domain.Address{
			Street:  m.Address.Street,
			City:    m.Address.City,
			State:   m.Address.State,
			Zip:     m.Address.Zip,
			Country: m.Address.Country,
		}
	}
	return c
}

func (r *MongoCustomerRepository) findCustomers(ctx context.Context, filter bson.M) ([]domain.Customer, error) {
	var ms []models.Customer
	if err := r.findAll(ctx, filter, &ms, newestFirst()); err != nil {
		return nil, err
	}
	customers := make([]domain.Customer, len(ms))
	for i, m := range ms {
		customers[i] = toDomainCustomer(m)
	}
	return customers, nil
}

func (r *MongoCustomerRepository) FindCustomers(ctx context.Context) ([]domain.Customer, error) {
	return r.findCustomers(ctx, bson.M{})
}

// SearchCustomersByName matches query literally; regex metacharacters are escaped.
func (r *MongoCustomerRepository) SearchCustomersByName(ctx context.Context, query string) ([]domain.Customer, error) {
	return r.findCustomers(ctx, bson.M{
		"name": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"},
	})
}

func (r *MongoCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	id, err := parseID(customerID)
	if err != nil {
		return nil, err
	}
	var m models.Customer
	if err := r.findOne(ctx, bson.M{"_id": id}, &m); err != nil {
		return nil, err
	}
	c := toDomainCustomer(m)
	return &c, nil
}

func (r *MongoCustomerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	m, err := toModelCustomer(*customer)
	if err != nil {
		return err
	}
	id, err := r.insert(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	customer.ID = id.Hex()
	return nil
}

func (r *MongoCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m, err := toModelCustomer(customer)
	if err != nil {
		return err
	}
	if m.ID.IsZero() {
		return parseIDErr(customer.ID)
	}
	if err := r.replace(ctx, m.ID, m); err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.ID, err)
	}
	return nil
}

func (r *MongoCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	id, err := parseID(customerID)
	if err != nil {
		return err
	}
	if _, err := r.deleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	return nil
}
