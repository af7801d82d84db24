package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/garage_invoice_app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoInvoiceRepository struct {
	BaseRepository
}

func newMongoInvoiceRepository(db *mongo.Database, timeout time.Duration) *MongoInvoiceRepository {
	return &MongoInvoiceRepository{BaseRepository: newBaseRepository(db, invoicesCollection, timeout)}
}

var _ portsrepo.InvoiceRepositoryFacade = (*MongoInvoiceRepository)(nil)

func toModelLineItem(d domain.LineItem) (models.LineItem, error) {
	rate, err := toDecimal128(d.Rate)
	if err != nil {
		return models.LineItem{}, err
	}
	qty, err := toDecimal128(d.Quantity)
	if err != nil {
		return models.LineItem{}, err
	}
	amount, err := toDecimal128(d.Amount)
	if err != nil {
		return models.LineItem{}, err
	}
	return models.LineItem{ID: d.ID, Particulars: d.Particulars, Rate: rate, Quantity: qty, Amount: amount}, nil
}

func toDomainLineItem(m models.LineItem) (domain.LineItem, error) {
	rate, err := fromDecimal128(m.Rate)
	if err != nil {
		return domain.LineItem{}, err
	}
	qty, err := fromDecimal128(m.Quantity)
	if err != nil {
		return domain.LineItem{}, err
	}
	amount, err := fromDecimal128(m.Amount)
	if err != nil {
		return domain.LineItem{}, err
	}
	return domain.LineItem{ID: m.ID, Particulars: m.Particulars, Rate: rate, Quantity: qty, Amount: amount}, nil
}

func toModelInvoice(d domain.Invoice) (models.Invoice, error) {
	id, err := parseOptionalID(d.ID)
	if err != nil {
		return models.Invoice{}, err
	}
	customerID, err := parseID(d.CustomerID)
	if err != nil {
		return models.Invoice{}, err
	}
	userID, err := parseOptionalID(d.UserID)
	if err != nil {
		return models.Invoice{}, err
	}
	amount, err := toDecimal128(d.Amount)
	if err != nil {
		return models.Invoice{}, err
	}

	items := make([]models.LineItem, len(d.LineItems))
	for i, li := range d.LineItems {
		if items[i], err = toModelLineItem(li); err != nil {
			return models.Invoice{}, err
		}
	}

	return models.Invoice{
		ID:            id,
		InvoiceNumber: d.InvoiceNumber,
		Amount:        amount,
		DueDate:       d.DueDate,
		Status:        string(d.Status),
		CustomerID:    customerID,
		UserID:        userID,
		LineItems:     items,
		MeterReading:  d.MeterReading,
		CustomFields:  d.CustomFields,
		Name:          d.Name,
		VehicleNo:     d.VehicleNo,
		CarModel:      d.CarModel,
		AuditFields:   auditFields(d.CreatedAt, d.UpdatedAt),
	}, nil
}

func toDomainInvoice(m models.Invoice) (domain.Invoice, error) {
	amount, err := fromDecimal128(m.Amount)
	if err != nil {
		return domain.Invoice{}, err
	}
	items := make([]domain.LineItem, len(m.LineItems))
	for i, li := range m.LineItems {
		if items[i], err = toDomainLineItem(li); err != nil {
			return domain.Invoice{}, err
		}
	}
	return domain.Invoice{
		ID:            m.ID.Hex(),
		InvoiceNumber: m.InvoiceNumber,
		Amount:        amount,
		DueDate:       m.DueDate.UTC(),
		Status:        domain.InvoiceStatus(m.Status),
		CustomerID:    hexOrEmpty(m.CustomerID),
		UserID:        hexOrEmpty(m.UserID),
		LineItems:     items,
		MeterReading:  m.MeterReading,
		CustomFields:  m.CustomFields,
		Name:          m.Name,
		VehicleNo:     m.VehicleNo,
		CarModel:      m.CarModel,
		Timestamps:    domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}, nil
}

func (r *MongoInvoiceRepository) FindInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var ms []models.Invoice
	if err := r.findAll(ctx, bson.M{}, &ms, newestFirst()); err != nil {
		return nil, err
	}
	invoices := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		inv, err := toDomainInvoice(m)
		if err != nil {
			return nil, fmt.Errorf("invoice %s: %w", m.ID.Hex(), err)
		}
		invoices[i] = inv
	}
	return invoices, nil
}

func (r *MongoInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	id, err := parseID(invoiceID)
	if err != nil {
		return nil, err
	}
	var m models.Invoice
	if err := r.findOne(ctx, bson.M{"_id": id}, &m); err != nil {
		return nil, err
	}
	inv, err := toDomainInvoice(m)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", invoiceID, err)
	}
	return &inv, nil
}

func (r *MongoInvoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	m, err := toModelInvoice(*invoice)
	if err != nil {
		return err
	}
	id, err := r.insert(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	invoice.ID = id.Hex()
	return nil
}

func (r *MongoInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m, err := toModelInvoice(invoice)
	if err != nil {
		return err
	}
	if m.ID.IsZero() {
		return parseIDErr(invoice.ID)
	}
	if err := r.replace(ctx, m.ID, m); err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoice.ID, err)
	}
	return nil
}

func (r *MongoInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	id, err := parseID(invoiceID)
	if err != nil {
		return err
	}
	if _, err := r.deleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	return nil
}
