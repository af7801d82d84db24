package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LineItem is embedded in an invoice document. Money is stored as Decimal128.
type LineItem struct {
	ID          string               `bson:"id"`
	Particulars string               `bson:"particulars"`
	Rate        primitive.Decimal128 `bson:"rate"`
	Quantity    primitive.Decimal128 `bson:"quantity"`
	Amount      primitive.Decimal128 `bson:"amount"`
}

// Invoice is the invoices collection document.
type Invoice struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	InvoiceNumber string               `bson:"invoiceNumber"`
	Amount        primitive.Decimal128 `bson:"amount"`
	DueDate       time.Time            `bson:"dueDate"`
	Status        string               `bson:"status"`
	CustomerID    primitive.ObjectID   `bson:"customerId"`
	UserID        primitive.ObjectID   `bson:"userId,omitempty"`
	LineItems     []LineItem           `bson:"lineItems"`
	MeterReading  string               `bson:"meterReading,omitempty"`
	CustomFields  map[string]string    `bson:"customFields,omitempty"`
	Name          string               `bson:"name,omitempty"`
	VehicleNo     string               `bson:"vehicleNo,omitempty"`
	CarModel      string               `bson:"carModel,omitempty"`
	AuditFields   `bson:",inline"`
}
