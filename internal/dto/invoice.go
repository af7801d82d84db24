package dto

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate accepts an RFC 3339 timestamp or a plain ISO calendar date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

// LineItemRequest is one billed row in an invoice request.
type LineItemRequest struct {
	ID          string          `json:"id"`
	Particulars string          `json:"particulars"`
	Rate        decimal.Decimal `json:"rate" swaggertype:"number"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"number"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
}

func toLineItems(items []LineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(items))
	for _, it := range items {
		id := it.ID
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, domain.LineItem{
			ID:          id,
			Particulars: it.Particulars,
			Rate:        it.Rate,
			Quantity:    it.Quantity,
			Amount:      it.Amount,
		})
	}
	return out
}

const amountMessage = "Amount must be a positive number"

// CreateInvoiceRequest is the body of POST /invoices.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber" binding:"required,min=1"`
	Amount        *decimal.Decimal     `json:"amount" swaggertype:"number"`
	DueDate       string               `json:"dueDate" binding:"required,isodate"`
	Status        domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=draft pending sent paid overdue"`
	CustomerID    string               `json:"customerId" binding:"required,mongodb"`
	LineItems     []LineItemRequest    `json:"lineItems"`
	MeterReading  string               `json:"meterReading"`
	CustomFields  map[string]string    `json:"customFields"`
	Name          string               `json:"name"`
	VehicleNo     string               `json:"vehicleNo"`
	CarModel      string               `json:"carModel"`
}

// Validate checks the rules struct tags cannot express.
func (r CreateInvoiceRequest) Validate() []apperrors.FieldError {
	if r.Amount == nil || r.Amount.IsNegative() {
		return []apperrors.FieldError{{Field: "amount", Message: amountMessage}}
	}
	return nil
}

// ToDomain builds a new invoice owned by userID. Status defaults to pending.
func (r CreateInvoiceRequest) ToDomain(userID string) (*domain.Invoice, error) {
	due, err := ParseDate(r.DueDate)
	if err != nil {
		return nil, apperrors.NewFieldError("dueDate", "Due date must be a valid date")
	}
	status := r.Status
	if status == "" {
		status = domain.InvoicePending
	}
	inv := &domain.Invoice{
		InvoiceNumber: r.InvoiceNumber,
		DueDate:       due,
		Status:        status,
		CustomerID:    r.CustomerID,
		UserID:        userID,
		LineItems:     toLineItems(r.LineItems),
		MeterReading:  r.MeterReading,
		CustomFields:  r.CustomFields,
		Name:          r.Name,
		VehicleNo:     r.VehicleNo,
		CarModel:      r.CarModel,
	}
	if r.Amount != nil {
		inv.Amount = *r.Amount
	}
	return inv, nil
}

// UpdateInvoiceRequest is the body of PATCH /invoices/:id. Omitted fields are kept.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string               `json:"invoiceNumber" binding:"omitnil,min=1"`
	Amount        *decimal.Decimal      `json:"amount" swaggertype:"number"`
	DueDate       *string               `json:"dueDate" binding:"omitnil,isodate"`
	Status        *domain.InvoiceStatus `json:"status" binding:"omitnil,oneof=draft pending sent paid overdue"`
	CustomerID    *string               `json:"customerId" binding:"omitnil,mongodb"`
	LineItems     *[]LineItemRequest    `json:"lineItems"`
	MeterReading  *string               `json:"meterReading"`
	CustomFields  map[string]string     `json:"customFields"`
	Name          *string               `json:"name"`
	VehicleNo     *string               `json:"vehicleNo"`
	CarModel      *string               `json:"carModel"`
}

// Validate checks the rules struct tags cannot express.
func (r UpdateInvoiceRequest) Validate() []apperrors.FieldError {
	if r.Amount != nil && r.Amount.IsNegative() {
		return []apperrors.FieldError{{Field: "amount", Message: amountMessage}}
	}
	return nil
}

// ToPatch converts the request into a domain patch.
func (r UpdateInvoiceRequest) ToPatch() (domain.InvoicePatch, error) {
	p := domain.InvoicePatch{
		InvoiceNumber: r.InvoiceNumber,
		Amount:        r.Amount,
		Status:        r.Status,
		CustomerID:    r.CustomerID,
		MeterReading:  r.MeterReading,
		CustomFields:  r.CustomFields,
		Name:          r.Name,
		VehicleNo:     r.VehicleNo,
		CarModel:      r.CarModel,
	}
	if r.DueDate != nil {
		due, err := ParseDate(*r.DueDate)
		if err != nil {
			return p, apperrors.NewFieldError("dueDate", "Due date must be a valid date")
		}
		p.DueDate = &due
	}
	if r.LineItems != nil {
		items := toLineItems(*r.LineItems)
		p.LineItems = &items
	}
	return p, nil
}

// LineItemResponse is the JSON view of a line item. Money is rendered as a JSON number.
type LineItemResponse struct {
	ID          string      `json:"id"`
	Particulars string      `json:"particulars"`
	Rate        json.Number `json:"rate" swaggertype:"number"`
	Quantity    json.Number `json:"quantity" swaggertype:"number"`
	Amount      json.Number `json:"amount" swaggertype:"number"`
}

// InvoiceResponse is the JSON view of an invoice.
type InvoiceResponse struct {
	ID            string               `json:"id"`
	InvoiceNumber string               `json:"invoiceNumber"`
	Amount        json.Number          `json:"amount" swaggertype:"number"`
	DueDate       time.Time            `json:"dueDate"`
	Status        domain.InvoiceStatus `json:"status"`
	CustomerID    string               `json:"customerId"`
	UserID        string               `json:"userId"`
	LineItems     []LineItemResponse   `json:"lineItems"`
	MeterReading  string               `json:"meterReading,omitempty"`
	CustomFields  map[string]string    `json:"customFields,omitempty"`
	Name          string               `json:"name,omitempty"`
	VehicleNo     string               `json:"vehicleNo,omitempty"`
	CarModel      string               `json:"carModel,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.LineItems))
	for _, it := range inv.LineItems {
		items = append(items, LineItemResponse{
			ID:          it.ID,
			Particulars: it.Particulars,
			Rate:        number(it.Rate),
			Quantity:    number(it.Quantity),
			Amount:      number(it.Amount),
		})
	}
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        number(inv.Amount),
		DueDate:       inv.DueDate,
		Status:        inv.Status,
		CustomerID:    inv.CustomerID,
		UserID:        inv.UserID,
		LineItems:     items,
		MeterReading:  inv.MeterReading,
		CustomFields:  inv.CustomFields,
		Name:          inv.Name,
		VehicleNo:     inv.VehicleNo,
		CarModel:      inv.CarModel,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

// ToInvoiceListResponse converts a slice of invoices, never returning nil.
func ToInvoiceListResponse(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, ToInvoiceResponse(&invoices[i]))
	}
	return out
}
