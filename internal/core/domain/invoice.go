package domain

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoicePending InvoiceStatus = "pending"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// IsValid reports whether s is one of the known statuses.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoicePending, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// LineItem is one billed row on an invoice.
type LineItem struct {
	ID          string          `json:"id"`
	Particulars string          `json:"particulars"`
	Rate        decimal.Decimal `json:"rate"`
	Quantity    decimal.Decimal `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is a bill issued to a customer.
type Invoice struct {
	ID            string
	InvoiceNumber string
	Amount        decimal.Decimal
	DueDate       time.Time
	Status        InvoiceStatus
	CustomerID    string
	UserID        string
	LineItems     []LineItem
	MeterReading  string
	CustomFields  map[string]string
	Name          string
	VehicleNo     string
	CarModel      string
	Timestamps
}

// MarkSent moves the invoice to sent. A paid invoice cannot be sent again.
func (inv *Invoice) MarkSent() error {
	if inv.Status == InvoicePaid {
		return apperrors.NewAppError(http.StatusBadRequest, "Invoice is already paid",
			fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, inv.Status, InvoiceSent))
	}
	inv.Status = InvoiceSent
	return nil
}

// MarkPaid moves the invoice to paid from any state.
func (inv *Invoice) MarkPaid() {
	inv.Status = InvoicePaid
}

// InvoicePatch lists the invoice fields a partial update may change.
// Nil fields are left untouched, including CustomFields.
type InvoicePatch struct {
	InvoiceNumber *string
	Amount        *decimal.Decimal
	DueDate       *time.Time
	Status        *InvoiceStatus
	CustomerID    *string
	LineItems     *[]LineItem
	MeterReading  *string
	CustomFields  map[string]string
	Name          *string
	VehicleNo     *string
	CarModel      *string
}

// Apply copies every non-nil field of p onto inv.
func (p InvoicePatch) Apply(inv *Invoice) {
	if p.InvoiceNumber != nil {
		inv.InvoiceNumber = *p.InvoiceNumber
	}
	if p.Amount != nil {
		inv.Amount = *p.Amount
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	if p.CustomerID != nil {
		inv.CustomerID = *p.CustomerID
	}
	if p.LineItems != nil {
		inv.LineItems = *p.LineItems
	}
	if p.MeterReading != nil {
		inv.MeterReading = *p.MeterReading
	}
	if p.CustomFields != nil {
		inv.CustomFields = p.CustomFields
	}
	if p.Name != nil {
		inv.Name = *p.Name
	}
	if p.VehicleNo != nil {
		inv.VehicleNo = *p.VehicleNo
	}
	if p.CarModel != nil {
		inv.CarModel = *p.CarModel
	}
}
