package dto

import (
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
)

// CreateCustomerRequest is the body of POST /customers.
type CreateCustomerRequest struct {
	Name      string          `json:"name" binding:"required,min=1"`
	Email     string          `json:"email" binding:"omitempty,email"`
	Contact   string          `json:"contact"`
	VehicleNo string          `json:"vehicleNo"`
	CarModel  string          `json:"carModel"`
	Avatar    string          `json:"avatar"`
	Address   *domain.Address `json:"address"`
}

// ToDomain builds a new customer owned by userID.
func (r CreateCustomerRequest) ToDomain(userID string) *domain.Customer {
	return &domain.Customer{
		Name:      r.Name,
		Email:     domain.NormalizeEmail(r.Email),
		Contact:   r.Contact,
		VehicleNo: r.VehicleNo,
		CarModel:  r.CarModel,
		Avatar:    r.Avatar,
		Address:   r.Address,
		UserID:    userID,
	}
}

// UpdateCustomerRequest is the body of PATCH /customers/:id. Omitted fields are kept.
type UpdateCustomerRequest struct {
	Name      *string         `json:"name" binding:"omitnil,min=1"`
	Email     *string         `json:"email" binding:"omitnil,omitempty,email"`
	Contact   *string         `json:"contact"`
	VehicleNo *string         `json:"vehicleNo"`
	CarModel  *string         `json:"carModel"`
	Avatar    *string         `json:"avatar"`
	Address   *domain.Address `json:"address"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateCustomerRequest) ToPatch() domain.CustomerPatch {
	return domain.CustomerPatch{
		Name:      r.Name,
		Email:     r.Email,
		Contact:   r.Contact,
		VehicleNo: r.VehicleNo,
		CarModel:  r.CarModel,
		Avatar:    r.Avatar,
		Address:   r.Address,
	}
}

// CustomerResponse is the JSON view of a customer.
type CustomerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email,omitempty"`
	Contact   string          `json:"contact,omitempty"`
	VehicleNo string          `json:"vehicleNo,omitempty"`
	CarModel  string          `json:"carModel,omitempty"`
	Avatar    string          `json:"avatar,omitempty"`
	Address   *domain.Address `json:"address,omitempty"`
	UserID    string          `json:"userId"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Contact:   c.Contact,
		VehicleNo: c.VehicleNo,
		CarModel:  c.CarModel,
		Avatar:    c.Avatar,
		Address:   c.Address,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerListResponse converts a slice of customers, never returning nil.
func ToCustomerListResponse(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, ToCustomerResponse(&customers[i]))
	}
	return out
}
