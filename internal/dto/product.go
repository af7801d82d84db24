package dto

import (
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
)

// ProductRequest is the body of POST /products and PUT /products/:id.
type ProductRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

// ProductResponse is the JSON view of a product.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}

// ToProductListResponse converts a slice of products, never returning nil.
func ToProductListResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ToProductResponse(&products[i]))
	}
	return out
}
