package repositories

import (
	"context"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
)

// ProductRepositoryFacade defines persistence operations for products.
type ProductRepositoryFacade interface {
	FindProducts(ctx context.Context) ([]domain.Product, error)
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct returns apperrors.ErrNotFound when nothing was removed.
	DeleteProduct(ctx context.Context, productID string) error
}
