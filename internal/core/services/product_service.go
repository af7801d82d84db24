package services

import (
	"context"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
)

const (
	productNotFound  = "Product not found"
	invalidProductID = "Invalid product ID"
)

type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates the product catalogue service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.FindProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, wrapf(err, "list products")
	}
	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, s.lookupError(ctx, err, "get product", productNotFound, invalidProductID)
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.ProductRequest) (*domain.Product, error) {
	product := &domain.Product{Name: req.Name}
	product.Touch(time.Now().UTC())
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to create product")
		return nil, wrapf(err, "create product")
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.ProductRequest) (*domain.Product, error) {
	product, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	product.Name = req.Name
	product.Touch(time.Now().UTC())
	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, s.lookupError(ctx, err, "update product", productNotFound, invalidProductID)
	}
	return product, nil
}

// DeleteProduct reports a missing product as not found.
func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return s.lookupError(ctx, err, "delete product", productNotFound, invalidProductID)
	}
	return nil
}
