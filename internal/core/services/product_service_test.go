package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	"github.com/SscSPs/garage_invoice_app/internal/core/services"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testProductID = "64b7f0c2a1b2c3d4e5f60740"

func TestProductService(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("CreateProduct", ctx, mock.MatchedBy(func(p *domain.Product) bool { return p.Name == "Brake pad" })).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.Product).ID = testProductID }).
			Return(nil).Once()

		p, err := services.NewProductService(repo).CreateProduct(ctx, dto.ProductRequest{Name: "Brake pad"})

		require.NoError(t, err)
		assert.Equal(t, testProductID, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("update renames", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FindProductByID", ctx, testProductID).Return(&domain.Product{ID: testProductID, Name: "Old"}, nil).Once()
		repo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool { return p.Name == "New" })).Return(nil).Once()

		p, err := services.NewProductService(repo).UpdateProduct(ctx, testProductID, dto.ProductRequest{Name: "New"})

		require.NoError(t, err)
		assert.Equal(t, "New", p.Name)
		repo.AssertExpectations(t)
	})

	t.Run("delete missing is not found", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("DeleteProduct", ctx, testProductID).Return(apperrors.ErrNotFound).Once()

		err := services.NewProductService(repo).DeleteProduct(ctx, testProductID)

		appErr := apperrors.Resolve(err)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
		assert.Equal(t, "Product not found", appErr.Message)
	})
}
