package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/garage_invoice_app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoProductRepository struct {
	BaseRepository
}

func newMongoProductRepository(db *mongo.Database, timeout time.Duration) *MongoProductRepository {
	return &MongoProductRepository{BaseRepository: newBaseRepository(db, productsCollection, timeout)}
}

var _ portsrepo.ProductRepositoryFacade = (*MongoProductRepository)(nil)

func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ID:         m.ID.Hex(),
		Name:       m.Name,
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func (r *MongoProductRepository) FindProducts(ctx context.Context) ([]domain.Product, error) {
	var ms []models.Product
	if err := r.findAll(ctx, bson.M{}, &ms, newestFirst()); err != nil {
		return nil, err
	}
	products := make([]domain.Product, len(ms))
	for i, m := range ms {
		products[i] = toDomainProduct(m)
	}
	return products, nil
}

func (r *MongoProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	id, err := parseID(productID)
	if err != nil {
		return nil, err
	}
	var m models.Product
	if err := r.findOne(ctx, bson.M{"_id": id}, &m); err != nil {
		return nil, err
	}
	p := toDomainProduct(m)
	return &p, nil
}

func (r *MongoProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	id, err := r.insert(ctx, models.Product{
		Name:        product.Name,
		AuditFields: auditFields(product.CreatedAt, product.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	product.ID = id.Hex()
	return nil
}

func (r *MongoProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	id, err := parseID(product.ID)
	if err != nil {
		return err
	}
	err = r.set(ctx, id, bson.M{"name": product.Name, "updatedAt": product.UpdatedAt})
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	return nil
}

func (r *MongoProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	id, err := parseID(productID)
	if err != nil {
		return err
	}
	found, err := r.deleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if !found {
		return apperrors.ErrNotFound
	}
	return nil
}
