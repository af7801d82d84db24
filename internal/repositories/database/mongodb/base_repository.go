package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	usersCollection       = "users"
	customersCollection   = "customers"
	invoicesCollection    = "invoices"
	productsCollection    = "products"
	pdfSettingsCollection = "pdftemplatesettings"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func newBaseRepository(db *mongo.Database, name string, timeout time.Duration) BaseRepository {
	return BaseRepository{coll: db.Collection(name), timeout: timeout}
}

// withTimeout bounds a single database operation.
func (r *BaseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// findOne decodes the first document matching filter into out.
func (r *BaseRepository) findOne(ctx context.Context, filter any, out any) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.coll.FindOne(ctx, filter).Decode(out); err != nil {
		return translateError(err)
	}
	return nil
}

// findAll decodes every document matching filter into out, which must be a slice pointer.
func (r *BaseRepository) findAll(ctx context.Context, filter any, out any, opts ...*options.FindOptions) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return fmt.Errorf("find in %s: %w", r.coll.Name(), err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	return nil
}

// insert stores doc and returns the generated ObjectID.
func (r *BaseRepository) insert(ctx context.Context, doc any) (primitive.ObjectID, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, translateError(err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// replace overwrites the document with the given id.
func (r *BaseRepository) replace(ctx context.Context, id primitive.ObjectID, doc any) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return translateError(err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// set applies a $set update to the document with the given id.
func (r *BaseRepository) set(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return translateError(err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// deleteByID removes a document and reports whether one existed.
func (r *BaseRepository) deleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", r.coll.Name(), err)
	}
	return res.DeletedCount > 0, nil
}

// parseID converts a hex id, failing with apperrors.ErrInvalidID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", apperrors.ErrInvalidID, id)
	}
	return oid, nil
}

// parseOptionalID treats an empty id as unset.
func parseOptionalID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, nil
	}
	return parseID(id)
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

func translateError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperrors.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", apperrors.ErrDuplicate, err)
	default:
		return err
	}
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("convert %s to decimal128: %w", d, err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("convert decimal128 %s: %w", v, err)
	}
	return d, nil
}

func auditFields(createdAt, updatedAt time.Time) models.AuditFields {
	return models.AuditFields{CreatedAt: createdAt, UpdatedAt: updatedAt}
}

// parseIDErr returns the error parseID gives for an id that must be present.
func parseIDErr(id string) error {
	_, err := parseID(id)
	return err
}
