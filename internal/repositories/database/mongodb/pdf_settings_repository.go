package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	"github.com/SscSPs/garage_invoice_app/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPDFSettingsRepository struct {
	BaseRepository
}

func newMongoPDFSettingsRepository(db *mongo.Database, timeout time.Duration) *MongoPDFSettingsRepository {
	return &MongoPDFSettingsRepository{BaseRepository: newBaseRepository(db, pdfSettingsCollection, timeout)}
}

var _ portsrepo.PDFSettingsRepository = (*MongoPDFSettingsRepository)(nil)

func (r *MongoPDFSettingsRepository) FindSettingsByUserID(ctx context.Context, userID string) (*domain.PDFTemplateSettings, error) {
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	var m models.PDFTemplateSettings
	if err := r.findOne(ctx, bson.M{"userId": uid}, &m); err != nil {
		return nil, err
	}
	settings, _ := plainJSON(m.Settings).(map[string]any)
	if settings == nil {
		settings = map[string]any{}
	}
	return &domain.PDFTemplateSettings{
		ID:         m.ID.Hex(),
		UserID:     m.UserID.Hex(),
		Settings:   settings,
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}, nil
}

// UpsertSettings replaces the settings object; createdAt is only written on insert.
func (r *MongoPDFSettingsRepository) UpsertSettings(ctx context.Context, settings *domain.PDFTemplateSettings) error {
	uid, err := parseID(settings.UserID)
	if err != nil {
		return err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	update := bson.M{
		"$set":         bson.M{"settings": settings.Settings, "updatedAt": settings.UpdatedAt},
		"$setOnInsert": bson.M{"createdAt": settings.CreatedAt},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"userId": uid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert pdf settings for user %s: %w", settings.UserID, translateError(err))
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		settings.ID = id.Hex()
	}
	return nil
}

// plainJSON turns decoded BSON containers into the map and slice types
// encoding/json renders as objects and arrays.
func plainJSON(v any) any {
	switch t := v.(type) {
	case bson.M:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = plainJSON(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = plainJSON(val)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plainJSON(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = plainJSON(val)
		}
		return out
	default:
		return v
	}
}
