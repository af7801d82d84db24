package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PDFTemplateSettings is the pdftemplatesettings collection document, one per user.
type PDFTemplateSettings struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	Settings    bson.M             `bson:"settings"`
	AuditFields `bson:",inline"`
}
