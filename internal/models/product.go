package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is the products collection document.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	AuditFields `bson:",inline"`
}
