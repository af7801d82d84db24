package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditFields are the timestamps every stored document carries.
type AuditFields struct {
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// User is the users collection document.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	Password     string             `bson:"password"`
	IsAdmin      bool               `bson:"isAdmin"`
	RefreshToken *string            `bson:"refreshToken"` // null when logged out
	AuditFields  `bson:",inline"`
}
