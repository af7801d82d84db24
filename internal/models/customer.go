package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Address is embedded in a customer document.
type Address struct {
	Street  string `bson:"street,omitempty"`
	City    string `bson:"city,omitempty"`
	State   string `bson:"state,omitempty"`
	Zip     string `bson:"zip,omitempty"`
	Country string `bson:"country,omitempty"`
}

// Customer is the customers collection document.
type Customer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email,omitempty"`
	Contact     string             `bson:"contact,omitempty"`
	VehicleNo   string             `bson:"vehicleNo,omitempty"`
	CarModel    string             `bson:"carModel,omitempty"`
	Avatar      string             `bson:"avatar,omitempty"`
	Address     *Address           `bson:"address,omitempty"`
	UserID      primitive.ObjectID `bson:"userId,omitempty"`
	AuditFields `bson:",inline"`
}
