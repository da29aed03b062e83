package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is an immutable (state, city) reference record with a fixed
// geocoordinate. Seeded at startup, never mutated during a session.
type Location struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StateName string             `bson:"stateName" json:"stateName"`
	CityName  string             `bson:"cityName" json:"cityName"`
	Latitude  float64            `bson:"latitude" json:"latitude"`
	Longitude float64            `bson:"longitude" json:"longitude"`
	IsTier1   bool               `bson:"isTier1" json:"isTier1"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
