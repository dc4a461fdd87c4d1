package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleEntity represents a document in the vehicles collection. Owner is
// immutable after creation.
type VehicleEntity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number    string             `bson:"number" json:"number"`
	Type      string             `bson:"type" json:"type"`
	Model     string             `bson:"model" json:"model"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
	Verified  bool               `bson:"verified" json:"verified"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// VehicleFilter for querying vehicles. When both ID and Owner are set the
// repository matches both, which is how ride publishing checks ownership.
type VehicleFilter struct {
	ID     primitive.ObjectID
	Number string
	Owner  primitive.ObjectID
}

// RegisterVehicleRequest for vehicle registration
type RegisterVehicleRequest struct {
	Number string `json:"number" validate:"required"`
	Type   string `json:"type" validate:"required"`
	Model  string `json:"model" validate:"required"`
}

type VehicleResponse struct {
	Vehicle *VehicleEntity `json:"vehicle"`
}

type VehicleListResponse struct {
	Vehicles []VehicleEntity `json:"vehicles"`
}
