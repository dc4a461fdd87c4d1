package model

import (
	"time"

	"github.com/divyaalluri1312/FriendFleet/constant"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RideTime is the embedded departure time sub-document. Hour is the clock
// hour 1-12 with the meridiem kept separately, exactly as stored.
type RideTime struct {
	Hour   int    `bson:"hour" json:"hour"`
	Minute int    `bson:"minute" json:"minute"`
	Ampm   string `bson:"ampm" json:"ampm"`
}

// RideEntity represents a document in the rides collection.
type RideEntity struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Driver    primitive.ObjectID  `bson:"driver" json:"driver"`
	From      string              `bson:"from" json:"from"`
	To        string              `bson:"to" json:"to"`
	Date      time.Time           `bson:"date" json:"date"`
	Time      RideTime            `bson:"time" json:"time"`
	Seats     int                 `bson:"seats" json:"seats"`
	Vehicle   primitive.ObjectID  `bson:"vehicle" json:"vehicle"`
	Status    constant.RideStatus `bson:"status" json:"status"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

// ExpandedRide is a ride with its driver and vehicle references resolved,
// the shape every read endpoint returns.
type ExpandedRide struct {
	ID        primitive.ObjectID  `bson:"_id" json:"id"`
	Driver    *UserEntity         `bson:"driver" json:"driver"`
	From      string              `bson:"from" json:"from"`
	To        string              `bson:"to" json:"to"`
	Date      time.Time           `bson:"date" json:"date"`
	Time      RideTime            `bson:"time" json:"time"`
	Seats     int                 `bson:"seats" json:"seats"`
	Vehicle   *VehicleEntity      `bson:"vehicle" json:"vehicle"`
	Status    constant.RideStatus `bson:"status" json:"status"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

// RideSearchFilter narrows the rides collection for search. From/To are
// case-insensitive substring matches; the date bounds are inclusive.
type RideSearchFilter struct {
	From     string
	To       string
	DateFrom time.Time
	DateTo   time.Time
	Status   constant.RideStatus
}

// PublishRideRequest for publishing a ride. Seats uses min=1 so that the
// zero value counts as missing, matching the required-field semantics of
// the public contract.
type PublishRideRequest struct {
	From      string    `json:"from" validate:"required"`
	To        string    `json:"to" validate:"required"`
	Date      string    `json:"date" validate:"required"`
	Time      *RideTime `json:"time" validate:"required"`
	Seats     int       `json:"seats" validate:"required,min=1"`
	VehicleID string    `json:"vehicleId" validate:"required"`
}

// SearchRidesRequest is bound from query parameters. Gender is accepted for
// contract compatibility but never applied as a filter.
type SearchRidesRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Date   string `json:"date" validate:"required"`
	Gender string `json:"gender"`
}

type RideResponse struct {
	Ride *ExpandedRide `json:"ride"`
}

type RideListResponse struct {
	Rides []ExpandedRide `json:"rides"`
}
