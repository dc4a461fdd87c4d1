package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserEntity represents a document in the users collection.
type UserEntity struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Phone            string             `bson:"phone" json:"phone"`
	PasswordHash     string             `bson:"password" json:"-"`
	Age              int                `bson:"age,omitempty" json:"age,omitempty"`
	Gender           string             `bson:"gender,omitempty" json:"gender,omitempty"`
	ProfileImage     string             `bson:"profileImage" json:"profileImage"`
	IdentityVerified bool               `bson:"identityVerified" json:"identityVerified"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    primitive.ObjectID
	Phone string
}

// UserUpdate carries the mutable profile fields; nil pointers are left
// untouched in the stored document.
type UserUpdate struct {
	Name         *string `bson:"name,omitempty"`
	Phone        *string `bson:"phone,omitempty"`
	ProfileImage *string `bson:"profileImage,omitempty"`
	Age          *int    `bson:"age,omitempty"`
	Gender       *string `bson:"gender,omitempty"`
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

// LoginRequest for user login
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the trimmed user shape returned with a token.
type UserSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profileImage"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// UpdateProfileRequest carries partial profile fields; absent fields keep
// their stored values.
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	ProfileImage *string `json:"profileImage"`
	Age          *int    `json:"age"`
	Gender       *string `json:"gender"`
}

type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
